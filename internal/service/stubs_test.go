package service

import (
	"context"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/repository"
)

// usersStub satisfies repository.Users with per-call function fields.
type usersStub struct {
	createFn           func(ctx context.Context, u models.User) (int, error)
	getByIDFn          func(ctx context.Context, id int) (*models.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*models.User, error)
	updateProfileFn    func(ctx context.Context, u models.User) error
	updatePasswordFn   func(ctx context.Context, id int, hash string) error
	updateCategoriesFn func(ctx context.Context, id int, categories, favourites []string) error
	deleteFn           func(ctx context.Context, id int) error
}

var _ repository.Users = (*usersStub)(nil)

func (s *usersStub) Create(ctx context.Context, u models.User) (int, error) {
	if s.createFn == nil {
		return 1, nil
	}
	return s.createFn(ctx, u)
}

func (s *usersStub) GetByID(ctx context.Context, id int) (*models.User, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id)
}

func (s *usersStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn == nil {
		return nil, nil
	}
	return s.getByUsernameFn(ctx, username)
}

func (s *usersStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn == nil {
		return nil, nil
	}
	return s.getByEmailFn(ctx, email)
}

func (s *usersStub) UpdateProfile(ctx context.Context, u models.User) error {
	if s.updateProfileFn == nil {
		return nil
	}
	return s.updateProfileFn(ctx, u)
}

func (s *usersStub) UpdatePassword(ctx context.Context, id int, hash string) error {
	if s.updatePasswordFn == nil {
		return nil
	}
	return s.updatePasswordFn(ctx, id, hash)
}

func (s *usersStub) UpdateCategories(ctx context.Context, id int, categories, favourites []string) error {
	if s.updateCategoriesFn == nil {
		return nil
	}
	return s.updateCategoriesFn(ctx, id, categories, favourites)
}

func (s *usersStub) Delete(ctx context.Context, id int) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

// receiptsStub satisfies repository.Receipts with per-call function fields.
type receiptsStub struct {
	insertFn        func(ctx context.Context, r models.Receipt) error
	listByUserFn    func(ctx context.Context, userID int) ([]models.Receipt, error)
	getByIDFn       func(ctx context.Context, id string) (*models.Receipt, error)
	updateFn        func(ctx context.Context, r models.Receipt) error
	deleteFn        func(ctx context.Context, id string, userID int) (bool, error)
	deleteByUserFn  func(ctx context.Context, userID int) error
	stripCategoryFn func(ctx context.Context, userID int, category string) (int, error)
}

var _ repository.Receipts = (*receiptsStub)(nil)

func (s *receiptsStub) Insert(ctx context.Context, r models.Receipt) error {
	if s.insertFn == nil {
		return nil
	}
	return s.insertFn(ctx, r)
}

func (s *receiptsStub) ListByUser(ctx context.Context, userID int) ([]models.Receipt, error) {
	if s.listByUserFn == nil {
		return nil, nil
	}
	return s.listByUserFn(ctx, userID)
}

func (s *receiptsStub) GetByID(ctx context.Context, id string) (*models.Receipt, error) {
	if s.getByIDFn == nil {
		return nil, nil
	}
	return s.getByIDFn(ctx, id)
}

func (s *receiptsStub) Update(ctx context.Context, r models.Receipt) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, r)
}

func (s *receiptsStub) Delete(ctx context.Context, id string, userID int) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id, userID)
}

func (s *receiptsStub) DeleteByUser(ctx context.Context, userID int) error {
	if s.deleteByUserFn == nil {
		return nil
	}
	return s.deleteByUserFn(ctx, userID)
}

func (s *receiptsStub) StripCategory(ctx context.Context, userID int, category string) (int, error) {
	if s.stripCategoryFn == nil {
		return 0, nil
	}
	return s.stripCategoryFn(ctx, userID, category)
}
