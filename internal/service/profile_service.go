package service

import (
	"context"
	"fmt"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/repository"
)

// ProfileService covers profile reads/edits, password rotation and account
// deletion.
type ProfileService struct {
	users    repository.Users
	receipts repository.Receipts
}

func NewProfileService(users repository.Users, receipts repository.Receipts) *ProfileService {
	return &ProfileService{users: users, receipts: receipts}
}

func (s *ProfileService) Get(ctx context.Context, userID int) (models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

// Update replaces only the fields the caller supplied; empty inputs keep the
// stored values.
func (s *ProfileService) Update(ctx context.Context, userID int, p ProfileUpdate) (models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}

	if p.Name != "" {
		u.Name = p.Name
	}
	if p.Surname != "" {
		u.Surname = p.Surname
	}
	if p.Bio != "" {
		u.Bio = p.Bio
	}
	if p.Location != "" {
		u.Location = p.Location
	}
	if p.Photo != "" {
		u.Photo = p.Photo
	}

	if err := s.users.UpdateProfile(ctx, *u); err != nil {
		return models.User{}, err
	}
	return *u, nil
}

// ChangePassword rotates the secret after verifying the current one.
func (s *ProfileService) ChangePassword(ctx context.Context, userID int, current, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: new password must be at least %d characters long", ErrValidation, minPasswordLen)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	if verifyPassword(u.PasswordHash, current) != nil {
		return ErrInvalidPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// DeleteAccount removes the user's receipts and then the account itself.
// The password is re-checked so a leaked token alone cannot destroy data.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID int, password string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	if verifyPassword(u.PasswordHash, password) != nil {
		return ErrInvalidPassword
	}

	if err := s.receipts.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete receipts for account %d: %w", userID, err)
	}
	return s.users.Delete(ctx, userID)
}
