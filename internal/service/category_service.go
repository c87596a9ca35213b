package service

import (
	"context"
	"fmt"
	"strings"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/repository"
)

// CategoryService manages the per-user category list, the bounded favourites
// subset and the cross-entity cascade on deletion.
type CategoryService struct {
	users    repository.Users
	receipts repository.Receipts
}

func NewCategoryService(users repository.Users, receipts repository.Receipts) *CategoryService {
	return &CategoryService{users: users, receipts: receipts}
}

// containsFold reports whether list holds name under case-insensitive compare.
func containsFold(list []string, name string) bool {
	for _, c := range list {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// removeFold filters name out of list case-insensitively, reporting whether
// anything was removed.
func removeFold(list []string, name string) ([]string, bool) {
	kept := make([]string, 0, len(list))
	removed := false
	for _, c := range list {
		if strings.EqualFold(c, name) {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	return kept, removed
}

// Create appends a new category to the caller's list.
func (s *CategoryService) Create(ctx context.Context, userID int, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategory
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if containsFold(u.Categories, name) {
		return nil, ErrDuplicateCategory
	}

	categories := append(u.Categories, name)
	if err := s.users.UpdateCategories(ctx, userID, categories, u.FavouriteCategories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes the category from the caller's list and favourites, then
// strips the label from every item across the caller's receipts. The profile
// update and the receipt cascade are two separate store operations; a fault
// in the cascade is surfaced, not rolled back.
func (s *CategoryService) Delete(ctx context.Context, userID int, name string) (CategoryCascade, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryCascade{}, ErrEmptyCategory
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return CategoryCascade{}, err
	}
	if u == nil {
		return CategoryCascade{}, ErrNotFound
	}

	categories, removed := removeFold(u.Categories, name)
	if !removed {
		return CategoryCascade{}, ErrNotFound
	}
	favourites, _ := removeFold(u.FavouriteCategories, name)

	if err := s.users.UpdateCategories(ctx, userID, categories, favourites); err != nil {
		return CategoryCascade{}, err
	}

	updated, err := s.receipts.StripCategory(ctx, userID, name)
	if err != nil {
		return CategoryCascade{}, fmt.Errorf("category removed but receipt cascade failed: %w", err)
	}
	return CategoryCascade{Categories: categories, ReceiptsUpdated: updated}, nil
}

// SetFavourite adds or removes a favourite. Adding checks existence,
// duplicates and the capacity bound; removing a non-favourite is a no-op.
func (s *CategoryService) SetFavourite(ctx context.Context, userID int, name string, add bool) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategory
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if !containsFold(u.Categories, name) {
		return nil, ErrUnknownCategory
	}

	favourites := u.FavouriteCategories
	if add {
		if containsFold(favourites, name) {
			return nil, ErrDuplicateFavourite
		}
		if len(favourites) >= models.MaxFavouriteCategories {
			return nil, ErrFavouritesLimit
		}
		favourites = append(favourites, name)
	} else {
		favourites, _ = removeFold(favourites, name)
	}

	if err := s.users.UpdateCategories(ctx, userID, u.Categories, favourites); err != nil {
		return nil, err
	}
	return favourites, nil
}
