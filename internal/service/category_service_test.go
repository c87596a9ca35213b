package service

import (
	"context"
	"errors"
	"testing"

	"receipt_keeper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWith(categories, favourites []string) *models.User {
	return &models.User{
		ID:                  1,
		Username:            "ana",
		Categories:          categories,
		FavouriteCategories: favourites,
	}
}

func TestCategoryService_Create(t *testing.T) {
	var savedCategories []string
	users := &usersStub{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return userWith([]string{"Groceries", "Fitness"}, nil), nil
		},
		updateCategoriesFn: func(ctx context.Context, id int, categories, favourites []string) error {
			savedCategories = categories
			return nil
		},
	}
	svc := NewCategoryService(users, &receiptsStub{})

	got, err := svc.Create(context.Background(), 1, "  Hobbies ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Groceries", "Fitness", "Hobbies"}, got)
	assert.Equal(t, got, savedCategories)

	// duplicate check is case-insensitive
	_, err = svc.Create(context.Background(), 1, "groceries")
	assert.ErrorIs(t, err, ErrDuplicateCategory)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestCategoryService_DeleteCascades(t *testing.T) {
	var (
		savedCategories []string
		savedFavourites []string
		strippedLabel   string
		strippedUser    int
	)
	users := &usersStub{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return userWith([]string{"Groceries", "Fitness"}, []string{"Fitness"}), nil
		},
		updateCategoriesFn: func(ctx context.Context, id int, categories, favourites []string) error {
			savedCategories = categories
			savedFavourites = favourites
			return nil
		},
	}
	receipts := &receiptsStub{
		stripCategoryFn: func(ctx context.Context, userID int, category string) (int, error) {
			strippedUser = userID
			strippedLabel = category
			return 3, nil
		},
	}
	svc := NewCategoryService(users, receipts)

	result, err := svc.Delete(context.Background(), 1, "fitness")
	require.NoError(t, err)

	assert.Equal(t, []string{"Groceries"}, savedCategories)
	assert.Empty(t, savedFavourites, "favourite entry must be removed with the category")
	assert.Equal(t, "fitness", strippedLabel)
	assert.Equal(t, 1, strippedUser)
	assert.Equal(t, 3, result.ReceiptsUpdated)
	assert.Equal(t, []string{"Groceries"}, result.Categories)
}

func TestCategoryService_DeleteNotFound(t *testing.T) {
	users := &usersStub{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return userWith([]string{"Groceries"}, nil), nil
		},
	}
	svc := NewCategoryService(users, &receiptsStub{})

	_, err := svc.Delete(context.Background(), 1, "Electronics")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryService_DeleteCascadeFaultSurfaced(t *testing.T) {
	users := &usersStub{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return userWith([]string{"Groceries"}, nil), nil
		},
	}
	receipts := &receiptsStub{
		stripCategoryFn: func(ctx context.Context, userID int, category string) (int, error) {
			return 0, errors.New("db gone")
		},
	}
	svc := NewCategoryService(users, receipts)

	_, err := svc.Delete(context.Background(), 1, "Groceries")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cascade failed")
}

func TestCategoryService_SetFavourite(t *testing.T) {
	current := userWith(
		[]string{"A", "B", "C", "D", "E"},
		[]string{"A", "B", "C", "D"},
	)
	var savedFavourites []string
	users := &usersStub{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			u := *current
			return &u, nil
		},
		updateCategoriesFn: func(ctx context.Context, id int, categories, favourites []string) error {
			savedFavourites = favourites
			return nil
		},
	}
	svc := NewCategoryService(users, &receiptsStub{})

	// a 5th favourite is rejected
	_, err := svc.SetFavourite(context.Background(), 1, "E", true)
	assert.ErrorIs(t, err, ErrFavouritesLimit)

	// duplicates are rejected
	_, err = svc.SetFavourite(context.Background(), 1, "a", true)
	assert.ErrorIs(t, err, ErrDuplicateFavourite)

	// unknown category is a validation failure
	_, err = svc.SetFavourite(context.Background(), 1, "Nope", true)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// removal works and frees a slot
	got, err := svc.SetFavourite(context.Background(), 1, "D", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, got)
	assert.Equal(t, got, savedFavourites)

	// removing a non-favourite is a no-op success
	current.FavouriteCategories = []string{"A"}
	got, err = svc.SetFavourite(context.Background(), 1, "B", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, got)
}
