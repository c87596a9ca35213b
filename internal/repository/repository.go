package repository

import (
	"context"
	"database/sql"

	"receipt_keeper/internal/models"
)

// Users persists account records. Lookups return (nil, nil) when no row
// matches.
type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, u models.User) error
	UpdatePassword(ctx context.Context, id int, hash string) error
	// UpdateCategories persists both lists in one statement so the
	// favourites subset can never be observed out of step with the
	// category list.
	UpdateCategories(ctx context.Context, id int, categories, favourites []string) error
	Delete(ctx context.Context, id int) error
}

// Receipts persists purchase records with their embedded item lists.
type Receipts interface {
	Insert(ctx context.Context, r models.Receipt) error
	ListByUser(ctx context.Context, userID int) ([]models.Receipt, error)
	GetByID(ctx context.Context, id string) (*models.Receipt, error)
	Update(ctx context.Context, r models.Receipt) error
	// Delete removes the receipt only when both id and owner match and
	// reports whether a row was removed.
	Delete(ctx context.Context, id string, userID int) (bool, error)
	DeleteByUser(ctx context.Context, userID int) error
	// StripCategory removes the label (case-insensitively) from every item
	// of every receipt owned by userID and returns the number of receipts
	// that changed.
	StripCategory(ctx context.Context, userID int, category string) (int, error)
}

type Repository struct {
	Users    Users
	Receipts Receipts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Receipts: NewReceiptRepository(db),
	}
}
