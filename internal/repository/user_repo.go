package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"receipt_keeper/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `
		INSERT INTO users (username, email, password_hash, name, surname, photo, categories, favourite_categories, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectUserColumns = `id, username, email, password_hash, name, surname, bio, location, photo, categories, favourite_categories, created_at`

	updateProfileSQL = `
		UPDATE users SET name = ?, surname = ?, bio = ?, location = ?, photo = ?
		WHERE id = ?`

	updatePasswordSQL = `UPDATE users SET password_hash = ? WHERE id = ?`

	updateCategoriesSQL = `UPDATE users SET categories = ?, favourite_categories = ? WHERE id = ?`

	deleteUserSQL = `DELETE FROM users WHERE id = ?`
)

// marshalList converts a string slice to its JSON column representation.
// A nil slice is stored as an empty array, not SQL NULL.
func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalList(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	categories, err := marshalList(u.Categories)
	if err != nil {
		return 0, fmt.Errorf("marshal categories: %w", err)
	}
	favourites, err := marshalList(u.FavouriteCategories)
	if err != nil {
		return 0, fmt.Errorf("marshal favourites: %w", err)
	}

	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Username, u.Email, u.PasswordHash, u.Name, u.Surname, u.Photo,
		categories, favourites, createdAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

// getBy fetches a user by a single column. Returns (nil, nil) if not found.
func (r *UserRepository) getBy(ctx context.Context, column string, value any) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = ?", selectUserColumns, column)

	var (
		u          models.User
		categories string
		favourites string
	)
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Name, &u.Surname, &u.Bio, &u.Location, &u.Photo,
		&categories, &favourites, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by %s: %w", column, err)
	}

	if u.Categories, err = unmarshalList(categories); err != nil {
		return nil, fmt.Errorf("decode categories for user %d: %w", u.ID, err)
	}
	if u.FavouriteCategories, err = unmarshalList(favourites); err != nil {
		return nil, fmt.Errorf("decode favourites for user %d: %w", u.ID, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// UpdateProfile overwrites the editable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, updateProfileSQL,
		u.Name, u.Surname, u.Bio, u.Location, u.Photo, u.ID,
	); err != nil {
		return fmt.Errorf("update profile for user %d: %w", u.ID, err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, hash string) error {
	if _, err := r.db.ExecContext(ctx, updatePasswordSQL, hash, id); err != nil {
		return fmt.Errorf("update password for user %d: %w", id, err)
	}
	return nil
}

func (r *UserRepository) UpdateCategories(ctx context.Context, id int, categories, favourites []string) error {
	categoriesJSON, err := marshalList(categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	favouritesJSON, err := marshalList(favourites)
	if err != nil {
		return fmt.Errorf("marshal favourites: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, updateCategoriesSQL, categoriesJSON, favouritesJSON, id); err != nil {
		return fmt.Errorf("update categories for user %d: %w", id, err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
