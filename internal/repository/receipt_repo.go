package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"receipt_keeper/internal/models"
)

type ReceiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

var _ Receipts = (*ReceiptRepository)(nil)

const (
	insertReceiptSQL = `
		INSERT INTO receipts (id, user_id, date, items, total_amount, note, payment_method, tags, store)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectReceiptColumns = `id, user_id, date, items, total_amount, note, payment_method, tags, store`

	updateReceiptSQL = `
		UPDATE receipts SET date = ?, items = ?, total_amount = ?, note = ?, payment_method = ?, tags = ?, store = ?
		WHERE id = ?`

	deleteReceiptSQL        = `DELETE FROM receipts WHERE id = ? AND user_id = ?`
	deleteReceiptsByUserSQL = `DELETE FROM receipts WHERE user_id = ?`

	selectItemsForUpdateSQL = `SELECT id, items FROM receipts WHERE user_id = ?`
	updateItemsSQL          = `UPDATE receipts SET items = ? WHERE id = ?`
)

func marshalItems(items []models.Item) (string, error) {
	if items == nil {
		items = []models.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalItems(s string) ([]models.Item, error) {
	var items []models.Item
	if s == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Insert stores a new receipt row.
func (r *ReceiptRepository) Insert(ctx context.Context, rec models.Receipt) error {
	itemsJSON, err := marshalItems(rec.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	tagsJSON, err := marshalList(rec.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, insertReceiptSQL,
		rec.ID, rec.UserID, rec.Date.UTC(), itemsJSON, rec.TotalAmount,
		rec.Note, rec.PaymentMethod, tagsJSON, rec.Store,
	); err != nil {
		return fmt.Errorf("insert receipt %q: %w", rec.ID, err)
	}
	return nil
}

// ListByUser returns all of a user's receipts, newest first.
func (r *ReceiptRepository) ListByUser(ctx context.Context, userID int) ([]models.Receipt, error) {
	query := fmt.Sprintf("SELECT %s FROM receipts WHERE user_id = ? ORDER BY date DESC", selectReceiptColumns)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list receipts for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	receipts := make([]models.Receipt, 0)
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate receipts for user %d: %w", userID, err)
	}
	return receipts, nil
}

// GetByID fetches a receipt regardless of owner. Returns (nil, nil) if not found.
func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*models.Receipt, error) {
	query := fmt.Sprintf("SELECT %s FROM receipts WHERE id = ?", selectReceiptColumns)
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanReceipt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Update overwrites the mutable receipt fields. Ownership is checked by the
// service before calling.
func (r *ReceiptRepository) Update(ctx context.Context, rec models.Receipt) error {
	itemsJSON, err := marshalItems(rec.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	tagsJSON, err := marshalList(rec.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, updateReceiptSQL,
		rec.Date.UTC(), itemsJSON, rec.TotalAmount, rec.Note,
		rec.PaymentMethod, tagsJSON, rec.Store, rec.ID,
	); err != nil {
		return fmt.Errorf("update receipt %q: %w", rec.ID, err)
	}
	return nil
}

// Delete removes a receipt by id and owner combined.
func (r *ReceiptRepository) Delete(ctx context.Context, id string, userID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteReceiptSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete receipt %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for receipt %q: %w", id, err)
	}
	return affected > 0, nil
}

// DeleteByUser removes every receipt owned by userID.
func (r *ReceiptRepository) DeleteByUser(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx, deleteReceiptsByUserSQL, userID); err != nil {
		return fmt.Errorf("delete receipts for user %d: %w", userID, err)
	}
	return nil
}

// StripCategory removes the label from every item across the user's receipts
// inside one transaction and returns the count of receipts that changed.
func (r *ReceiptRepository) StripCategory(ctx context.Context, userID int, category string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin strip-category transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, selectItemsForUpdateSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("select items for user %d: %w", userID, err)
	}

	type pendingUpdate struct {
		id    string
		items []models.Item
	}
	var updates []pendingUpdate

	for rows.Next() {
		var (
			id        string
			itemsJSON string
		)
		if err := rows.Scan(&id, &itemsJSON); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("scan receipt items: %w", err)
		}
		items, err := unmarshalItems(itemsJSON)
		if err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("decode items for receipt %q: %w", id, err)
		}
		if stripped := stripLabel(items, category); stripped {
			updates = append(updates, pendingUpdate{id: id, items: items})
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("iterate receipts for user %d: %w", userID, err)
	}
	_ = rows.Close()

	for _, u := range updates {
		itemsJSON, err := marshalItems(u.items)
		if err != nil {
			return 0, fmt.Errorf("marshal items for receipt %q: %w", u.id, err)
		}
		if _, err := tx.ExecContext(ctx, updateItemsSQL, itemsJSON, u.id); err != nil {
			return 0, fmt.Errorf("strip category from receipt %q: %w", u.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit strip-category transaction: %w", err)
	}
	return len(updates), nil
}

// stripLabel removes label (case-insensitively) from each item's category
// list in place and reports whether anything changed.
func stripLabel(items []models.Item, label string) bool {
	changed := false
	for i := range items {
		kept := items[i].Categories[:0]
		for _, c := range items[i].Categories {
			if strings.EqualFold(c, label) {
				changed = true
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) == 0 {
			items[i].Categories = nil
		} else {
			items[i].Categories = kept
		}
	}
	return changed
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(s scanner) (models.Receipt, error) {
	var (
		rec       models.Receipt
		itemsJSON string
		tagsJSON  string
	)
	if err := s.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &itemsJSON, &rec.TotalAmount,
		&rec.Note, &rec.PaymentMethod, &tagsJSON, &rec.Store,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Receipt{}, sql.ErrNoRows
		}
		return models.Receipt{}, fmt.Errorf("scan receipt: %w", err)
	}

	items, err := unmarshalItems(itemsJSON)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("decode items for receipt %q: %w", rec.ID, err)
	}
	rec.Items = items

	tags, err := unmarshalList(tagsJSON)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("decode tags for receipt %q: %w", rec.ID, err)
	}
	rec.Tags = tags
	rec.Date = rec.Date.UTC()
	return rec, nil
}
