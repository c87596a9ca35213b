package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/repository"

	"github.com/google/uuid"
)

// ReceiptService implements receipt CRUD with ownership checks.
type ReceiptService struct {
	receipts repository.Receipts
}

func NewReceiptService(receipts repository.Receipts) *ReceiptService {
	return &ReceiptService{receipts: receipts}
}

// validateParams rejects bad input before any store call.
func validateParams(p ReceiptParams) error {
	if len(p.Items) == 0 {
		return fmt.Errorf("%w: receipt must include at least one item", ErrValidation)
	}
	for _, item := range p.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 || item.UnitPrice <= 0 || item.TotalPrice <= 0 {
			return fmt.Errorf("%w: each item must have name, quantity, unitPrice and totalPrice", ErrValidation)
		}
	}
	if !models.ValidPaymentMethod(p.PaymentMethod) {
		return fmt.Errorf("%w: paymentMethod must be one of Cash, Card, Mobile, Other", ErrValidation)
	}
	return nil
}

// Create validates the items, derives the total and persists a new receipt.
func (s *ReceiptService) Create(ctx context.Context, userID int, p ReceiptParams) (models.Receipt, error) {
	if err := validateParams(p); err != nil {
		return models.Receipt{}, err
	}

	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}

	rec := models.Receipt{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          date.UTC(),
		Items:         p.Items,
		TotalAmount:   models.SumItems(p.Items),
		Note:          p.Note,
		PaymentMethod: p.PaymentMethod,
		Tags:          p.Tags,
		Store:         p.Store,
	}
	if err := s.receipts.Insert(ctx, rec); err != nil {
		return models.Receipt{}, err
	}
	return rec, nil
}

// List returns the caller's receipts, newest first.
func (s *ReceiptService) List(ctx context.Context, userID int) ([]models.Receipt, error) {
	return s.receipts.ListByUser(ctx, userID)
}

// GetByID returns the receipt only when it exists and belongs to the caller.
// A foreign receipt answers not-found so existence doesn't leak.
func (s *ReceiptService) GetByID(ctx context.Context, userID int, id string) (models.Receipt, error) {
	rec, err := s.receipts.GetByID(ctx, id)
	if err != nil {
		return models.Receipt{}, err
	}
	if rec == nil || rec.UserID != userID {
		return models.Receipt{}, ErrNotFound
	}
	return *rec, nil
}

// Update overwrites the mutable fields after the same validation as Create.
// Here ownership is distinguished from nonexistence: a foreign receipt is
// forbidden, not hidden.
func (s *ReceiptService) Update(ctx context.Context, userID int, id string, p ReceiptParams) (models.Receipt, error) {
	if err := validateParams(p); err != nil {
		return models.Receipt{}, err
	}

	rec, err := s.receipts.GetByID(ctx, id)
	if err != nil {
		return models.Receipt{}, err
	}
	if rec == nil {
		return models.Receipt{}, ErrNotFound
	}
	if rec.UserID != userID {
		return models.Receipt{}, ErrForbidden
	}

	date := p.Date
	if date.IsZero() {
		date = rec.Date
	}

	rec.Date = date.UTC()
	rec.Items = p.Items
	rec.TotalAmount = models.SumItems(p.Items)
	rec.Note = p.Note
	rec.PaymentMethod = p.PaymentMethod
	rec.Tags = p.Tags
	rec.Store = p.Store

	if err := s.receipts.Update(ctx, *rec); err != nil {
		return models.Receipt{}, err
	}
	return *rec, nil
}

// Delete removes the receipt; missing and not-owned both answer not-found.
func (s *ReceiptService) Delete(ctx context.Context, userID int, id string) error {
	deleted, err := s.receipts.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// CategoryItems flattens every matching item across the caller's receipts,
// annotated with its parent receipt for display.
func (s *ReceiptService) CategoryItems(ctx context.Context, userID int, category string) ([]models.CategoryItem, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category query parameter is required", ErrValidation)
	}

	receipts, err := s.receipts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.CategoryItem, 0)
	for _, rec := range receipts {
		for _, item := range rec.Items {
			if !containsFold(item.Categories, category) {
				continue
			}
			matched = append(matched, models.CategoryItem{
				Item:         item,
				ReceiptID:    rec.ID,
				ReceiptDate:  rec.Date,
				ReceiptStore: rec.Store,
				ReceiptTotal: rec.TotalAmount,
			})
		}
	}
	return matched, nil
}
