package service

import (
	"context"
	"testing"
	"time"

	"receipt_keeper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Summary(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	receipts := []models.Receipt{
		{
			ID:          "r1",
			Date:        now.AddDate(0, -1, 0), // previous month
			TotalAmount: 10.005,
			Items: []models.Item{
				{Name: "bread", TotalPrice: 10.005, Categories: []string{"Food"}},
			},
		},
		{
			ID:          "r2",
			Date:        now,
			TotalAmount: 20,
			Items: []models.Item{
				{Name: "pasta", TotalPrice: 4.995, Categories: []string{"Food"}},
				{Name: "soap", TotalPrice: 15.005, Categories: []string{"Household"}},
			},
		},
	}

	svc := NewStatsService(&receiptsStub{
		listByUserFn: func(ctx context.Context, userID int) ([]models.Receipt, error) {
			return receipts, nil
		},
	})
	svc.now = func() time.Time { return now }

	stats, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalReceipts)
	assert.Equal(t, 30.01, stats.TotalSpent)
	assert.Equal(t, 15.01, stats.AvgPerReceipt)
	assert.Equal(t, 20.0, stats.CurrentMonthSpent)

	require.Len(t, stats.TopCategories, 2)
	assert.Equal(t, "Household", stats.TopCategories[0].Category)
	assert.Equal(t, 15.01, stats.TopCategories[0].Total)
	assert.Equal(t, "Food", stats.TopCategories[1].Category)
	assert.Equal(t, 15.0, stats.TopCategories[1].Total)
}

func TestStatsService_SummaryEmpty(t *testing.T) {
	svc := NewStatsService(&receiptsStub{
		listByUserFn: func(ctx context.Context, userID int) ([]models.Receipt, error) {
			return nil, nil
		},
	})

	stats, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalReceipts)
	assert.Zero(t, stats.TotalSpent)
	assert.Zero(t, stats.AvgPerReceipt) // no division-by-zero fault
	assert.Zero(t, stats.CurrentMonthSpent)
	assert.Empty(t, stats.TopCategories)
}

func TestStatsService_TopCategoriesRanking(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	// One item with two labels contributes its full price to both.
	receipts := []models.Receipt{
		{
			Date:        now,
			TotalAmount: 40,
			Items: []models.Item{
				{Name: "vitamins", TotalPrice: 10, Categories: []string{"Pharmacy", "Fitness"}},
				{Name: "shoes", TotalPrice: 25, Categories: []string{"Clothes"}},
				{Name: "snack", TotalPrice: 5, Categories: []string{"Groceries"}},
			},
		},
	}

	svc := NewStatsService(&receiptsStub{
		listByUserFn: func(ctx context.Context, userID int) ([]models.Receipt, error) {
			return receipts, nil
		},
	})
	svc.now = func() time.Time { return now }

	stats, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, stats.TopCategories, 3)
	assert.Equal(t, "Clothes", stats.TopCategories[0].Category)
	// Pharmacy and Fitness tie at 10; first-seen order breaks the tie.
	assert.Equal(t, "Pharmacy", stats.TopCategories[1].Category)
	assert.Equal(t, "Fitness", stats.TopCategories[2].Category)
}
