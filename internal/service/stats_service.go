package service

import (
	"context"
	"math"
	"sort"
	"time"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/repository"
)

const topCategoriesLimit = 3

// StatsService aggregates a user's receipts into a spending summary.
// The clock is injectable so month boundaries are testable.
type StatsService struct {
	receipts repository.Receipts
	now      func() time.Time
}

func NewStatsService(receipts repository.Receipts) *StatsService {
	return &StatsService{receipts: receipts, now: time.Now}
}

// round2 rounds half-up to 2 decimal places for presentation; stored totals
// stay exact. The epsilon keeps half-cent sums like 10.005+20 from landing
// just below the boundary in binary floating point.
func round2(v float64) float64 {
	return math.Round(v*100+1e-9) / 100
}

// Summary computes all metrics in a single pass over the user's receipts.
func (s *StatsService) Summary(ctx context.Context, userID int) (models.Stats, error) {
	receipts, err := s.receipts.ListByUser(ctx, userID)
	if err != nil {
		return models.Stats{}, err
	}

	now := s.now()
	currentMonth, currentYear := now.Month(), now.Year()

	var (
		totalSpent        float64
		currentMonthSpent float64
		categoryTotals    = map[string]float64{}
		categoryOrder     []string // first-seen order breaks ranking ties
	)

	for _, rec := range receipts {
		totalSpent += rec.TotalAmount
		if rec.Date.Month() == currentMonth && rec.Date.Year() == currentYear {
			currentMonthSpent += rec.TotalAmount
		}
		for _, item := range rec.Items {
			// An item with several labels contributes its full
			// price to each of them.
			for _, category := range item.Categories {
				if _, seen := categoryTotals[category]; !seen {
					categoryOrder = append(categoryOrder, category)
				}
				categoryTotals[category] += item.TotalPrice
			}
		}
	}

	// The average divides the already-rounded total so the reported
	// figures stay mutually consistent; zero receipts average to zero.
	totalSpentRounded := round2(totalSpent)
	avgPerReceipt := 0.0
	if len(receipts) > 0 {
		avgPerReceipt = totalSpentRounded / float64(len(receipts))
	}

	sort.SliceStable(categoryOrder, func(i, j int) bool {
		return categoryTotals[categoryOrder[i]] > categoryTotals[categoryOrder[j]]
	})
	if len(categoryOrder) > topCategoriesLimit {
		categoryOrder = categoryOrder[:topCategoriesLimit]
	}

	top := make([]models.CategoryTotal, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		top = append(top, models.CategoryTotal{
			Category: category,
			Total:    round2(categoryTotals[category]),
		})
	}

	return models.Stats{
		TotalReceipts:     len(receipts),
		TotalSpent:        totalSpentRounded,
		AvgPerReceipt:     round2(avgPerReceipt),
		CurrentMonthSpent: round2(currentMonthSpent),
		TopCategories:     top,
	}, nil
}
