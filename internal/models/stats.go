package models

// CategoryTotal is one entry of the top-categories ranking.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Stats is the spending summary for one user. Monetary values are rounded
// to 2 decimal places.
type Stats struct {
	TotalReceipts     int             `json:"totalReceipts"`
	TotalSpent        float64         `json:"totalSpent"`
	AvgPerReceipt     float64         `json:"avgPerReceipt"`
	CurrentMonthSpent float64         `json:"currentMonthSpent"`
	TopCategories     []CategoryTotal `json:"topCategories"`
}
