package models

import "time"

// Accepted payment method tags.
const (
	PaymentCash   = "Cash"
	PaymentCard   = "Card"
	PaymentMobile = "Mobile"
	PaymentOther  = "Other"
)

// ValidPaymentMethod reports whether m is one of the accepted tags.
// The empty string is allowed (tag is optional).
func ValidPaymentMethod(m string) bool {
	switch m {
	case "", PaymentCash, PaymentCard, PaymentMobile, PaymentOther:
		return true
	}
	return false
}

// Item is a single purchased line on a receipt. Category labels are free-form
// and not checked against the owner's category list at write time.
type Item struct {
	Name       string   `json:"name"`
	Quantity   float64  `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
	Categories []string `json:"categories,omitempty"`
}

// Receipt is a purchase record owned by exactly one user. TotalAmount is
// derived from the items on every write and never settable by the caller.
type Receipt struct {
	ID            string    `json:"id"`
	UserID        int       `json:"-"`
	Date          time.Time `json:"date"`
	Items         []Item    `json:"items"`
	TotalAmount   float64   `json:"totalAmount"`
	Note          string    `json:"note,omitempty"`
	PaymentMethod string    `json:"paymentMethod,omitempty"` // Cash | Card | Mobile | Other
	Tags          []string  `json:"tags,omitempty"`
	Store         string    `json:"store,omitempty"`
}

// SumItems returns the sum of the items' total prices.
func SumItems(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.TotalPrice
	}
	return sum
}

// CategoryItem is an item flattened with its parent receipt's identity,
// produced by the category query for display purposes.
type CategoryItem struct {
	Item
	ReceiptID    string    `json:"receiptId"`
	ReceiptDate  time.Time `json:"receiptDate"`
	ReceiptStore string    `json:"receiptStore,omitempty"`
	ReceiptTotal float64   `json:"receiptTotal"`
}
