package models

// DraftItem is one extracted line item. Values are raw strings straight from
// the extraction service; nothing is parsed or validated.
type DraftItem struct {
	Name       string `json:"itemName,omitempty"`
	Quantity   string `json:"itemQuantity,omitempty"`
	UnitPrice  string `json:"itemUnitPrice,omitempty"`
	TotalPrice string `json:"itemTotalPrice,omitempty"`
}

// Draft is a best-effort receipt shape assembled from a scanned document.
// It is a suggestion for the user to edit and is never persisted.
type Draft struct {
	Date          string      `json:"date,omitempty"`
	Location      string      `json:"location,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	StoreName     string      `json:"storeName,omitempty"`
	TotalAmount   string      `json:"totalAmount,omitempty"`
	Items         []DraftItem `json:"items"`
}
