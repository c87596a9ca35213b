package service

import (
	"context"

	"receipt_keeper/internal/integrations/docai"
	"receipt_keeper/internal/models"
)

// Fields with a confidence below this are discarded.
const confidenceThreshold = 0.7

// ExtractionService reshapes the flat entity stream of the external
// document-extraction service into a draft receipt.
type ExtractionService struct {
	processor DocumentProcessor
}

func NewExtractionService(processor DocumentProcessor) *ExtractionService {
	return &ExtractionService{processor: processor}
}

// ProcessDocument sends the document out for extraction and assembles the
// returned entities into a draft. The draft is never persisted.
func (s *ExtractionService) ProcessDocument(ctx context.Context, content []byte, mimeType string) (models.Draft, error) {
	entities, err := s.processor.Process(ctx, content, mimeType)
	if err != nil {
		return models.Draft{}, err
	}
	return assembleDraft(entities), nil
}

// assembleDraft maps scalar entity types onto the draft and pairs the
// consecutively emitted item fields into draft items: each field lands on the
// first item still missing it, otherwise a new item is opened.
func assembleDraft(entities []docai.Entity) models.Draft {
	draft := models.Draft{Items: []models.DraftItem{}}

	for _, e := range entities {
		if e.Confidence < confidenceThreshold {
			continue
		}

		switch e.Type {
		case "date":
			draft.Date = e.MentionText
		case "location":
			draft.Location = e.MentionText
		case "paymentMethod":
			draft.PaymentMethod = e.MentionText
		case "storeName":
			draft.StoreName = e.MentionText
		case "totalAmount":
			draft.TotalAmount = e.MentionText
		case "itemName", "itemQuantity", "itemUnitPrice", "itemTotalPrice":
			placeItemField(&draft.Items, e.Type, e.MentionText)
		}
	}
	return draft
}

func placeItemField(items *[]models.DraftItem, fieldType, value string) {
	for i := range *items {
		field := itemField(&(*items)[i], fieldType)
		if *field == "" {
			*field = value
			return
		}
	}
	item := models.DraftItem{}
	*itemField(&item, fieldType) = value
	*items = append(*items, item)
}

func itemField(item *models.DraftItem, fieldType string) *string {
	switch fieldType {
	case "itemQuantity":
		return &item.Quantity
	case "itemUnitPrice":
		return &item.UnitPrice
	case "itemTotalPrice":
		return &item.TotalPrice
	default:
		return &item.Name
	}
}
