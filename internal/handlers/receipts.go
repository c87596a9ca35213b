package handlers

import (
	"net/http"
	"time"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/service"

	"github.com/gin-gonic/gin"
)

// receiptRequest is the caller-settable receipt shape; totalAmount is
// deliberately absent.
type receiptRequest struct {
	Items         []models.Item `json:"items"`
	Note          string        `json:"note"`
	PaymentMethod string        `json:"paymentMethod"`
	Tags          []string      `json:"tags"`
	Store         string        `json:"store"`
	Date          *time.Time    `json:"date"`
}

func (r receiptRequest) params() service.ReceiptParams {
	p := service.ReceiptParams{
		Items:         r.Items,
		Note:          r.Note,
		PaymentMethod: r.PaymentMethod,
		Tags:          r.Tags,
		Store:         r.Store,
	}
	if r.Date != nil {
		p.Date = *r.Date
	}
	return p
}

// @Summary      Create a receipt
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Receipt
// @Failure      400  {object}  map[string]string
// @Router       /receipts/new [post]
// @Security     BearerAuth
func (h *Handler) createReceipt(c *gin.Context) {
	var input receiptRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	rec, err := h.services.Receipts.Create(c.Request.Context(), callerID(c), input.params())
	if err != nil {
		h.respondError(c, err, "receipt_create_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// @Summary      List own receipts, newest first
// @Tags         receipts
// @Produce      json
// @Success      200  {array}  models.Receipt
// @Router       /receipts/getAll [get]
// @Security     BearerAuth
func (h *Handler) listReceipts(c *gin.Context) {
	receipts, err := h.services.Receipts.List(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err, "receipt_list_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// @Summary      Fetch one receipt
// @Tags         receipts
// @Produce      json
// @Success      200  {object}  models.Receipt
// @Failure      404  {object}  map[string]string
// @Router       /receipts/{id} [get]
// @Security     BearerAuth
func (h *Handler) getReceipt(c *gin.Context) {
	rec, err := h.services.Receipts.GetByID(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "receipt_get_failed", "user", callerID(c), "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Update a receipt
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Receipt
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /receipts/update/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateReceipt(c *gin.Context) {
	var input receiptRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	rec, err := h.services.Receipts.Update(c.Request.Context(), callerID(c), c.Param("id"), input.params())
	if err != nil {
		h.respondError(c, err, "receipt_update_failed", "user", callerID(c), "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Delete a receipt
// @Tags         receipts
// @Produce      json
// @Param        selectedId  query  string  true  "receipt id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /receipts/deleteReceipt [delete]
// @Security     BearerAuth
func (h *Handler) deleteReceipt(c *gin.Context) {
	id := c.Query("selectedId")
	if err := h.services.Receipts.Delete(c.Request.Context(), callerID(c), id); err != nil {
		h.respondError(c, err, "receipt_delete_failed", "user", callerID(c), "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "receipt deleted"})
}

// @Summary      Items in a category
// @Description  Case-insensitive match across all of the caller's receipts,
// @Description  each item annotated with its parent receipt.
// @Tags         receipts
// @Produce      json
// @Param        category  query  string  true  "category name"
// @Success      200  {array}  models.CategoryItem
// @Failure      400  {object}  map[string]string
// @Router       /receipts/getCategoryItems [get]
// @Security     BearerAuth
func (h *Handler) getCategoryItems(c *gin.Context) {
	items, err := h.services.Receipts.CategoryItems(c.Request.Context(), callerID(c), c.Query("category"))
	if err != nil {
		h.respondError(c, err, "category_items_failed", "user", callerID(c), "category", c.Query("category"))
		return
	}
	c.JSON(http.StatusOK, items)
}
