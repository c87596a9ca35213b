package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Extract a draft receipt from an uploaded document
// @Description  Forwards the file to the document-extraction service and
// @Description  returns an editable draft. Nothing is persisted.
// @Tags         extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "receipt image or PDF"
// @Success      200  {object}  models.Draft
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /gcloud/process [post]
// @Security     BearerAuth
func (h *Handler) processDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err, "upload_open_failed", "user", callerID(c))
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, err, "upload_read_failed", "user", callerID(c))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	draft, err := h.services.Extraction.ProcessDocument(c.Request.Context(), content, mimeType)
	if err != nil {
		h.respondError(c, err, "document_process_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusOK, draft)
}
