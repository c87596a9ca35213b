package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type newCategoryRequest struct {
	Name string `json:"name"`
}

type favouriteRequest struct {
	CategoryName string `json:"categoryName"`
	Add          *bool  `json:"add"`
}

// @Summary      Add a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}  "updated category list"
// @Failure      400  {object}  map[string]string
// @Router       /users/newCategory [post]
// @Security     BearerAuth
func (h *Handler) createCategory(c *gin.Context) {
	var input newCategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	categories, err := h.services.Categories.Create(c.Request.Context(), callerID(c), input.Name)
	if err != nil {
		h.respondError(c, err, "category_create_failed", "user", callerID(c), "name", input.Name)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categories": categories})
}

// @Summary      Delete a category
// @Description  Removes the category from the list and favourites and strips
// @Description  it from every item across the caller's receipts.
// @Tags         categories
// @Produce      json
// @Param        name  query  string  true  "category name"
// @Success      200  {object}  service.CategoryCascade
// @Failure      404  {object}  map[string]string
// @Router       /users/deleteCategory [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
	result, err := h.services.Categories.Delete(c.Request.Context(), callerID(c), c.Query("name"))
	if err != nil {
		h.respondError(c, err, "category_delete_failed", "user", callerID(c), "name", c.Query("name"))
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Toggle a favourite category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "updated favourites"
// @Failure      400  {object}  map[string]string
// @Router       /users/addCategoryToFavourites [post]
// @Security     BearerAuth
func (h *Handler) toggleFavourite(c *gin.Context) {
	var input favouriteRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if input.Add == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "add flag is required"})
		return
	}

	favourites, err := h.services.Categories.SetFavourite(c.Request.Context(), callerID(c), input.CategoryName, *input.Add)
	if err != nil {
		h.respondError(c, err, "favourite_toggle_failed", "user", callerID(c), "name", input.CategoryName)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favouriteCategories": favourites})
}
