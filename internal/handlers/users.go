package handlers

import (
	"net/http"
	"path/filepath"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// profileResponse is the public profile shape.
func profileResponse(u models.User) gin.H {
	return gin.H{
		"id":                  u.ID,
		"username":            u.Username,
		"email":               u.Email,
		"photo":               u.Photo,
		"name":                u.Name,
		"surname":             u.Surname,
		"location":            u.Location,
		"bio":                 u.Bio,
		"categories":          u.Categories,
		"favouriteCategories": u.FavouriteCategories,
		"joined":              u.CreatedAt,
	}
}

// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	u, err := h.services.Profile.Get(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err, "profile_get_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusOK, profileResponse(u))
}

// @Summary      Spending statistics
// @Description  Receipt count, total/average/current-month spend and top 3 categories.
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.Stats
// @Failure      500  {object}  map[string]string
// @Router       /users/stats [get]
// @Security     BearerAuth
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.services.Statistics.Summary(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err, "stats_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// updateProfile edits the profile fields sent as multipart form values and
// optionally stores an uploaded photo.
func (h *Handler) updateProfile(c *gin.Context) {
	update := service.ProfileUpdate{
		Name:     c.PostForm("name"),
		Surname:  c.PostForm("surname"),
		Location: c.PostForm("location"),
		Bio:      c.PostForm("bio"),
	}

	if file, err := c.FormFile("photo"); err == nil && file != nil {
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, filename)); err != nil {
			h.respondError(c, err, "photo_save_failed", "user", callerID(c))
			return
		}
		update.Photo = "/public/images/" + filename
	}

	u, err := h.services.Profile.Update(c.Request.Context(), callerID(c), update)
	if err != nil {
		h.respondError(c, err, "profile_update_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusOK, profileResponse(u))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/changePassword [put]
// @Security     BearerAuth
func (h *Handler) changePassword(c *gin.Context) {
	var input changePasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Profile.ChangePassword(c.Request.Context(), callerID(c), input.CurrentPassword, input.NewPassword)
	if err != nil {
		h.respondError(c, err, "change_password_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// @Summary      Delete own account
// @Description  Removes the account and every owned receipt.
// @Tags         users
// @Produce      json
// @Param        password  query  string  true  "current password"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/deleteUser [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	err := h.services.Profile.DeleteAccount(c.Request.Context(), callerID(c), c.Query("password"))
	if err != nil {
		h.respondError(c, err, "delete_account_failed", "user", callerID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
