package handlers

import (
	"net/http"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse is the profile + token shape shared by register and login.
func authResponse(u models.User, token string) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"token":    token,
	}
}

// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}  "profile + token"
// @Failure      400  {object}  map[string]string
// @Router       /users/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, token, err := h.services.Register(c.Request.Context(), service.RegisterParams{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Surname:  input.Surname,
	})
	if err != nil {
		h.respondError(c, err, "register_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, authResponse(u, token))
}

// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "profile + token"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err, "login_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, authResponse(u, token))
}
