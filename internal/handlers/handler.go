package handlers

import (
	"errors"
	"net/http"

	"receipt_keeper/internal/logger"
	"receipt_keeper/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	uploadsDir string
}

// NewHandler constructs a new HTTP handler with dependencies. uploadsDir is
// where profile photos land on disk.
func NewHandler(services *service.Service, log *logger.Logger, uploadsDir string) *Handler {
	return &Handler{services: services, log: log, uploadsDir: uploadsDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	if h.uploadsDir != "" {
		router.Static("/public/images", h.uploadsDir)
	}

	h.registerUserRoutes(router)
	h.registerReceiptRoutes(router)
	h.registerExtractionRoutes(router)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)

		private := users.Group("", h.userIdMiddleware)
		{
			private.GET("/profile", h.getProfile)
			private.GET("/stats", h.getStats)
			private.PUT("/updateProfile", h.updateProfile)
			private.PUT("/changePassword", h.changePassword)
			private.POST("/newCategory", h.createCategory)
			private.DELETE("/deleteCategory", h.deleteCategory)
			private.POST("/addCategoryToFavourites", h.toggleFavourite)
			private.DELETE("/deleteUser", h.deleteUser)
		}
	}
}

func (h *Handler) registerReceiptRoutes(r *gin.Engine) {
	receipts := r.Group("/receipts", h.userIdMiddleware)
	{
		receipts.POST("/new", h.createReceipt)
		receipts.GET("/getAll", h.listReceipts)
		receipts.GET("/getCategoryItems", h.getCategoryItems)
		receipts.PUT("/update/:id", h.updateReceipt)
		receipts.DELETE("/deleteReceipt", h.deleteReceipt)
		receipts.GET("/:id", h.getReceipt)
	}
}

func (h *Handler) registerExtractionRoutes(r *gin.Engine) {
	gcloud := r.Group("/gcloud", h.userIdMiddleware)
	{
		gcloud.POST("/process", h.processDocument)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service errors onto the status taxonomy: validation 400,
// wrong credentials 401, wrong owner 403, missing resource 404 and everything
// else a logged, generic 500.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this resource"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSONOrBadRequest binds the request body into dst, answering 400 on
// failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
