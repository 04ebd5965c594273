package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/logger"
	"stagedoor/internal/service"
)

type Handlers struct {
	services *service.Services
}

func New(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// respondError maps a service error onto an HTTP status and a JSON error
// body. Unclassified errors become opaque 500s; the detail goes to the log,
// not the client.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).Error("Request handling failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
	}
	c.JSON(status, gin.H{"error": apperrors.MessageOf(err, "Internal server error")})
}

func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
