package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/pkg/services"
)

// mapServiceError writes the HTTP rendition of a service-layer error.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrNotRunnable):
		c.JSON(http.StatusConflict, gin.H{"error": "spec is not runnable"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": "resource was modified concurrently"})
	default:
		slog.Error("Unexpected service error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
