package api

import (
	"context"
	"net/http"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/db"
	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/biniyam-ayele29/savor-admin/internal/storage"
	"github.com/gin-gonic/gin"
)

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	DB       *db.Database
	Uploader *storage.Uploader
}

// NewHandler creates a handler with the given dependencies.
func NewHandler(database *db.Database, uploader *storage.Uploader) *Handler {
	return &Handler{
		DB:       database,
		Uploader: uploader,
	}
}

// Health reports readiness: the process is up and the database answers a ping.
func (h *Handler) Health(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "Database not initialized",
			Message: "Service starting up; DB unavailable",
		})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.DB.Health(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "Database connection failed",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "savour-admin",
		"timestamp": time.Now().UTC(),
	})
}
