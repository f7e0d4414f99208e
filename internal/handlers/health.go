package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"youact-backend/internal/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db             Pinger
	storageEnabled bool
}

func NewHealthHandler(db Pinger, storageEnabled bool) *HealthHandler {
	return &HealthHandler{db: db, storageEnabled: storageEnabled}
}

// Check godoc
// @Summary     Health check
// @Description Returns the health status of the API and its backing store
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := models.HealthResponse{Status: "ok", Database: "ok", Storage: "disabled"}
	if h.storageEnabled {
		response.Storage = "enabled"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
