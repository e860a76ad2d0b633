package handler

import (
	"net/http"
	"time"

	"github.com/gescom/backend/internal/infrastructure/config"
	"github.com/gescom/backend/internal/infrastructure/persistence"
	"github.com/gescom/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SystemHandler exposes health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	cfg *config.Config
	db  *persistence.Database
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(cfg *config.Config, db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		cfg: cfg,
		db:  db,
	}
}

// Health handles GET /health. It reports liveness only.
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":    "ok",
		"app":       h.cfg.App.Name,
		"env":       h.cfg.App.Env,
		"timestamp": time.Now().UTC(),
	})
}

// Ready handles GET /ready. It checks the database connection.
func (h *SystemHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.ErrCodeInternal,
			"Database is not reachable",
		))
		return
	}

	h.Success(c, gin.H{
		"status":   "ready",
		"database": "up",
	})
}
