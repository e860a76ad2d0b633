package handler

import (
	"github.com/gescom/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes the dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	service *dashboard.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *dashboard.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// Counts handles GET /dashboard/counts
func (h *DashboardHandler) Counts(c *gin.Context) {
	counts, err := h.service.GetCounts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to collect dashboard counts", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, counts)
}

// Modules handles GET /dashboard/modules
func (h *DashboardHandler) Modules(c *gin.Context) {
	h.Success(c, h.service.Modules())
}
