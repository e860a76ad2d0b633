package handler

import (
	"github.com/gescom/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler exposes the partner endpoints
type PartnerHandler struct {
	BaseHandler
	queries *partner.CachedQueries
	logger  *zap.Logger
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(queries *partner.CachedQueries, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		queries: queries,
		logger:  logger,
	}
}

// List handles GET /partenaires
func (h *PartnerHandler) List(c *gin.Context) {
	var filter partner.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	partners, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list partners", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, partners)
}

// Count handles GET /partenaires/count
func (h *PartnerHandler) Count(c *gin.Context) {
	var filter partner.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	count, err := h.queries.Count(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to count partners", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"count": count})
}

// Get handles GET /partenaires/:id
func (h *PartnerHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create handles POST /partenaires
func (h *PartnerHandler) Create(c *gin.Context) {
	var req partner.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.queries.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create partner", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update handles PUT /partenaires/:id
func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req partner.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.queries.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetActive handles PATCH /partenaires/:id/actif
func (h *PartnerHandler) SetActive(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req partner.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.queries.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /partenaires/:id
func (h *PartnerHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.queries.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
