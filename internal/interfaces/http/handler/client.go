package handler

import (
	"github.com/gescom/backend/internal/application/client"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler exposes the client profile endpoints
type ClientHandler struct {
	BaseHandler
	service *client.ClientService
	logger  *zap.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *client.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	var filter client.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	clients, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list clients", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	page := filter.ToSharedFilter()
	h.SuccessWithMeta(c, clients, total, page.Page, page.PageSize)
}

// Count handles GET /clients/count
func (h *ClientHandler) Count(c *gin.Context) {
	var filter client.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	count, err := h.service.Count(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"count": count})
}

// Get handles GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create handles POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req client.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create client", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update handles PUT /clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req client.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetActive handles PATCH /clients/:id/actif
func (h *ClientHandler) SetActive(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req client.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
