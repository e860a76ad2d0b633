package handler

import (
	"context"

	"github.com/gescom/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderHandler exposes the supplier order endpoints
type OrderHandler struct {
	BaseHandler
	service *trade.OrderService
	logger  *zap.Logger
}

// NewOrderHandler creates a new supplier order handler
func NewOrderHandler(service *trade.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /commandes-fournisseurs
func (h *OrderHandler) List(c *gin.Context) {
	var filter trade.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list supplier orders", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	page := filter.ToSharedFilter()
	h.SuccessWithMeta(c, orders, total, page.Page, page.PageSize)
}

// Count handles GET /commandes-fournisseurs/count
func (h *OrderHandler) Count(c *gin.Context) {
	var filter trade.ListFilter
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

// Get handles GET /commandes-fournisseurs/:id
func (h *OrderHandler) Get(c *gin.Context) {
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

// Create handles POST /commandes-fournisseurs
func (h *OrderHandler) Create(c *gin.Context) {
	var req trade.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create supplier order", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// UpdateAmount handles PUT /commandes-fournisseurs/:id/montant
func (h *OrderHandler) UpdateAmount(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req trade.UpdateOrderAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.UpdateAmount(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Confirm handles POST /commandes-fournisseurs/:id/confirmer
func (h *OrderHandler) Confirm(c *gin.Context) {
	h.transition(c, h.service.Confirm)
}

// Receive handles POST /commandes-fournisseurs/:id/recevoir
func (h *OrderHandler) Receive(c *gin.Context) {
	h.transition(c, h.service.Receive)
}

// Cancel handles POST /commandes-fournisseurs/:id/annuler
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

// Delete handles DELETE /commandes-fournisseurs/:id
func (h *OrderHandler) Delete(c *gin.Context) {
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

func (h *OrderHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*trade.OrderResponse, error)) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
