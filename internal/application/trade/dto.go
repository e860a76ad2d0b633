package trade

import (
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create a supplier order
type CreateOrderRequest struct {
	Number      string          `json:"numero" binding:"required,max=50"`
	PartnerID   uuid.UUID       `json:"partenaire_id" binding:"required"`
	TotalAmount decimal.Decimal `json:"montant_total"`
}

// UpdateOrderAmountRequest represents a request to change a draft order's amount
type UpdateOrderAmountRequest struct {
	TotalAmount decimal.Decimal `json:"montant_total" binding:"required"`
}

// OrderResponse represents a supplier order in API responses
type OrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"numero"`
	PartnerID   uuid.UUID       `json:"partenaire_id"`
	Status      string          `json:"statut"`
	TotalAmount decimal.Decimal `json:"montant_total"`
	OrderedAt   time.Time       `json:"date_commande"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListFilter represents filter options for the supplier order list
type ListFilter struct {
	Search    string `form:"search"`
	Status    string `form:"statut" binding:"omitempty,oneof=brouillon confirmee recue annulee"`
	PartnerID string `form:"partenaire_id" binding:"omitempty,uuid"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToSharedFilter converts the list filter to a shared repository filter
func (f ListFilter) ToSharedFilter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.Search = f.Search
	filter.OrderBy = "date_commande"
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}

	filters := map[string]interface{}{}
	if f.Status != "" {
		filters["statut"] = f.Status
	}
	if f.PartnerID != "" {
		filters["partenaire_id"] = f.PartnerID
	}
	if len(filters) > 0 {
		filter.Filters = filters
	}
	return filter
}

// ToOrderResponse converts a domain SupplierOrder to OrderResponse
func ToOrderResponse(o *trade.SupplierOrder) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		PartnerID:   o.PartnerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		OrderedAt:   o.OrderedAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
