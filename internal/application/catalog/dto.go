package catalog

import (
	"time"

	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string          `json:"nom" binding:"required,max=200"`
	Reference   string          `json:"reference" binding:"required,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"prix" binding:"required"`
	Stock       *int            `json:"stock"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"nom" binding:"omitempty,max=200"`
	Reference   *string          `json:"reference" binding:"omitempty,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"prix"`
	Stock       *int             `json:"stock"`
	Active      *bool            `json:"is_active"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"nom"`
	Reference   string          `json:"reference"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"prix"`
	Stock       int             `json:"stock"`
	Active      bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListFilter represents filter options for the product list
type ListFilter struct {
	Search   string `form:"search"`
	Status   *bool  `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToSharedFilter converts the list filter to a shared repository filter
func (f ListFilter) ToSharedFilter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.Search = f.Search
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.Status != nil {
		filter.Filters = map[string]interface{}{"is_active": *f.Status}
	}
	return filter
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Reference:   p.Reference,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
