package catalog

import (
	"context"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product (table products)
type Product struct {
	shared.BaseEntity
	Name        string // nom
	Reference   string
	Description string
	Price       decimal.Decimal // prix
	Stock       int
	Active      bool
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// New creates a new product
func New(name, reference string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Reference:  reference,
		Price:      price,
		Active:     true,
	}, nil
}

// Update replaces the product's descriptive fields
func (p *Product) Update(name, reference, description string, price decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.Name = name
	p.Reference = reference
	p.Description = description
	p.Price = price
	p.Touch()
	return nil
}

// SetStock replaces the stock level
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Stock = stock
	p.Touch()
	return nil
}

// SetActive enables or disables the product
func (p *Product) SetActive(active bool) {
	p.Active = active
	p.Touch()
}

// Repository defines the interface for product persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
