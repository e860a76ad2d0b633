package trade

import (
	"context"
	"time"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a supplier order
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "brouillon"
	OrderStatusConfirmed OrderStatus = "confirmee"
	OrderStatusReceived  OrderStatus = "recue"
	OrderStatusCancelled OrderStatus = "annulee"
)

// SupplierOrder represents a purchase order placed with a partner
// (table commandes_fournisseurs)
type SupplierOrder struct {
	shared.BaseEntity
	Number      string // numero
	PartnerID   uuid.UUID
	Status      OrderStatus
	TotalAmount decimal.Decimal // montant_total
	OrderedAt   time.Time       // date_commande
}

// TableName returns the table name for GORM
func (SupplierOrder) TableName() string {
	return "commandes_fournisseurs"
}

// New creates a new draft supplier order
func New(number string, partnerID uuid.UUID, totalAmount decimal.Decimal) (*SupplierOrder, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Order number cannot be empty")
	}
	if partnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTNER", "Order must reference a partner")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Order amount cannot be negative")
	}

	return &SupplierOrder{
		BaseEntity:  shared.NewBaseEntity(),
		Number:      number,
		PartnerID:   partnerID,
		Status:      OrderStatusDraft,
		TotalAmount: totalAmount,
		OrderedAt:   time.Now(),
	}, nil
}

// SetTotalAmount replaces the order total while the order is still a draft
func (o *SupplierOrder) SetTotalAmount(amount decimal.Decimal) error {
	if o.Status != OrderStatusDraft {
		return shared.ErrInvalidState
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Order amount cannot be negative")
	}
	o.TotalAmount = amount
	o.Touch()
	return nil
}

// Confirm moves a draft order to confirmed
func (o *SupplierOrder) Confirm() error {
	if o.Status != OrderStatusDraft {
		return shared.ErrInvalidState
	}
	o.Status = OrderStatusConfirmed
	o.Touch()
	return nil
}

// Receive marks a confirmed order as received
func (o *SupplierOrder) Receive() error {
	if o.Status != OrderStatusConfirmed {
		return shared.ErrInvalidState
	}
	o.Status = OrderStatusReceived
	o.Touch()
	return nil
}

// Cancel cancels an order that has not been received
func (o *SupplierOrder) Cancel() error {
	if o.Status == OrderStatusReceived || o.Status == OrderStatusCancelled {
		return shared.ErrInvalidState
	}
	o.Status = OrderStatusCancelled
	o.Touch()
	return nil
}

// Repository defines the interface for supplier order persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SupplierOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, o *SupplierOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
}
