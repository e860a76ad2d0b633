package models

import (
	"time"

	"github.com/gescom/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierOrderModel is the persistence model for the SupplierOrder domain entity.
type SupplierOrderModel struct {
	BaseModel
	Number      string            `gorm:"column:numero;type:varchar(50);not null;uniqueIndex"`
	PartnerID   uuid.UUID         `gorm:"column:partenaire_id;type:uuid;not null;index"`
	Status      trade.OrderStatus `gorm:"column:statut;type:varchar(20);not null;default:'brouillon'"`
	TotalAmount decimal.Decimal   `gorm:"column:montant_total;type:decimal(18,4);not null;default:0"`
	OrderedAt   time.Time         `gorm:"column:date_commande;not null"`
}

// TableName returns the table name for GORM
func (SupplierOrderModel) TableName() string {
	return "commandes_fournisseurs"
}

// ToDomain converts the persistence model to a domain SupplierOrder entity.
func (m *SupplierOrderModel) ToDomain() *trade.SupplierOrder {
	return &trade.SupplierOrder{
		BaseEntity:  m.BaseModel.ToDomain(),
		Number:      m.Number,
		PartnerID:   m.PartnerID,
		Status:      m.Status,
		TotalAmount: m.TotalAmount,
		OrderedAt:   m.OrderedAt,
	}
}

// FromDomain populates the persistence model from a domain SupplierOrder entity.
func (m *SupplierOrderModel) FromDomain(o *trade.SupplierOrder) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Number = o.Number
	m.PartnerID = o.PartnerID
	m.Status = o.Status
	m.TotalAmount = o.TotalAmount
	m.OrderedAt = o.OrderedAt
}

// SupplierOrderModelFromDomain creates a new persistence model from a domain SupplierOrder entity.
func SupplierOrderModelFromDomain(o *trade.SupplierOrder) *SupplierOrderModel {
	m := &SupplierOrderModel{}
	m.FromDomain(o)
	return m
}
