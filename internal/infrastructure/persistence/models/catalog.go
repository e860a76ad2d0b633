package models

import (
	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name        string          `gorm:"column:nom;type:varchar(200);not null"`
	Reference   string          `gorm:"column:reference;type:varchar(100);uniqueIndex"`
	Description string          `gorm:"column:description;type:text"`
	Price       decimal.Decimal `gorm:"column:prix;type:decimal(18,4);not null;default:0"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	Active      bool            `gorm:"column:is_active;not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Reference:   m.Reference,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		Active:      m.Active,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Reference = p.Reference
	m.Description = p.Description
	m.Price = p.Price
	m.Stock = p.Stock
	m.Active = p.Active
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
