package models

import (
	"github.com/gescom/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// PartnerModel is the persistence model for the Partner domain entity.
// Column names follow the legacy French schema of the partenaires table.
type PartnerModel struct {
	BaseModel
	Type               partner.Type    `gorm:"column:type_partenaire;type:varchar(20);not null"`
	FirstName          string          `gorm:"column:prenom;type:varchar(100)"`
	LastName           string          `gorm:"column:nom;type:varchar(100)"`
	Gender             string          `gorm:"column:sexe;type:varchar(20)"`
	LegalName          string          `gorm:"column:denomination_sociale;type:varchar(200)"`
	TradeName          string          `gorm:"column:nom_commercial;type:varchar(200)"`
	SIRET              string          `gorm:"column:siret;type:varchar(14)"`
	Email              string          `gorm:"column:email;type:varchar(200);index"`
	Phone              string          `gorm:"column:telephone;type:varchar(50)"`
	Address            string          `gorm:"column:adresse;type:text"`
	PostalCode         string          `gorm:"column:code_postal;type:varchar(20)"`
	City               string          `gorm:"column:ville;type:varchar(100)"`
	Country            string          `gorm:"column:pays;type:varchar(100)"`
	ShippingAddress    string          `gorm:"column:adresse_livraison;type:text"`
	ShippingPostalCode string          `gorm:"column:code_postal_livraison;type:varchar(20)"`
	ShippingCity       string          `gorm:"column:ville_livraison;type:varchar(100)"`
	ShippingCountry    string          `gorm:"column:pays_livraison;type:varchar(100)"`
	IndustrySegment    string          `gorm:"column:segment_industrie;type:varchar(100);index"`
	PaymentTerms       string          `gorm:"column:conditions_paiement;type:varchar(100)"`
	VATRate            decimal.Decimal `gorm:"column:taux_tva;type:decimal(5,2);not null;default:0"`
	Language           string          `gorm:"column:langue;type:varchar(2);not null;default:'fr'"`
	Timezone           string          `gorm:"column:timezone;type:varchar(50);not null;default:'Europe/Paris'"`
	Active             bool            `gorm:"column:is_active;not null;default:true;index"`
	DisplayName        string          `gorm:"column:nom_complet;type:varchar(300);index"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "partenaires"
}

// ToDomain converts the persistence model to a domain Partner entity.
func (m *PartnerModel) ToDomain() *partner.Partner {
	return &partner.Partner{
		BaseEntity:         m.BaseModel.ToDomain(),
		Type:               m.Type,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Gender:             m.Gender,
		LegalName:          m.LegalName,
		TradeName:          m.TradeName,
		SIRET:              m.SIRET,
		Email:              m.Email,
		Phone:              m.Phone,
		Address:            m.Address,
		PostalCode:         m.PostalCode,
		City:               m.City,
		Country:            m.Country,
		ShippingAddress:    m.ShippingAddress,
		ShippingPostalCode: m.ShippingPostalCode,
		ShippingCity:       m.ShippingCity,
		ShippingCountry:    m.ShippingCountry,
		IndustrySegment:    m.IndustrySegment,
		PaymentTerms:       m.PaymentTerms,
		VATRate:            m.VATRate,
		Language:           m.Language,
		Timezone:           m.Timezone,
		Active:             m.Active,
		DisplayName:        m.DisplayName,
	}
}

// FromDomain populates the persistence model from a domain Partner entity.
func (m *PartnerModel) FromDomain(p *partner.Partner) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Type = p.Type
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Gender = p.Gender
	m.LegalName = p.LegalName
	m.TradeName = p.TradeName
	m.SIRET = p.SIRET
	m.Email = p.Email
	m.Phone = p.Phone
	m.Address = p.Address
	m.PostalCode = p.PostalCode
	m.City = p.City
	m.Country = p.Country
	m.ShippingAddress = p.ShippingAddress
	m.ShippingPostalCode = p.ShippingPostalCode
	m.ShippingCity = p.ShippingCity
	m.ShippingCountry = p.ShippingCountry
	m.IndustrySegment = p.IndustrySegment
	m.PaymentTerms = p.PaymentTerms
	m.VATRate = p.VATRate
	m.Language = p.Language
	m.Timezone = p.Timezone
	m.Active = p.Active
	m.DisplayName = p.DisplayName
}

// PartnerModelFromDomain creates a new persistence model from a domain Partner entity.
func PartnerModelFromDomain(p *partner.Partner) *PartnerModel {
	m := &PartnerModel{}
	m.FromDomain(p)
	return m
}
