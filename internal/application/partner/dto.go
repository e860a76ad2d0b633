package partner

import (
	"time"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePartnerRequest represents a request to create a new partner.
// JSON field names follow the legacy French schema.
type CreatePartnerRequest struct {
	Type               string           `json:"type_partenaire" binding:"required,oneof=particulier entreprise"`
	FirstName          string           `json:"prenom" binding:"max=100"`
	LastName           string           `json:"nom" binding:"max=100"`
	Gender             string           `json:"sexe" binding:"max=20"`
	LegalName          string           `json:"denomination_sociale" binding:"max=200"`
	TradeName          string           `json:"nom_commercial" binding:"max=200"`
	SIRET              string           `json:"siret" binding:"omitempty,len=14"`
	Email              string           `json:"email" binding:"omitempty,email,max=200"`
	Phone              string           `json:"telephone" binding:"max=50"`
	Address            string           `json:"adresse" binding:"max=500"`
	PostalCode         string           `json:"code_postal" binding:"max=20"`
	City               string           `json:"ville" binding:"max=100"`
	Country            string           `json:"pays" binding:"max=100"`
	ShippingAddress    string           `json:"adresse_livraison" binding:"max=500"`
	ShippingPostalCode string           `json:"code_postal_livraison" binding:"max=20"`
	ShippingCity       string           `json:"ville_livraison" binding:"max=100"`
	ShippingCountry    string           `json:"pays_livraison" binding:"max=100"`
	IndustrySegment    string           `json:"segment_industrie" binding:"max=100"`
	PaymentTerms       string           `json:"conditions_paiement" binding:"max=100"`
	VATRate            *decimal.Decimal `json:"taux_tva"`
	Language           string           `json:"langue" binding:"omitempty,len=2"`
	Timezone           string           `json:"timezone" binding:"max=50"`
	Active             *bool            `json:"is_active"`
}

// UpdatePartnerRequest represents a request to update a partner.
// Nil fields keep their stored values.
type UpdatePartnerRequest struct {
	Type               *string          `json:"type_partenaire" binding:"omitempty,oneof=particulier entreprise"`
	FirstName          *string          `json:"prenom" binding:"omitempty,max=100"`
	LastName           *string          `json:"nom" binding:"omitempty,max=100"`
	Gender             *string          `json:"sexe" binding:"omitempty,max=20"`
	LegalName          *string          `json:"denomination_sociale" binding:"omitempty,max=200"`
	TradeName          *string          `json:"nom_commercial" binding:"omitempty,max=200"`
	SIRET              *string          `json:"siret" binding:"omitempty,len=14"`
	Email              *string          `json:"email" binding:"omitempty,email,max=200"`
	Phone              *string          `json:"telephone" binding:"omitempty,max=50"`
	Address            *string          `json:"adresse" binding:"omitempty,max=500"`
	PostalCode         *string          `json:"code_postal" binding:"omitempty,max=20"`
	City               *string          `json:"ville" binding:"omitempty,max=100"`
	Country            *string          `json:"pays" binding:"omitempty,max=100"`
	ShippingAddress    *string          `json:"adresse_livraison" binding:"omitempty,max=500"`
	ShippingPostalCode *string          `json:"code_postal_livraison" binding:"omitempty,max=20"`
	ShippingCity       *string          `json:"ville_livraison" binding:"omitempty,max=100"`
	ShippingCountry    *string          `json:"pays_livraison" binding:"omitempty,max=100"`
	IndustrySegment    *string          `json:"segment_industrie" binding:"omitempty,max=100"`
	PaymentTerms       *string          `json:"conditions_paiement" binding:"omitempty,max=100"`
	VATRate            *decimal.Decimal `json:"taux_tva"`
	Language           *string          `json:"langue" binding:"omitempty,len=2"`
	Timezone           *string          `json:"timezone" binding:"omitempty,max=50"`
	Active             *bool            `json:"is_active"`
}

// SetActiveRequest represents a request to toggle a partner's active flag
type SetActiveRequest struct {
	Active *bool `json:"is_active" binding:"required"`
}

// PartnerResponse represents a partner in API responses
type PartnerResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Type               string          `json:"type_partenaire"`
	FirstName          string          `json:"prenom,omitempty"`
	LastName           string          `json:"nom,omitempty"`
	Gender             string          `json:"sexe,omitempty"`
	LegalName          string          `json:"denomination_sociale,omitempty"`
	TradeName          string          `json:"nom_commercial,omitempty"`
	SIRET              string          `json:"siret,omitempty"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"telephone,omitempty"`
	Address            string          `json:"adresse,omitempty"`
	PostalCode         string          `json:"code_postal,omitempty"`
	City               string          `json:"ville,omitempty"`
	Country            string          `json:"pays,omitempty"`
	ShippingAddress    string          `json:"adresse_livraison,omitempty"`
	ShippingPostalCode string          `json:"code_postal_livraison,omitempty"`
	ShippingCity       string          `json:"ville_livraison,omitempty"`
	ShippingCountry    string          `json:"pays_livraison,omitempty"`
	IndustrySegment    string          `json:"segment_industrie,omitempty"`
	PaymentTerms       string          `json:"conditions_paiement,omitempty"`
	VATRate            decimal.Decimal `json:"taux_tva"`
	Language           string          `json:"langue"`
	Timezone           string          `json:"timezone"`
	Active             bool            `json:"is_active"`
	DisplayName        string          `json:"nom_complet"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ListFilter represents filter options for the partner list
type ListFilter struct {
	Search          string `form:"search"`
	Type            string `form:"type" binding:"omitempty,oneof=particulier entreprise"`
	Status          *bool  `form:"status"`
	IndustrySegment string `form:"segment_industrie"`
	Country         string `form:"pays"`
}

// ToDomainFilter converts the list filter to a domain filter
func (f ListFilter) ToDomainFilter() partner.Filter {
	return partner.Filter{
		Search:          f.Search,
		Type:            partner.Type(f.Type),
		Status:          f.Status,
		IndustrySegment: f.IndustrySegment,
		Country:         f.Country,
	}
}

// ToPartnerResponse converts a domain Partner to PartnerResponse
func ToPartnerResponse(p *partner.Partner) PartnerResponse {
	return PartnerResponse{
		ID:                 p.ID,
		Type:               string(p.Type),
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Gender:             p.Gender,
		LegalName:          p.LegalName,
		TradeName:          p.TradeName,
		SIRET:              p.SIRET,
		Email:              p.Email,
		Phone:              p.Phone,
		Address:            p.Address,
		PostalCode:         p.PostalCode,
		City:               p.City,
		Country:            p.Country,
		ShippingAddress:    p.ShippingAddress,
		ShippingPostalCode: p.ShippingPostalCode,
		ShippingCity:       p.ShippingCity,
		ShippingCountry:    p.ShippingCountry,
		IndustrySegment:    p.IndustrySegment,
		PaymentTerms:       p.PaymentTerms,
		VATRate:            p.VATRate,
		Language:           p.Language,
		Timezone:           p.Timezone,
		Active:             p.Active,
		DisplayName:        p.DisplayName,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToPartnerResponses converts a slice of domain Partners to responses
func ToPartnerResponses(partners []partner.Partner) []PartnerResponse {
	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = ToPartnerResponse(&partners[i])
	}
	return responses
}
