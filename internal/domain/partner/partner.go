package partner

import (
	"regexp"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Type represents the category of a partner
type Type string

const (
	TypeIndividual Type = "particulier" // Natural person
	TypeCompany    Type = "entreprise"  // Legal entity
)

// Locale defaults applied when the form omits them
const (
	DefaultLanguage = "fr"
	DefaultTimezone = "Europe/Paris"
)

const siretLength = 14

// Partner represents a business contact, either an individual or an
// organization, with billing/shipping and commercial metadata.
// It is the aggregate root of the partner context.
type Partner struct {
	shared.BaseEntity
	Type      Type
	FirstName string // prenom
	LastName  string // nom
	Gender    string // sexe
	LegalName string // denomination_sociale
	TradeName string // nom_commercial
	SIRET     string // 14-digit national business identifier

	Email string
	Phone string // telephone

	Address    string // billing address
	PostalCode string
	City       string
	Country    string

	ShippingAddress    string
	ShippingPostalCode string
	ShippingCity       string
	ShippingCountry    string

	IndustrySegment string // segment_industrie
	PaymentTerms    string // conditions_paiement
	VATRate         decimal.Decimal

	Language string // 2-letter code, defaults to "fr"
	Timezone string

	Active bool

	// DisplayName (nom_complet) is derived from the name fields and is
	// never set directly by callers.
	DisplayName string
}

// TableName returns the table name for GORM
func (Partner) TableName() string {
	return "partenaires"
}

// New creates a new partner of the given type with locale defaults applied
func New(partnerType Type) (*Partner, error) {
	if err := validateType(partnerType); err != nil {
		return nil, err
	}

	return &Partner{
		BaseEntity: shared.NewBaseEntity(),
		Type:       partnerType,
		Language:   DefaultLanguage,
		Timezone:   DefaultTimezone,
		Active:     true,
		VATRate:    decimal.Zero,
	}, nil
}

// DeriveDisplayName computes the display name for a partner: first and
// last name joined when both are present, otherwise the legal name,
// otherwise the trade name.
func DeriveDisplayName(firstName, lastName, legalName, tradeName string) string {
	if firstName != "" && lastName != "" {
		return firstName + " " + lastName
	}
	if legalName != "" {
		return legalName
	}
	return tradeName
}

// refreshDisplayName re-derives DisplayName from the current name fields.
// Must be called whenever any of the four source fields changes.
func (p *Partner) refreshDisplayName() {
	p.DisplayName = DeriveDisplayName(p.FirstName, p.LastName, p.LegalName, p.TradeName)
}

// SetPersonName sets the individual name fields and re-derives the display name
func (p *Partner) SetPersonName(firstName, lastName, gender string) {
	p.FirstName = firstName
	p.LastName = lastName
	p.Gender = gender
	p.refreshDisplayName()
	p.Touch()
}

// SetCompanyName sets the organization name fields and re-derives the display name
func (p *Partner) SetCompanyName(legalName, tradeName string) {
	p.LegalName = legalName
	p.TradeName = tradeName
	p.refreshDisplayName()
	p.Touch()
}

// ChangeType switches the partner between individual and company
func (p *Partner) ChangeType(t Type) error {
	if err := validateType(t); err != nil {
		return err
	}
	p.Type = t
	p.Touch()
	return nil
}

// SetSIRET sets the national business identifier (exactly 14 characters when present)
func (p *Partner) SetSIRET(siret string) error {
	if err := validateSIRET(siret); err != nil {
		return err
	}
	p.SIRET = siret
	p.Touch()
	return nil
}

// SetContact sets the contact information
func (p *Partner) SetContact(email, phone string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	p.Email = email
	p.Phone = phone
	p.Touch()
	return nil
}

// SetBillingAddress sets the billing address fields
func (p *Partner) SetBillingAddress(address, postalCode, city, country string) {
	p.Address = address
	p.PostalCode = postalCode
	p.City = city
	p.Country = country
	p.Touch()
}

// SetShippingAddress sets the shipping address fields
func (p *Partner) SetShippingAddress(address, postalCode, city, country string) {
	p.ShippingAddress = address
	p.ShippingPostalCode = postalCode
	p.ShippingCity = city
	p.ShippingCountry = country
	p.Touch()
}

// SetCommercialTerms sets industry segment, payment terms and VAT rate
func (p *Partner) SetCommercialTerms(segment, paymentTerms string, vatRate decimal.Decimal) error {
	if vatRate.IsNegative() {
		return shared.NewDomainError("INVALID_VAT_RATE", "VAT rate cannot be negative")
	}
	p.IndustrySegment = segment
	p.PaymentTerms = paymentTerms
	p.VATRate = vatRate
	p.Touch()
	return nil
}

// SetLocale sets language and timezone, falling back to defaults for empty values
func (p *Partner) SetLocale(language, timezone string) error {
	if language == "" {
		language = DefaultLanguage
	}
	if err := validateLanguage(language); err != nil {
		return err
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	p.Language = language
	p.Timezone = timezone
	p.Touch()
	return nil
}

// SetActive enables or disables the partner
func (p *Partner) SetActive(active bool) {
	p.Active = active
	p.Touch()
}

// IsIndividual returns true if the partner is a natural person
func (p *Partner) IsIndividual() bool {
	return p.Type == TypeIndividual
}

// IsCompany returns true if the partner is a legal entity
func (p *Partner) IsCompany() bool {
	return p.Type == TypeCompany
}

// Validation functions

func validateType(t Type) error {
	switch t {
	case TypeIndividual, TypeCompany:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Partner type must be 'particulier' or 'entreprise'")
	}
}

func validateSIRET(siret string) error {
	if siret == "" {
		return nil
	}
	if len(siret) != siretLength {
		return shared.NewDomainError("INVALID_SIRET", "SIRET must be exactly 14 characters")
	}
	return nil
}

func validateLanguage(language string) error {
	if len(language) != 2 {
		return shared.NewDomainError("INVALID_LANGUAGE", "Language must be a 2-letter code")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
