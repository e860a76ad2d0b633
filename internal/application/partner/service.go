package partner

import (
	"context"

	"github.com/gescom/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerService handles partner-related business operations
type PartnerService struct {
	partnerRepo partner.Repository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.Repository) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
	}
}

// List retrieves partners matching the filter, newest first
func (s *PartnerService) List(ctx context.Context, filter ListFilter) ([]PartnerResponse, error) {
	partners, err := s.partnerRepo.FindAll(ctx, filter.ToDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToPartnerResponses(partners), nil
}

// Count counts partners matching the filter without loading rows
func (s *PartnerService) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return s.partnerRepo.Count(ctx, filter.ToDomainFilter())
}

// GetByID retrieves a partner by ID
func (s *PartnerService) GetByID(ctx context.Context, id uuid.UUID) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPartnerResponse(p)
	return &response, nil
}

// Create creates a new partner
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	p, err := partner.New(partner.Type(req.Type))
	if err != nil {
		return nil, err
	}

	p.SetPersonName(req.FirstName, req.LastName, req.Gender)
	p.SetCompanyName(req.LegalName, req.TradeName)

	if err := p.SetSIRET(req.SIRET); err != nil {
		return nil, err
	}
	if err := p.SetContact(req.Email, req.Phone); err != nil {
		return nil, err
	}

	p.SetBillingAddress(req.Address, req.PostalCode, req.City, req.Country)
	p.SetShippingAddress(req.ShippingAddress, req.ShippingPostalCode, req.ShippingCity, req.ShippingCountry)

	vatRate := decimal.Zero
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}
	if err := p.SetCommercialTerms(req.IndustrySegment, req.PaymentTerms, vatRate); err != nil {
		return nil, err
	}

	if err := p.SetLocale(req.Language, req.Timezone); err != nil {
		return nil, err
	}

	if req.Active != nil {
		p.SetActive(*req.Active)
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// Update applies the request to the stored partner. Fields present in
// the request replace stored values; absent fields are kept, and the
// display name is re-derived from the merged name fields.
func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if err := p.ChangeType(partner.Type(*req.Type)); err != nil {
			return nil, err
		}
	}

	p.SetPersonName(
		stringOr(req.FirstName, p.FirstName),
		stringOr(req.LastName, p.LastName),
		stringOr(req.Gender, p.Gender),
	)
	p.SetCompanyName(
		stringOr(req.LegalName, p.LegalName),
		stringOr(req.TradeName, p.TradeName),
	)

	if req.SIRET != nil {
		if err := p.SetSIRET(*req.SIRET); err != nil {
			return nil, err
		}
	}
	if req.Email != nil || req.Phone != nil {
		if err := p.SetContact(stringOr(req.Email, p.Email), stringOr(req.Phone, p.Phone)); err != nil {
			return nil, err
		}
	}

	if req.Address != nil || req.PostalCode != nil || req.City != nil || req.Country != nil {
		p.SetBillingAddress(
			stringOr(req.Address, p.Address),
			stringOr(req.PostalCode, p.PostalCode),
			stringOr(req.City, p.City),
			stringOr(req.Country, p.Country),
		)
	}
	if req.ShippingAddress != nil || req.ShippingPostalCode != nil || req.ShippingCity != nil || req.ShippingCountry != nil {
		p.SetShippingAddress(
			stringOr(req.ShippingAddress, p.ShippingAddress),
			stringOr(req.ShippingPostalCode, p.ShippingPostalCode),
			stringOr(req.ShippingCity, p.ShippingCity),
			stringOr(req.ShippingCountry, p.ShippingCountry),
		)
	}

	if req.IndustrySegment != nil || req.PaymentTerms != nil || req.VATRate != nil {
		vatRate := p.VATRate
		if req.VATRate != nil {
			vatRate = *req.VATRate
		}
		if err := p.SetCommercialTerms(
			stringOr(req.IndustrySegment, p.IndustrySegment),
			stringOr(req.PaymentTerms, p.PaymentTerms),
			vatRate,
		); err != nil {
			return nil, err
		}
	}

	if req.Language != nil || req.Timezone != nil {
		if err := p.SetLocale(stringOr(req.Language, p.Language), stringOr(req.Timezone, p.Timezone)); err != nil {
			return nil, err
		}
	}

	if req.Active != nil {
		p.SetActive(*req.Active)
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// SetActive toggles a partner's active flag
func (s *PartnerService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.SetActive(active)

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// Delete removes a partner permanently
func (s *PartnerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.partnerRepo.Delete(ctx, id)
}

// stringOr returns the pointed-to value when present, else the fallback
func stringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
