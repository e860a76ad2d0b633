package catalog

import (
	"context"

	"github.com/gescom/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.Repository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.Repository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// List retrieves products matching the filter with the total count
func (s *ProductService) List(ctx context.Context, filter ListFilter) ([]ProductResponse, int64, error) {
	sharedFilter := filter.ToSharedFilter()

	products, err := s.productRepo.FindAll(ctx, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, total, nil
}

// Count counts products matching the filter
func (s *ProductService) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return s.productRepo.Count(ctx, filter.ToSharedFilter())
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(p)
	return &response, nil
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	p, err := catalog.New(req.Name, req.Reference, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := p.Update(p.Name, p.Reference, req.Description, p.Price); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		if err := p.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// Update applies the request to the stored product, keeping absent fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := p.Name
	if req.Name != nil {
		name = *req.Name
	}
	reference := p.Reference
	if req.Reference != nil {
		reference = *req.Reference
	}
	description := p.Description
	if req.Description != nil {
		description = *req.Description
	}
	price := p.Price
	if req.Price != nil {
		price = *req.Price
	}

	if err := p.Update(name, reference, description, price); err != nil {
		return nil, err
	}

	if req.Stock != nil {
		if err := p.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		p.SetActive(*req.Active)
	}

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// SetActive toggles a product's active flag
func (s *ProductService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.SetActive(active)

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// Delete removes a product permanently
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
