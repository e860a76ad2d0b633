package client

import (
	"context"

	"github.com/gescom/backend/internal/domain/client"
	"github.com/google/uuid"
)

// ClientService handles client profile operations
type ClientService struct {
	clientRepo client.Repository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo client.Repository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// List retrieves clients matching the filter
func (s *ClientService) List(ctx context.Context, filter ListFilter) ([]ClientResponse, int64, error) {
	sharedFilter := filter.ToSharedFilter()

	clients, err := s.clientRepo.FindAll(ctx, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses, total, nil
}

// Count counts clients matching the filter
func (s *ClientService) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return s.clientRepo.Count(ctx, filter.ToSharedFilter())
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(c)
	return &response, nil
}

// Create creates a new client profile
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	c, err := client.New(req.FirstName, req.LastName, req.Email)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" {
		if err := c.Update(c.FirstName, c.LastName, c.Email, req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}

// Update applies the request to the stored client, keeping absent fields
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	firstName := c.FirstName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	lastName := c.LastName
	if req.LastName != nil {
		lastName = *req.LastName
	}
	email := c.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := c.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}

	if err := c.Update(firstName, lastName, email, phone); err != nil {
		return nil, err
	}

	if req.Active != nil {
		c.SetActive(*req.Active)
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}

// SetActive toggles a client's active flag
func (s *ClientService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*ClientResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.SetActive(active)

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToClientResponse(c)
	return &response, nil
}

// Delete removes a client permanently
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.Delete(ctx, id)
}
