package client

import (
	"time"

	"github.com/gescom/backend/internal/domain/client"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateClientRequest represents a request to create a new client profile
type CreateClientRequest struct {
	FirstName string `json:"prenom" binding:"required,max=100"`
	LastName  string `json:"nom" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=200"`
	Phone     string `json:"telephone" binding:"max=50"`
}

// UpdateClientRequest represents a request to update a client profile
type UpdateClientRequest struct {
	FirstName *string `json:"prenom" binding:"omitempty,max=100"`
	LastName  *string `json:"nom" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	Phone     *string `json:"telephone" binding:"omitempty,max=50"`
	Active    *bool   `json:"is_active"`
}

// SetActiveRequest represents a request to toggle a client's active flag
type SetActiveRequest struct {
	Active *bool `json:"is_active" binding:"required"`
}

// ClientResponse represents a client profile in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"prenom"`
	LastName  string    `json:"nom"`
	FullName  string    `json:"nom_complet"`
	Email     string    `json:"email"`
	Phone     string    `json:"telephone,omitempty"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFilter represents filter options for the client list
type ListFilter struct {
	Search   string `form:"search"`
	Status   *bool  `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToSharedFilter converts the list filter to a shared repository filter
func (f ListFilter) ToSharedFilter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.Search = f.Search
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.Status != nil {
		filter.Filters = map[string]interface{}{"is_active": *f.Status}
	}
	return filter
}

// ToClientResponse converts a domain Client to ClientResponse
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Email:     c.Email,
		Phone:     c.Phone,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
