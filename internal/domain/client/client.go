package client

import (
	"context"
	"regexp"

	"github.com/gescom/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Client represents an end customer profile (table user_profiles)
type Client struct {
	shared.BaseEntity
	FirstName string // prenom
	LastName  string // nom
	Email     string
	Phone     string // telephone
	Active    bool
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "user_profiles"
}

// New creates a new client profile
func New(firstName, lastName, email string) (*Client, error) {
	if lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client last name cannot be empty")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Active:     true,
	}, nil
}

// FullName returns the client's display name
func (c *Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}

// Update replaces the client's profile fields
func (c *Client) Update(firstName, lastName, email, phone string) error {
	if lastName == "" {
		return shared.NewDomainError("INVALID_NAME", "Client last name cannot be empty")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	c.FirstName = firstName
	c.LastName = lastName
	c.Email = email
	c.Phone = phone
	c.Touch()
	return nil
}

// SetActive enables or disables the client
func (c *Client) SetActive(active bool) {
	c.Active = active
	c.Touch()
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

// Repository defines the interface for client persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
