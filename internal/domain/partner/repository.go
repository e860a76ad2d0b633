package partner

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows list/count queries. Every predicate is independently
// optional; present predicates are combined with AND.
type Filter struct {
	// Search matches a case-insensitive substring of the display name.
	Search string
	// Type matches type_partenaire exactly.
	Type Type
	// Status matches is_active exactly. Nil means no status predicate.
	Status *bool
	// IndustrySegment matches segment_industrie exactly.
	IndustrySegment string
	// Country matches the billing country exactly.
	Country string
}

// IsZero reports whether the filter carries no predicate
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Type == "" && f.Status == nil &&
		f.IndustrySegment == "" && f.Country == ""
}

// Repository defines the interface for partner persistence.
// FindAll returns partners ordered by creation time, newest first.
type Repository interface {
	// FindByID finds a partner by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)

	// FindAll finds all partners matching the filter, ordered by
	// created_at descending
	FindAll(ctx context.Context, filter Filter) ([]Partner, error)

	// Count counts partners matching the filter without transferring rows
	Count(ctx context.Context, filter Filter) (int64, error)

	// Save creates or updates a partner
	Save(ctx context.Context, p *Partner) error

	// Delete removes a partner permanently
	Delete(ctx context.Context, id uuid.UUID) error
}
