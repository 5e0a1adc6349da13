package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories
type Repository[T AggregateRoot] interface {
	Save(ctx context.Context, aggregate T) error
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Filter holds common listing options
type Filter struct {
	Offset  int
	Limit   int
	OrderBy string
}

// DefaultFilter returns a filter with sane defaults
func DefaultFilter() Filter {
	return Filter{
		Offset:  0,
		Limit:   50,
		OrderBy: "created_at DESC",
	}
}

// Paginated wraps a page of results with the total count
type Paginated[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
