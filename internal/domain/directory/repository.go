package directory

import (
	"context"

	"github.com/google/uuid"

	"github.com/udhaar/backend/internal/domain/shared"
)

// ShopkeeperRepository defines persistence operations for shopkeepers
type ShopkeeperRepository interface {
	shared.Repository[*Shopkeeper]

	// ExistsByNameCity reports whether another record holds the same
	// case-insensitive (name, city) pair. excludeID skips the record
	// being edited; pass uuid.Nil when adding.
	ExistsByNameCity(ctx context.Context, name, city string, excludeID uuid.UUID) (bool, error)

	// Search returns records matching a case-insensitive substring of
	// name, city or contact, in insertion order. An empty query returns
	// every record.
	Search(ctx context.Context, query string, filter shared.Filter) (shared.Paginated[*Shopkeeper], error)

	// FindByName returns the first record with the given exact name
	FindByName(ctx context.Context, name string) (*Shopkeeper, error)
}
