package credit

import (
	"context"

	"github.com/google/uuid"

	"github.com/udhaar/backend/internal/domain/shared"
)

// CreditEntryRepository defines persistence operations for credit entries
type CreditEntryRepository interface {
	shared.Repository[*CreditEntry]

	// FindAll returns every entry in insertion order
	FindAll(ctx context.Context) ([]*CreditEntry, error)

	// FindByType returns entries of one type with pagination
	FindByType(ctx context.Context, entryType EntryType, filter shared.Filter) (shared.Paginated[*CreditEntry], error)

	// FindByCounterparty returns entries for a counterparty name
	FindByCounterparty(ctx context.Context, counterparty string, filter shared.Filter) (shared.Paginated[*CreditEntry], error)

	// FindDue returns unpaid, not-yet-overdue entries whose due date has
	// passed, for the overdue sweep
	FindDue(ctx context.Context) ([]*CreditEntry, error)

	// CollectIMEIs returns every IMEI attached to any entry except the
	// one identified by excludeEntryID. Pass uuid.Nil to collect all.
	CollectIMEIs(ctx context.Context, excludeEntryID uuid.UUID) ([]string, error)
}
