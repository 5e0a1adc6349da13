package identity

import (
	"context"

	"github.com/udhaar/backend/internal/domain/shared"
)

// AccountRepository defines persistence operations for accounts
type AccountRepository interface {
	shared.Repository[*Account]

	// FindByEmail returns the account with the given normalized email
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

// RecentEmailLimit caps how many login emails are remembered
const RecentEmailLimit = 5

// RecentEmailStore remembers the last few login emails, most recent
// first, deduplicated by exact match after normalization.
type RecentEmailStore interface {
	// Record places the email at the front of the list, removing any
	// earlier occurrence, and trims the list to RecentEmailLimit.
	Record(ctx context.Context, email string) error

	// List returns the remembered emails, most recent first
	List(ctx context.Context) ([]string, error)
}
