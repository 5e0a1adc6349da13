// Package memory provides map-backed repositories for tests and for
// running the service without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/udhaar/backend/internal/domain/directory"
	"github.com/udhaar/backend/internal/domain/shared"
)

// ShopkeeperRepository keeps shopkeepers in insertion order, matching
// the search and uniqueness semantics of the Postgres implementation.
type ShopkeeperRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*directory.Shopkeeper
}

// NewShopkeeperRepository creates an empty in-memory repository.
func NewShopkeeperRepository() *ShopkeeperRepository {
	return &ShopkeeperRepository{
		byID: make(map[uuid.UUID]*directory.Shopkeeper),
	}
}

// Save inserts or replaces a record. First insertion fixes its position
// in the listing order.
func (r *ShopkeeperRepository) Save(_ context.Context, s *directory.Shopkeeper) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.byID[s.ID] = s
	return nil
}

func (r *ShopkeeperRepository) FindByID(_ context.Context, id uuid.UUID) (*directory.Shopkeeper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return s, nil
}

func (r *ShopkeeperRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ShopkeeperRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

// ExistsByNameCity reports a case-insensitive (name, city) collision
// with any record other than excludeID.
func (r *ShopkeeperRepository) ExistsByNameCity(_ context.Context, name, city string, excludeID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.byID {
		if s.ID == excludeID {
			continue
		}
		if s.SameNameCity(name, city) {
			return true, nil
		}
	}
	return false, nil
}

// Search walks records in insertion order and pages the ones matching
// the query. Filter.OrderBy is ignored; insertion order is the contract.
func (r *ShopkeeperRepository) Search(_ context.Context, query string, filter shared.Filter) (shared.Paginated[*directory.Shopkeeper], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*directory.Shopkeeper
	for _, id := range r.order {
		if s := r.byID[id]; s.MatchesQuery(query) {
			matched = append(matched, s)
		}
	}

	total := int64(len(matched))
	start := filter.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	return shared.Paginated[*directory.Shopkeeper]{
		Items: matched[start:end],
		Total: total,
	}, nil
}

// FindByName returns the first record with the given exact name, in
// insertion order.
func (r *ShopkeeperRepository) FindByName(_ context.Context, name string) (*directory.Shopkeeper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if s := r.byID[id]; s.Name == name {
			return s, nil
		}
	}
	return nil, shared.ErrNotFound
}
