package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/udhaar/backend/internal/domain/credit"
	"github.com/udhaar/backend/internal/domain/shared"
)

// GormCreditEntryRepository implements CreditEntryRepository using GORM
type GormCreditEntryRepository struct {
	db *gorm.DB
}

// NewGormCreditEntryRepository creates a new GormCreditEntryRepository
func NewGormCreditEntryRepository(db *gorm.DB) *GormCreditEntryRepository {
	return &GormCreditEntryRepository{db: db}
}

// Save creates or updates a credit entry
func (r *GormCreditEntryRepository) Save(ctx context.Context, entry *credit.CreditEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// FindByID finds a credit entry by its ID
func (r *GormCreditEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*credit.CreditEntry, error) {
	var entry credit.CreditEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Delete removes a credit entry
func (r *GormCreditEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&credit.CreditEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Exists reports whether a credit entry with the given ID exists
func (r *GormCreditEntryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&credit.CreditEntry{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// FindAll returns every entry in insertion order
func (r *GormCreditEntryRepository) FindAll(ctx context.Context) ([]*credit.CreditEntry, error) {
	var entries []*credit.CreditEntry
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByType returns entries of one type with pagination
func (r *GormCreditEntryRepository) FindByType(ctx context.Context, entryType credit.EntryType, filter shared.Filter) (shared.Paginated[*credit.CreditEntry], error) {
	return r.findPage(ctx, r.db.WithContext(ctx).
		Model(&credit.CreditEntry{}).
		Where("type = ?", entryType), filter)
}

// FindByCounterparty returns entries for a counterparty name
func (r *GormCreditEntryRepository) FindByCounterparty(ctx context.Context, counterparty string, filter shared.Filter) (shared.Paginated[*credit.CreditEntry], error) {
	return r.findPage(ctx, r.db.WithContext(ctx).
		Model(&credit.CreditEntry{}).
		Where("counterparty = ?", counterparty), filter)
}

// FindDue returns unpaid, not-yet-overdue entries whose due date has passed
func (r *GormCreditEntryRepository) FindDue(ctx context.Context) ([]*credit.CreditEntry, error) {
	var entries []*credit.CreditEntry
	if err := r.db.WithContext(ctx).
		Where("status IN ? AND due_date < NOW()", []credit.EntryStatus{
			credit.EntryStatusPending,
			credit.EntryStatusAccepted,
		}).
		Order("due_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CollectIMEIs returns every IMEI attached to any entry except the one
// identified by excludeEntryID
func (r *GormCreditEntryRepository) CollectIMEIs(ctx context.Context, excludeEntryID uuid.UUID) ([]string, error) {
	query := r.db.WithContext(ctx).
		Model(&credit.CreditEntry{}).
		Where("imeis IS NOT NULL")
	if excludeEntryID != uuid.Nil {
		query = query.Where("id <> ?", excludeEntryID)
	}

	var lists []pq.StringArray
	if err := query.Pluck("imeis", &lists).Error; err != nil {
		return nil, err
	}

	var imeis []string
	for _, list := range lists {
		imeis = append(imeis, list...)
	}
	return imeis, nil
}

func (r *GormCreditEntryRepository) findPage(ctx context.Context, base *gorm.DB, filter shared.Filter) (shared.Paginated[*credit.CreditEntry], error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[*credit.CreditEntry]{}, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at ASC"
	}

	var entries []*credit.CreditEntry
	if err := base.
		Order(orderBy).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&entries).Error; err != nil {
		return shared.Paginated[*credit.CreditEntry]{}, err
	}

	return shared.Paginated[*credit.CreditEntry]{Items: entries, Total: total}, nil
}
