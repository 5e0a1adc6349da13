package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/udhaar/backend/internal/domain/directory"
	"github.com/udhaar/backend/internal/domain/shared"
)

// GormShopkeeperRepository implements ShopkeeperRepository using GORM
type GormShopkeeperRepository struct {
	db *gorm.DB
}

// NewGormShopkeeperRepository creates a new GormShopkeeperRepository
func NewGormShopkeeperRepository(db *gorm.DB) *GormShopkeeperRepository {
	return &GormShopkeeperRepository{db: db}
}

// Save creates or updates a shopkeeper
func (r *GormShopkeeperRepository) Save(ctx context.Context, shopkeeper *directory.Shopkeeper) error {
	return r.db.WithContext(ctx).Save(shopkeeper).Error
}

// FindByID finds a shopkeeper by its ID
func (r *GormShopkeeperRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Shopkeeper, error) {
	var shopkeeper directory.Shopkeeper
	if err := r.db.WithContext(ctx).First(&shopkeeper, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shopkeeper, nil
}

// Delete removes a shopkeeper
func (r *GormShopkeeperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&directory.Shopkeeper{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Exists reports whether a shopkeeper with the given ID exists
func (r *GormShopkeeperRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&directory.Shopkeeper{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// ExistsByNameCity reports whether another record holds the same
// case-insensitive (name, city) pair
func (r *GormShopkeeperRepository) ExistsByNameCity(ctx context.Context, name, city string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&directory.Shopkeeper{}).
		Where("LOWER(name) = LOWER(?) AND LOWER(city) = LOWER(?)", name, city)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search returns shopkeepers matching a case-insensitive substring of
// name, city or contact, in insertion order
func (r *GormShopkeeperRepository) Search(ctx context.Context, query string, filter shared.Filter) (shared.Paginated[*directory.Shopkeeper], error) {
	base := r.db.WithContext(ctx).Model(&directory.Shopkeeper{})
	if query != "" {
		pattern := "%" + query + "%"
		base = base.Where("name ILIKE ? OR city ILIKE ? OR contact ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[*directory.Shopkeeper]{}, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at ASC"
	}

	var shopkeepers []*directory.Shopkeeper
	if err := base.
		Order(orderBy).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&shopkeepers).Error; err != nil {
		return shared.Paginated[*directory.Shopkeeper]{}, err
	}

	return shared.Paginated[*directory.Shopkeeper]{Items: shopkeepers, Total: total}, nil
}

// FindByName returns the first shopkeeper with the given exact name
func (r *GormShopkeeperRepository) FindByName(ctx context.Context, name string) (*directory.Shopkeeper, error) {
	var shopkeeper directory.Shopkeeper
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at ASC").
		First(&shopkeeper).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shopkeeper, nil
}
