// Package directory contains the application services for the
// shopkeeper counterparty book.
package directory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/udhaar/backend/internal/domain/directory"
	"github.com/udhaar/backend/internal/domain/shared"
)

// ShopkeeperService handles shopkeeper directory operations
type ShopkeeperService struct {
	repo   directory.ShopkeeperRepository
	logger *zap.Logger
}

// NewShopkeeperService creates a new ShopkeeperService
func NewShopkeeperService(repo directory.ShopkeeperRepository, logger *zap.Logger) *ShopkeeperService {
	return &ShopkeeperService{
		repo:   repo,
		logger: logger,
	}
}

// Add validates and inserts a new shopkeeper. Field errors and the
// duplicate (name, city) error are collected together so the caller can
// show everything that is wrong with the form in one pass.
func (s *ShopkeeperService) Add(ctx context.Context, req CreateShopkeeperRequest) (*ShopkeeperResponse, error) {
	// Trim before the uniqueness check so the key compared against the
	// store is the same one that gets persisted.
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Notes = strings.TrimSpace(req.Notes)

	fieldErrs := directory.ValidateFields(req.Name, req.City, req.Contact)

	// Only check uniqueness when both key fields are present, otherwise
	// the missing-field errors already cover the problem.
	if fieldErrs["name"].Code == "" && fieldErrs["city"].Code == "" {
		exists, err := s.repo.ExistsByNameCity(ctx, req.Name, req.City, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if exists {
			fieldErrs["name_city"] = directory.ErrDuplicateNameCity
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	shopkeeper, err := directory.NewShopkeeper(req.Name, req.City, req.Contact, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, shopkeeper); err != nil {
		return nil, err
	}

	s.logEvents(shopkeeper)
	resp := ToShopkeeperResponse(shopkeeper)
	return &resp, nil
}

// Edit validates and applies field changes to an existing shopkeeper.
// The uniqueness check excludes the record being edited.
func (s *ShopkeeperService) Edit(ctx context.Context, id uuid.UUID, req UpdateShopkeeperRequest) (*ShopkeeperResponse, error) {
	shopkeeper, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := shopkeeper.Name
	city := shopkeeper.City
	contact := shopkeeper.Contact
	notes := shopkeeper.Notes
	if req.Name != nil {
		name = *req.Name
	}
	if req.City != nil {
		city = *req.City
	}
	if req.Contact != nil {
		contact = *req.Contact
	}
	if req.Notes != nil {
		notes = *req.Notes
	}
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	contact = strings.TrimSpace(contact)
	notes = strings.TrimSpace(notes)

	fieldErrs := directory.ValidateFields(name, city, contact)
	if fieldErrs["name"].Code == "" && fieldErrs["city"].Code == "" {
		exists, err := s.repo.ExistsByNameCity(ctx, name, city, id)
		if err != nil {
			return nil, err
		}
		if exists {
			fieldErrs["name_city"] = directory.ErrDuplicateNameCity
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if err := shopkeeper.Update(name, city, contact, notes); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, shopkeeper); err != nil {
		return nil, err
	}

	s.logEvents(shopkeeper)
	resp := ToShopkeeperResponse(shopkeeper)
	return &resp, nil
}

// Get retrieves a shopkeeper by ID
func (s *ShopkeeperService) Get(ctx context.Context, id uuid.UUID) (*ShopkeeperResponse, error) {
	shopkeeper, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToShopkeeperResponse(shopkeeper)
	return &resp, nil
}

// Remove deletes a shopkeeper. The delete is terminal; the caller is
// expected to have obtained confirmation already.
func (s *ShopkeeperService) Remove(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("shopkeeper removed", zap.String("shopkeeper_id", id.String()))
	return nil
}

// Search lists shopkeepers matching a case-insensitive substring of
// name, city or contact, in insertion order
func (s *ShopkeeperService) Search(ctx context.Context, filter ShopkeeperListFilter) ([]ShopkeeperResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	page, err := s.repo.Search(ctx, filter.Query, shared.Filter{
		Offset:  (filter.Page - 1) * filter.PageSize,
		Limit:   filter.PageSize,
		OrderBy: "created_at ASC",
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ShopkeeperResponse, 0, len(page.Items))
	for _, item := range page.Items {
		responses = append(responses, ToShopkeeperResponse(item))
	}
	return responses, page.Total, nil
}

// Activate marks a shopkeeper as active
func (s *ShopkeeperService) Activate(ctx context.Context, id uuid.UUID) (*ShopkeeperResponse, error) {
	return s.changeStatus(ctx, id, (*directory.Shopkeeper).Activate)
}

// Deactivate marks a shopkeeper as inactive
func (s *ShopkeeperService) Deactivate(ctx context.Context, id uuid.UUID) (*ShopkeeperResponse, error) {
	return s.changeStatus(ctx, id, (*directory.Shopkeeper).Deactivate)
}

func (s *ShopkeeperService) changeStatus(ctx context.Context, id uuid.UUID, change func(*directory.Shopkeeper)) (*ShopkeeperResponse, error) {
	shopkeeper, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change(shopkeeper)

	if err := s.repo.Save(ctx, shopkeeper); err != nil {
		return nil, err
	}

	s.logEvents(shopkeeper)
	resp := ToShopkeeperResponse(shopkeeper)
	return &resp, nil
}

func (s *ShopkeeperService) logEvents(shopkeeper *directory.Shopkeeper) {
	for _, event := range shopkeeper.GetDomainEvents() {
		s.logger.Info("domain event",
			zap.String("event_type", event.GetEventType()),
			zap.String("aggregate_id", event.GetAggregateID().String()),
		)
	}
	shopkeeper.ClearDomainEvents()
}
