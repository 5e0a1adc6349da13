package directory

import (
	"github.com/google/uuid"

	"github.com/udhaar/backend/internal/domain/shared"
)

// Event types
const (
	EventTypeShopkeeperCreated       = "directory.shopkeeper.created"
	EventTypeShopkeeperUpdated       = "directory.shopkeeper.updated"
	EventTypeShopkeeperStatusChanged = "directory.shopkeeper.status_changed"
	EventTypeShopkeeperDeleted       = "directory.shopkeeper.deleted"
)

// ShopkeeperCreatedEvent is emitted when a shopkeeper is added to the directory
type ShopkeeperCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	City string `json:"city"`
}

// NewShopkeeperCreatedEvent creates a new shopkeeper created event
func NewShopkeeperCreatedEvent(id uuid.UUID, name, city string) ShopkeeperCreatedEvent {
	return ShopkeeperCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopkeeperCreated, id),
		Name:            name,
		City:            city,
	}
}

// ShopkeeperUpdatedEvent is emitted when a shopkeeper's fields change
type ShopkeeperUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	City string `json:"city"`
}

// NewShopkeeperUpdatedEvent creates a new shopkeeper updated event
func NewShopkeeperUpdatedEvent(id uuid.UUID, name, city string) ShopkeeperUpdatedEvent {
	return ShopkeeperUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopkeeperUpdated, id),
		Name:            name,
		City:            city,
	}
}

// ShopkeeperStatusChangedEvent is emitted on activate or deactivate
type ShopkeeperStatusChangedEvent struct {
	shared.BaseDomainEvent
	Status ShopkeeperStatus `json:"status"`
}

// NewShopkeeperStatusChangedEvent creates a new status changed event
func NewShopkeeperStatusChangedEvent(id uuid.UUID, status ShopkeeperStatus) ShopkeeperStatusChangedEvent {
	return ShopkeeperStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopkeeperStatusChanged, id),
		Status:          status,
	}
}

// ShopkeeperDeletedEvent is emitted when a shopkeeper is removed
type ShopkeeperDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewShopkeeperDeletedEvent creates a new shopkeeper deleted event
func NewShopkeeperDeletedEvent(id uuid.UUID) ShopkeeperDeletedEvent {
	return ShopkeeperDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopkeeperDeleted, id),
	}
}
