package credit

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/udhaar/backend/internal/domain/shared"
)

// Event types
const (
	EventTypeCreditEntryCreated       = "credit.entry.created"
	EventTypeCreditEntryStatusChanged = "credit.entry.status_changed"
	EventTypeCreditEntryDeleted       = "credit.entry.deleted"
)

// CreditEntryCreatedEvent is emitted when an entry is written to the book
type CreditEntryCreatedEvent struct {
	shared.BaseDomainEvent
	Counterparty string          `json:"counterparty"`
	EntryType    EntryType       `json:"entry_type"`
	Amount       decimal.Decimal `json:"amount"`
}

// NewCreditEntryCreatedEvent creates a new credit entry created event
func NewCreditEntryCreatedEvent(id uuid.UUID, counterparty string, entryType EntryType, amount decimal.Decimal) CreditEntryCreatedEvent {
	return CreditEntryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreditEntryCreated, id),
		Counterparty:    counterparty,
		EntryType:       entryType,
		Amount:          amount,
	}
}

// CreditEntryStatusChangedEvent is emitted on every status transition
type CreditEntryStatusChangedEvent struct {
	shared.BaseDomainEvent
	From EntryStatus `json:"from"`
	To   EntryStatus `json:"to"`
}

// NewCreditEntryStatusChangedEvent creates a new status changed event
func NewCreditEntryStatusChangedEvent(id uuid.UUID, from, to EntryStatus) CreditEntryStatusChangedEvent {
	return CreditEntryStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreditEntryStatusChanged, id),
		From:            from,
		To:              to,
	}
}

// CreditEntryDeletedEvent is emitted when an entry is removed
type CreditEntryDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewCreditEntryDeletedEvent creates a new credit entry deleted event
func NewCreditEntryDeletedEvent(id uuid.UUID) CreditEntryDeletedEvent {
	return CreditEntryDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreditEntryDeleted, id),
	}
}
