// Package credit holds the udhaar book: lend and borrow entries against
// directory counterparties, with derived ledger totals.
package credit

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/udhaar/backend/internal/domain/shared"
)

// EntryType distinguishes what direction the credit flows
type EntryType string

const (
	EntryTypeLend   EntryType = "lend"
	EntryTypeBorrow EntryType = "borrow"
)

// EntryStatus represents the lifecycle state of a credit entry
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "pending"
	EntryStatusAccepted EntryStatus = "accepted"
	EntryStatusOverdue  EntryStatus = "overdue"
	EntryStatusPaid     EntryStatus = "paid"
)

// Validation and transition error codes
var (
	ErrMissingCounterparty     = shared.NewDomainError("MISSING_COUNTERPARTY", "counterparty is required")
	ErrMissingProduct          = shared.NewDomainError("MISSING_PRODUCT", "product is required")
	ErrInvalidQuantity         = shared.NewDomainError("INVALID_QUANTITY", "quantity must be a positive integer")
	ErrInvalidAmount           = shared.NewDomainError("INVALID_AMOUNT", "amount must be positive")
	ErrInvalidEntryType        = shared.NewDomainError("INVALID_ENTRY_TYPE", "entry type must be lend or borrow")
	ErrInvalidStatusTransition = shared.NewDomainError("INVALID_STATUS_TRANSITION", "credit entry status transition not allowed")
	ErrEntryAlreadyPaid        = shared.NewDomainError("ENTRY_ALREADY_PAID", "credit entry is already paid")
	ErrIMEICountMismatch       = shared.NewDomainError("IMEI_COUNT_MISMATCH", "number of IMEIs must match quantity")
)

// ParseEntryType validates a raw entry type string
func ParseEntryType(raw string) (EntryType, error) {
	switch EntryType(strings.ToLower(strings.TrimSpace(raw))) {
	case EntryTypeLend:
		return EntryTypeLend, nil
	case EntryTypeBorrow:
		return EntryTypeBorrow, nil
	default:
		return "", ErrInvalidEntryType
	}
}

// CreditEntry is a single lend or borrow record in the udhaar book.
// Counterparty references a shopkeeper by name, not by foreign key.
type CreditEntry struct {
	shared.BaseAggregateRoot
	Counterparty string          `gorm:"type:varchar(255);not null" json:"counterparty"`
	Product      string          `gorm:"type:varchar(255);not null" json:"product"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDate      time.Time       `gorm:"not null" json:"due_date"`
	Status       EntryStatus     `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	Type         EntryType       `gorm:"type:varchar(32);not null" json:"type"`
	IMEIs        pq.StringArray  `gorm:"column:imeis;type:text[]" json:"imeis"`
}

// TableName returns the table name for GORM
func (CreditEntry) TableName() string {
	return "credit_entries"
}

// NewCreditEntry creates a pending entry after validating its fields.
// IMEI format and uniqueness are checked by the application service
// against the imei validator before this constructor runs; here only
// the count is cross-checked against quantity when IMEIs are supplied.
func NewCreditEntry(counterparty, product string, quantity int, amount decimal.Decimal, dueDate time.Time, entryType EntryType, imeis []string) (*CreditEntry, error) {
	if strings.TrimSpace(counterparty) == "" {
		return nil, ErrMissingCounterparty
	}
	if strings.TrimSpace(product) == "" {
		return nil, ErrMissingProduct
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if entryType != EntryTypeLend && entryType != EntryTypeBorrow {
		return nil, ErrInvalidEntryType
	}
	if len(imeis) > 0 && len(imeis) != quantity {
		return nil, ErrIMEICountMismatch
	}

	e := &CreditEntry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Counterparty:      strings.TrimSpace(counterparty),
		Product:           strings.TrimSpace(product),
		Quantity:          quantity,
		Amount:            amount,
		DueDate:           dueDate,
		Status:            EntryStatusPending,
		Type:              entryType,
		IMEIs:             pq.StringArray(imeis),
	}

	e.AddDomainEvent(NewCreditEntryCreatedEvent(e.ID, e.Counterparty, e.Type, e.Amount))
	return e, nil
}

// Accept moves a pending entry to accepted
func (e *CreditEntry) Accept() error {
	if e.Status != EntryStatusPending {
		return ErrInvalidStatusTransition
	}
	e.changeStatus(EntryStatusAccepted)
	return nil
}

// MarkPaid settles an accepted or overdue entry. A pending entry must be
// accepted first; settling twice is rejected.
func (e *CreditEntry) MarkPaid() error {
	if e.Status == EntryStatusPaid {
		return ErrEntryAlreadyPaid
	}
	if e.Status == EntryStatusPending {
		return ErrInvalidStatusTransition
	}
	e.changeStatus(EntryStatusPaid)
	return nil
}

// MarkOverdue flags an unpaid entry whose due date has passed
func (e *CreditEntry) MarkOverdue(now time.Time) error {
	if e.Status == EntryStatusPaid || e.Status == EntryStatusOverdue {
		return ErrInvalidStatusTransition
	}
	if !e.DueDate.Before(now) {
		return ErrInvalidStatusTransition
	}
	e.changeStatus(EntryStatusOverdue)
	return nil
}

// IsDueBy reports whether an unpaid entry's due date has passed
func (e *CreditEntry) IsDueBy(now time.Time) bool {
	return e.Status != EntryStatusPaid && e.Status != EntryStatusOverdue && e.DueDate.Before(now)
}

// IsOutstanding reports whether the entry still counts toward totals
func (e *CreditEntry) IsOutstanding() bool {
	return e.Status != EntryStatusPaid
}

func (e *CreditEntry) changeStatus(status EntryStatus) {
	from := e.Status
	e.Status = status
	e.Touch()
	e.AddDomainEvent(NewCreditEntryStatusChangedEvent(e.ID, from, status))
}
