// Package directory holds the shopkeeper counterparty book: the trading
// partners a phone dealer lends stock to or borrows from.
package directory

import (
	"sort"
	"strings"

	"github.com/udhaar/backend/internal/domain/shared"
)

// ShopkeeperStatus represents the lifecycle state of a shopkeeper record
type ShopkeeperStatus string

const (
	ShopkeeperStatusActive   ShopkeeperStatus = "active"
	ShopkeeperStatusInactive ShopkeeperStatus = "inactive"
)

// MinContactLength is the minimum accepted phone/WhatsApp length
const MinContactLength = 10

// Validation error codes
var (
	ErrMissingName       = shared.NewDomainError("MISSING_NAME", "shopkeeper name is required")
	ErrMissingCity       = shared.NewDomainError("MISSING_CITY", "city is required")
	ErrMissingContact    = shared.NewDomainError("MISSING_CONTACT", "contact number is required")
	ErrShortContact      = shared.NewDomainError("SHORT_CONTACT", "contact number must be at least 10 characters")
	ErrDuplicateNameCity = shared.NewDomainError("DUPLICATE_NAME_CITY", "a shopkeeper with this name already exists in this city")
)

// FieldErrors maps input field names to their validation errors so a
// caller can surface every failed field at once instead of only the
// first one.
type FieldErrors map[string]shared.DomainError

// Error implements the error interface
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed for fields: " + strings.Join(fields, ", ")
}

// ValidateFields checks the required shopkeeper fields and collects
// every failure. An empty result means all fields are acceptable.
func ValidateFields(name, city, contact string) FieldErrors {
	errs := make(FieldErrors)

	if strings.TrimSpace(name) == "" {
		errs["name"] = ErrMissingName
	}
	if strings.TrimSpace(city) == "" {
		errs["city"] = ErrMissingCity
	}
	trimmedContact := strings.TrimSpace(contact)
	if trimmedContact == "" {
		errs["contact"] = ErrMissingContact
	} else if len(trimmedContact) < MinContactLength {
		errs["contact"] = ErrShortContact
	}

	return errs
}

// Shopkeeper is a counterparty record in the directory aggregate
type Shopkeeper struct {
	shared.BaseAggregateRoot
	Name    string           `gorm:"type:varchar(255);not null" json:"name"`
	City    string           `gorm:"type:varchar(255);not null" json:"city"`
	Contact string           `gorm:"type:varchar(64);not null" json:"contact"`
	Notes   string           `gorm:"type:text" json:"notes"`
	Status  ShopkeeperStatus `gorm:"type:varchar(32);not null;default:'active'" json:"status"`
}

// TableName returns the table name for GORM
func (Shopkeeper) TableName() string {
	return "shopkeepers"
}

// NewShopkeeper creates a shopkeeper after validating its fields. The
// (name, city) uniqueness rule is a store-wide invariant and is checked
// by the application service against the repository, not here.
func NewShopkeeper(name, city, contact, notes string) (*Shopkeeper, error) {
	if errs := ValidateFields(name, city, contact); len(errs) > 0 {
		return nil, errs
	}

	s := &Shopkeeper{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		City:              strings.TrimSpace(city),
		Contact:           strings.TrimSpace(contact),
		Notes:             strings.TrimSpace(notes),
		Status:            ShopkeeperStatusActive,
	}

	s.AddDomainEvent(NewShopkeeperCreatedEvent(s.ID, s.Name, s.City))
	return s, nil
}

// Update replaces the mutable fields after validating them
func (s *Shopkeeper) Update(name, city, contact, notes string) error {
	if errs := ValidateFields(name, city, contact); len(errs) > 0 {
		return errs
	}

	s.Name = strings.TrimSpace(name)
	s.City = strings.TrimSpace(city)
	s.Contact = strings.TrimSpace(contact)
	s.Notes = strings.TrimSpace(notes)
	s.Touch()
	s.AddDomainEvent(NewShopkeeperUpdatedEvent(s.ID, s.Name, s.City))
	return nil
}

// Activate marks the shopkeeper as active
func (s *Shopkeeper) Activate() {
	if s.Status == ShopkeeperStatusActive {
		return
	}
	s.Status = ShopkeeperStatusActive
	s.Touch()
	s.AddDomainEvent(NewShopkeeperStatusChangedEvent(s.ID, s.Status))
}

// Deactivate marks the shopkeeper as inactive
func (s *Shopkeeper) Deactivate() {
	if s.Status == ShopkeeperStatusInactive {
		return
	}
	s.Status = ShopkeeperStatusInactive
	s.Touch()
	s.AddDomainEvent(NewShopkeeperStatusChangedEvent(s.ID, s.Status))
}

// IsActive reports whether the shopkeeper is active
func (s *Shopkeeper) IsActive() bool {
	return s.Status == ShopkeeperStatusActive
}

// MatchesQuery reports whether the record matches a case-insensitive
// substring search over name, city and contact. An empty query matches
// every record.
func (s *Shopkeeper) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(s.Name + " " + s.City + " " + s.Contact)
	return strings.Contains(haystack, q)
}

// SameNameCity reports whether the given pair collides with this record
// under the case-insensitive uniqueness rule
func (s *Shopkeeper) SameNameCity(name, city string) bool {
	return strings.EqualFold(s.Name, strings.TrimSpace(name)) &&
		strings.EqualFold(s.City, strings.TrimSpace(city))
}
