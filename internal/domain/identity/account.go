// Package identity holds operator login accounts for the udhaar book.
package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/udhaar/backend/internal/domain/shared"
)

// AccountRole distinguishes what surface an account signs into
type AccountRole string

const (
	AccountRoleAdmin      AccountRole = "admin"
	AccountRoleShopkeeper AccountRole = "shopkeeper"
	AccountRoleBuyer      AccountRole = "buyer"
)

// Validation and authentication error codes
var (
	ErrMissingEmail       = shared.NewDomainError("MISSING_EMAIL", "email is required")
	ErrMissingPassword    = shared.NewDomainError("MISSING_PASSWORD", "password is required")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "email or password is incorrect")
)

// Account is an operator login for the udhaar book
type Account struct {
	shared.BaseAggregateRoot
	Email        string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string      `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName  string      `gorm:"type:varchar(255);not null" json:"display_name"`
	Role         AccountRole `gorm:"type:varchar(32);not null" json:"role"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates an account with a bcrypt-hashed password
func NewAccount(email, password, displayName string, role AccountRole) (*Account, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      string(hash),
		DisplayName:       strings.TrimSpace(displayName),
		Role:              role,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// NormalizeEmail lowercases and trims an email for lookup and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
