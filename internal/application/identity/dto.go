package identity

import (
	"github.com/google/uuid"

	"github.com/udhaar/backend/internal/domain/identity"
	"github.com/udhaar/backend/internal/infrastructure/auth"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AccountResponse represents the signed-in account
type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

// LoginResponse carries the token pair and the account it belongs to
type LoginResponse struct {
	Account AccountResponse `json:"account"`
	Tokens  auth.TokenPair  `json:"tokens"`
}

// RecentEmailsResponse lists remembered login emails, most recent first
type RecentEmailsResponse struct {
	Emails []string `json:"emails"`
}

// ToAccountResponse maps a domain account to its response DTO
func ToAccountResponse(a *identity.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Role:        string(a.Role),
	}
}
