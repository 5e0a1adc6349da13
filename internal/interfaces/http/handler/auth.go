package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	identityapp "github.com/udhaar/backend/internal/application/identity"
	"github.com/udhaar/backend/internal/infrastructure/auth"
	"github.com/udhaar/backend/internal/interfaces/http/dto"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates an account and issues a token pair. Successful
// logins also push the email onto the recent-login list.
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identityapp.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			h.Error(c, http.StatusUnauthorized, dto.ErrCodeTokenExpired, "Refresh token has expired")
		case errors.Is(err, auth.ErrMaxRefreshExceeded):
			h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Maximum refresh count exceeded, please log in again")
		case errors.Is(err, auth.ErrInvalidToken),
			errors.Is(err, auth.ErrInvalidTokenType),
			errors.Is(err, auth.ErrInvalidClaims),
			errors.Is(err, auth.ErrTokenNotYetValid),
			errors.Is(err, auth.ErrMissingUserID):
			h.Error(c, http.StatusUnauthorized, dto.ErrCodeTokenInvalid, "Refresh token is invalid")
		default:
			h.HandleError(c, err)
		}
		return
	}

	h.Success(c, pair)
}

// RecentEmails returns the most recent successful login emails,
// newest first
func (h *AuthHandler) RecentEmails(c *gin.Context) {
	result, err := h.authService.RecentEmails(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
