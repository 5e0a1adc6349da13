// Package identity contains the application services for operator login.
package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/udhaar/backend/internal/domain/identity"
	"github.com/udhaar/backend/internal/domain/shared"
	"github.com/udhaar/backend/internal/infrastructure/auth"
)

// AuthService handles login, token refresh and the recent-emails list
type AuthService struct {
	accounts     identity.AccountRepository
	recentEmails identity.RecentEmailStore
	jwtService   *auth.JWTService
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accounts identity.AccountRepository, recentEmails identity.RecentEmailStore, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		accounts:     accounts,
		recentEmails: recentEmails,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login verifies credentials and issues a token pair. A successful
// login also records the email in the recent-emails list; a failure
// there is logged but never fails the login.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := identity.NormalizeEmail(req.Email)
	if email == "" {
		return nil, identity.ErrMissingEmail
	}
	if req.Password == "" {
		return nil, identity.ErrMissingPassword
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.VerifyPassword(req.Password) {
		s.logger.Warn("failed login attempt", zap.String("email", email))
		return nil, identity.ErrInvalidCredentials
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: account.ID,
		Email:  account.Email,
		Role:   string(account.Role),
	})
	if err != nil {
		return nil, err
	}

	if err := s.recentEmails.Record(ctx, email); err != nil {
		s.logger.Warn("failed to record recent email", zap.Error(err))
	}

	s.logger.Info("login successful",
		zap.String("account_id", account.ID.String()),
		zap.String("role", string(account.Role)),
	)

	return &LoginResponse{
		Account: ToAccountResponse(account),
		Tokens:  *tokens,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	tokens, err := s.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// RecentEmails lists remembered login emails, most recent first
func (s *AuthService) RecentEmails(ctx context.Context) (*RecentEmailsResponse, error) {
	emails, err := s.recentEmails.List(ctx)
	if err != nil {
		return nil, err
	}
	return &RecentEmailsResponse{Emails: emails}, nil
}
