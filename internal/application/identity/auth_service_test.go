package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/udhaar/backend/internal/domain/identity"
	"github.com/udhaar/backend/internal/domain/shared"
	"github.com/udhaar/backend/internal/infrastructure/auth"
	"github.com/udhaar/backend/internal/infrastructure/config"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Save(ctx context.Context, a *identity.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

// MockRecentEmailStore is a mock implementation of RecentEmailStore
type MockRecentEmailStore struct {
	mock.Mock
}

func (m *MockRecentEmailStore) Record(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockRecentEmailStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
}

func testAccount(t *testing.T) *identity.Account {
	t.Helper()
	account, err := identity.NewAccount("admin@udhaar.pk", "secret123", "Admin", identity.AccountRoleAdmin)
	require.NoError(t, err)
	return account
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens and records recent email", func(t *testing.T) {
		account := testAccount(t)
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, "admin@udhaar.pk").Return(account, nil)
		recents := new(MockRecentEmailStore)
		recents.On("Record", ctx, "admin@udhaar.pk").Return(nil)

		svc := NewAuthService(accounts, recents, testJWTService(), zap.NewNop())
		resp, err := svc.Login(ctx, LoginRequest{Email: " Admin@Udhaar.PK ", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, account.ID, resp.Account.ID)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)
		recents.AssertExpectations(t)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		account := testAccount(t)
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, "admin@udhaar.pk").Return(account, nil)
		recents := new(MockRecentEmailStore)

		svc := NewAuthService(accounts, recents, testJWTService(), zap.NewNop())
		_, err := svc.Login(ctx, LoginRequest{Email: "admin@udhaar.pk", Password: "wrong"})

		assert.Equal(t, identity.ErrInvalidCredentials, err)
		recents.AssertNotCalled(t, "Record")
	})

	t.Run("unknown email yields invalid credentials, not not-found", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, "ghost@udhaar.pk").Return(nil, shared.ErrNotFound)

		svc := NewAuthService(accounts, new(MockRecentEmailStore), testJWTService(), zap.NewNop())
		_, err := svc.Login(ctx, LoginRequest{Email: "ghost@udhaar.pk", Password: "whatever"})

		assert.Equal(t, identity.ErrInvalidCredentials, err)
	})

	t.Run("recent email failure does not fail login", func(t *testing.T) {
		account := testAccount(t)
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, "admin@udhaar.pk").Return(account, nil)
		recents := new(MockRecentEmailStore)
		recents.On("Record", ctx, "admin@udhaar.pk").Return(errors.New("redis down"))

		svc := NewAuthService(accounts, recents, testJWTService(), zap.NewNop())
		resp, err := svc.Login(ctx, LoginRequest{Email: "admin@udhaar.pk", Password: "secret123"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
	})

	t.Run("blank email rejected before repository lookup", func(t *testing.T) {
		accounts := new(MockAccountRepository)

		svc := NewAuthService(accounts, new(MockRecentEmailStore), testJWTService(), zap.NewNop())
		_, err := svc.Login(ctx, LoginRequest{Email: "   ", Password: "secret123"})

		assert.Equal(t, identity.ErrMissingEmail, err)
		accounts.AssertNotCalled(t, "FindByEmail")
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		jwtSvc := testJWTService()
		pair, err := jwtSvc.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: uuid.New(),
			Email:  "admin@udhaar.pk",
			Role:   "admin",
		})
		require.NoError(t, err)

		svc := NewAuthService(new(MockAccountRepository), new(MockRecentEmailStore), jwtSvc, zap.NewNop())
		newPair, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, newPair.AccessToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockAccountRepository), new(MockRecentEmailStore), testJWTService(), zap.NewNop())
		_, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: "garbage"})

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthServiceRecentEmails(t *testing.T) {
	ctx := context.Background()

	recents := new(MockRecentEmailStore)
	recents.On("List", ctx).Return([]string{"b@shop.pk", "a@shop.pk"}, nil)

	svc := NewAuthService(new(MockAccountRepository), recents, testJWTService(), zap.NewNop())
	resp, err := svc.RecentEmails(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"b@shop.pk", "a@shop.pk"}, resp.Emails)
}
