package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/udhaar/backend/internal/domain/identity"
	"github.com/udhaar/backend/internal/domain/shared"
)

func TestSeedDemoAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("creates every demo account on an empty store", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

		var saved []*identity.Account
		accounts.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(*identity.Account))
		}).Return(nil)

		created, err := SeedDemoAccounts(ctx, accounts, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 3, created)
		require.Len(t, saved, 3)

		byEmail := make(map[string]*identity.Account, len(saved))
		for _, a := range saved {
			byEmail[a.Email] = a
		}
		require.Contains(t, byEmail, "admin@gmail.com")
		require.Contains(t, byEmail, "shopkeeper@gmail.com")
		require.Contains(t, byEmail, "buyer@gmail.com")
		assert.Equal(t, identity.AccountRoleAdmin, byEmail["admin@gmail.com"].Role)
		assert.Equal(t, identity.AccountRoleShopkeeper, byEmail["shopkeeper@gmail.com"].Role)
		assert.Equal(t, identity.AccountRoleBuyer, byEmail["buyer@gmail.com"].Role)
	})

	t.Run("seeded accounts authenticate with their demo passwords", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, mock.Anything).Return(nil, shared.ErrNotFound)

		byEmail := make(map[string]*identity.Account)
		accounts.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			a := args.Get(1).(*identity.Account)
			byEmail[a.Email] = a
		}).Return(nil)

		_, err := SeedDemoAccounts(ctx, accounts, zap.NewNop())
		require.NoError(t, err)

		for _, demo := range DemoAccounts() {
			account := byEmail[identity.NormalizeEmail(demo.Email)]
			require.NotNil(t, account, demo.Email)
			assert.True(t, account.VerifyPassword(demo.Password), demo.Email)
			assert.False(t, account.VerifyPassword("wrong"), demo.Email)
		}
	})

	t.Run("existing accounts are skipped", func(t *testing.T) {
		existing := testAccount(t)
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, "admin@gmail.com").Return(existing, nil)
		accounts.On("FindByEmail", ctx, "shopkeeper@gmail.com").Return(nil, shared.ErrNotFound)
		accounts.On("FindByEmail", ctx, "buyer@gmail.com").Return(nil, shared.ErrNotFound)
		accounts.On("Save", ctx, mock.Anything).Return(nil)

		created, err := SeedDemoAccounts(ctx, accounts, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 2, created)
		accounts.AssertNumberOfCalls(t, "Save", 2)
	})

	t.Run("repository failure stops the seed", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("FindByEmail", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		created, err := SeedDemoAccounts(ctx, accounts, zap.NewNop())

		assert.Error(t, err)
		assert.Zero(t, created)
	})
}
