package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/udhaar/backend/internal/domain/identity"
	"github.com/udhaar/backend/internal/domain/shared"
)

// DemoAccount is one of the built-in logins the book ships with.
type DemoAccount struct {
	Email       string
	Password    string
	DisplayName string
	Role        identity.AccountRole
}

// DemoAccounts returns the login for each role. Plaintext passwords
// exist only here; SeedDemoAccounts stores bcrypt hashes.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{Email: "admin@gmail.com", Password: "admin", DisplayName: "Admin", Role: identity.AccountRoleAdmin},
		{Email: "shopkeeper@gmail.com", Password: "shopkeeper", DisplayName: "Shopkeeper", Role: identity.AccountRoleShopkeeper},
		{Email: "buyer@gmail.com", Password: "buyer", DisplayName: "Buyer", Role: identity.AccountRoleBuyer},
	}
}

// SeedDemoAccounts creates any demo account not already present and
// returns how many it created. Existing accounts are left untouched, so
// the operation is safe to repeat.
func SeedDemoAccounts(ctx context.Context, accounts identity.AccountRepository, logger *zap.Logger) (int, error) {
	created := 0
	for _, demo := range DemoAccounts() {
		_, err := accounts.FindByEmail(ctx, identity.NormalizeEmail(demo.Email))
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return created, err
		}

		account, err := identity.NewAccount(demo.Email, demo.Password, demo.DisplayName, demo.Role)
		if err != nil {
			return created, err
		}
		if err := accounts.Save(ctx, account); err != nil {
			return created, err
		}

		logger.Info("demo account created",
			zap.String("email", account.Email),
			zap.String("role", string(account.Role)),
		)
		created++
	}
	return created, nil
}
