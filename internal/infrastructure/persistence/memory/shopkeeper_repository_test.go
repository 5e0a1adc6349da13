package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	directoryapp "github.com/udhaar/backend/internal/application/directory"
	"github.com/udhaar/backend/internal/domain/directory"
	"github.com/udhaar/backend/internal/domain/shared"
)

func mustShopkeeper(t *testing.T, name, city string) *directory.Shopkeeper {
	t.Helper()
	s, err := directory.NewShopkeeper(name, city, "0300-1234567", "")
	require.NoError(t, err)
	return s
}

func TestShopkeeperRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewShopkeeperRepository()

	s := mustShopkeeper(t, "Ali Traders", "Lahore")
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali Traders", found.Name)

	exists, err := repo.Exists(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestShopkeeperRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewShopkeeperRepository()

	s := mustShopkeeper(t, "Ali Traders", "Lahore")
	require.NoError(t, repo.Save(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.FindByID(ctx, s.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, s.ID), shared.ErrNotFound)
}

func TestShopkeeperRepository_ExistsByNameCity(t *testing.T) {
	ctx := context.Background()
	repo := NewShopkeeperRepository()

	s := mustShopkeeper(t, "Ali Traders", "Lahore")
	require.NoError(t, repo.Save(ctx, s))

	t.Run("case-insensitive collision", func(t *testing.T) {
		dup, err := repo.ExistsByNameCity(ctx, "ali traders", "LAHORE", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, dup)
	})

	t.Run("same name in another city is fine", func(t *testing.T) {
		dup, err := repo.ExistsByNameCity(ctx, "Ali Traders", "Karachi", uuid.Nil)
		require.NoError(t, err)
		assert.False(t, dup)
	})

	t.Run("excluded record does not collide with itself", func(t *testing.T) {
		dup, err := repo.ExistsByNameCity(ctx, "Ali Traders", "Lahore", s.ID)
		require.NoError(t, err)
		assert.False(t, dup)
	})
}

func TestShopkeeperRepository_Search_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewShopkeeperRepository()

	first := mustShopkeeper(t, "Ali Traders", "Lahore")
	second := mustShopkeeper(t, "Bilal Mobiles", "Karachi")
	third := mustShopkeeper(t, "Chand Electronics", "Lahore")
	for _, s := range []*directory.Shopkeeper{first, second, third} {
		require.NoError(t, repo.Save(ctx, s))
	}

	t.Run("empty query returns everything in order", func(t *testing.T) {
		page, err := repo.Search(ctx, "", shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, first.ID, page.Items[0].ID)
		assert.Equal(t, second.ID, page.Items[1].ID)
		assert.Equal(t, third.ID, page.Items[2].ID)
		assert.Equal(t, int64(3), page.Total)
	})

	t.Run("substring match over name and city", func(t *testing.T) {
		page, err := repo.Search(ctx, "lahore", shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, first.ID, page.Items[0].ID)
		assert.Equal(t, third.ID, page.Items[1].ID)
	})

	t.Run("re-saving a record keeps its position", func(t *testing.T) {
		require.NoError(t, first.Update("Ali Traders", "Lahore", "0300-7654321", "updated"))
		require.NoError(t, repo.Save(ctx, first))

		page, err := repo.Search(ctx, "", shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, first.ID, page.Items[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := repo.Search(ctx, "", shared.Filter{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, second.ID, page.Items[0].ID)
		assert.Equal(t, int64(3), page.Total)
	})
}

func TestShopkeeperRepository_FindByName(t *testing.T) {
	ctx := context.Background()
	repo := NewShopkeeperRepository()

	s := mustShopkeeper(t, "Ali Traders", "Lahore")
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindByName(ctx, "Ali Traders")
	require.NoError(t, err)
	assert.Equal(t, s.ID, found.ID)

	_, err = repo.FindByName(ctx, "ali traders")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// The repository doubles as a backing store for the application service
// in tests, so run the service's duplicate rule through it end to end.
func TestShopkeeperRepository_ThroughService(t *testing.T) {
	ctx := context.Background()
	repo := NewShopkeeperRepository()
	svc := directoryapp.NewShopkeeperService(repo, zaptest.NewLogger(t))

	created, err := svc.Add(ctx, directoryapp.CreateShopkeeperRequest{
		Name:    "Ali Traders",
		City:    "Lahore",
		Contact: "0300-1234567",
	})
	require.NoError(t, err)

	_, err = svc.Add(ctx, directoryapp.CreateShopkeeperRequest{
		Name:    "ALI TRADERS",
		City:    "lahore",
		Contact: "0300-9999999",
	})
	require.Error(t, err)

	results, total, err := svc.Search(ctx, directoryapp.ShopkeeperListFilter{Query: "ali"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)
}
