package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories/memory"
)

// The store owns canonical state; every read must hand out an independent
// copy. Mutating whatever a read returned must never show up in a later
// read.

func TestRestaurantRepository_ReadsAreDefensiveCopies(t *testing.T) {
	repo := memory.NewRestaurantRepository()
	ctx := context.Background()
	require.NoError(t, repo.BulkCreate(ctx, []models.Restaurant{
		{ID: "r1", Name: "Spice Garden", Cuisine: []string{"North Indian"}},
	}))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	got[0].Name = "Hacked"
	got[0].Cuisine[0] = "Hacked"

	fresh, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Spice Garden", fresh[0].Name)
	assert.Equal(t, "North Indian", fresh[0].Cuisine[0])

	one, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	one.Cuisine[0] = "Hacked"

	fresh, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "North Indian", fresh[0].Cuisine[0])
}

func TestCartRepository_ReadsAreDefensiveCopies(t *testing.T) {
	repo := memory.NewCartRepository()
	ctx := context.Background()

	_, err := repo.UpsertLine(ctx, models.CartItem{
		ID:             "c1",
		MenuItemID:     "m1",
		Quantity:       1,
		Customizations: map[string]string{"spice": "hot"},
	})
	require.NoError(t, err)

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	got[0].Quantity = 99
	got[0].Customizations["spice"] = "mild"

	fresh, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.Equal(t, "hot", fresh[0].Customizations["spice"])
}

func TestCartRepository_UpsertDoesNotAliasCallerMap(t *testing.T) {
	repo := memory.NewCartRepository()
	ctx := context.Background()

	customizations := map[string]string{"spice": "hot"}
	_, err := repo.UpsertLine(ctx, models.CartItem{ID: "c1", MenuItemID: "m1", Quantity: 1, Customizations: customizations})
	require.NoError(t, err)

	// Mutating the map after the call must not affect stored state.
	customizations["spice"] = "mild"

	fresh, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hot", fresh[0].Customizations["spice"])
}

func TestOrderRepository_ReadsAreDefensiveCopies(t *testing.T) {
	now := time.Now()
	repo := memory.NewOrderRepository([]models.Order{{
		ID:           "o1",
		RestaurantID: "r1",
		Items: []models.CartItem{
			{ID: "c1", MenuItemID: "m1", Quantity: 2, Customizations: map[string]string{"crust": "thin"}},
		},
		Total:    500,
		Address:  models.Address{ID: "a1", Line1: "221 Sunrise Apartments"},
		Status:   models.OrderStatusPlaced,
		PlacedAt: now,
	}})
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	got.Items[0].Quantity = 99
	got.Items[0].Customizations["crust"] = "stuffed"
	got.Address.Line1 = "Hacked"

	fresh, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Items[0].Quantity)
	assert.Equal(t, "thin", fresh.Items[0].Customizations["crust"])
	assert.Equal(t, "221 Sunrise Apartments", fresh.Address.Line1)
}

func TestAddressRepository_ReadsAreDefensiveCopies(t *testing.T) {
	repo := memory.NewAddressRepository([]models.Address{{ID: "a1", Line1: "Original"}})
	ctx := context.Background()

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	got[0].Line1 = "Hacked"

	fresh, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Original", fresh[0].Line1)
}
