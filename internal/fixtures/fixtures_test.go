package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite/internal/fixtures"
)

func TestLoad(t *testing.T) {
	data, err := fixtures.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Restaurants)
	assert.NotEmpty(t, data.MenuItems)
	assert.NotEmpty(t, data.Addresses)
}

func TestLoad_MenuItemsReferenceKnownRestaurants(t *testing.T) {
	data, err := fixtures.Load()
	require.NoError(t, err)

	restaurants := make(map[string]bool, len(data.Restaurants))
	for _, restaurant := range data.Restaurants {
		restaurants[restaurant.ID] = true
	}
	for _, item := range data.MenuItems {
		assert.Truef(t, restaurants[item.RestaurantID], "menu item %s references unknown restaurant %s", item.ID, item.RestaurantID)
	}
}

func TestLoad_AtMostOneDefaultAddress(t *testing.T) {
	data, err := fixtures.Load()
	require.NoError(t, err)

	defaults := 0
	for _, address := range data.Addresses {
		if address.IsDefault {
			defaults++
		}
	}
	assert.LessOrEqual(t, defaults, 1)
}
