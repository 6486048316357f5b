package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
	"github.com/quickbite/quickbite/internal/repositories/memory"
	"github.com/quickbite/quickbite/internal/services"
)

var testMenuItems = []models.MenuItem{
	{ID: "m1", RestaurantID: "r1", Name: "Butter Chicken", Description: "Creamy tomato gravy", Category: "Main Course"},
	{ID: "m2", RestaurantID: "r1", Name: "Garlic Naan", Description: "Flatbread with garlic butter", Category: "Breads"},
	{ID: "m3", RestaurantID: "r2", Name: "Kung Pao Chicken", Description: "Stir-fried with peanuts", Category: "Main Course"},
	{ID: "m4", RestaurantID: "r2", Name: "Veg Hakka Noodles", Description: "Wok-tossed noodles", Category: "Noodles"},
}

func newMenuItemService(t *testing.T) *services.MenuItemService {
	t.Helper()
	repo := memory.NewMenuItemRepository()
	require.NoError(t, repo.BulkCreate(context.Background(), testMenuItems))
	return services.NewMenuItemService(repo, 0)
}

func TestMenuItemService_ByRestaurant(t *testing.T) {
	svc := newMenuItemService(t)

	items, err := svc.ByRestaurant(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "r1", item.RestaurantID)
	}
}

func TestMenuItemService_ByCategory(t *testing.T) {
	svc := newMenuItemService(t)

	items, err := svc.ByCategory(context.Background(), "r2", "Main Course")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m3", items[0].ID)
}

func TestMenuItemService_Search(t *testing.T) {
	svc := newMenuItemService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"matches_name", "chicken", []string{"m1", "m3"}},
		{"matches_description", "wok", []string{"m4"}},
		{"case_insensitive", "NAAN", []string{"m2"}},
		{"no_match", "sushi", nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			results, err := svc.Search(ctx, testCase.query)
			require.NoError(t, err)

			var ids []string
			for _, item := range results {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, testCase.expected, ids)
		})
	}
}

func TestMenuItemService_GetByIDNotFound(t *testing.T) {
	svc := newMenuItemService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
