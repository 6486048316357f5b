package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories/memory"
	"github.com/quickbite/quickbite/internal/services"
)

func newCartService() *services.CartService {
	return services.NewCartService(memory.NewCartRepository(), services.NewSignal(), nil, 0)
}

func TestCartService_AddItemMergesIdenticalLines(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Name: "Butter Chicken", Price: 320, Quantity: 1})
	require.NoError(t, err)
	items, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Name: "Butter Chicken", Price: 320, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartService_AddItemKeepsDistinctCustomizations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		first, second  map[string]string
		expectedLines  int
		expectedTotals []int
	}{
		{
			name:           "equal_maps_merge",
			first:          map[string]string{"spice": "hot"},
			second:         map[string]string{"spice": "hot"},
			expectedLines:  1,
			expectedTotals: []int{2},
		},
		{
			name:           "different_values_stay_separate",
			first:          map[string]string{"spice": "hot"},
			second:         map[string]string{"spice": "mild"},
			expectedLines:  2,
			expectedTotals: []int{1, 1},
		},
		{
			name:           "nil_and_empty_merge",
			first:          nil,
			second:         map[string]string{},
			expectedLines:  1,
			expectedTotals: []int{2},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := newCartService()
			_, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Quantity: 1, Customizations: testCase.first})
			require.NoError(t, err)
			items, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Quantity: 1, Customizations: testCase.second})
			require.NoError(t, err)

			require.Len(t, items, testCase.expectedLines)
			for i, quantity := range testCase.expectedTotals {
				assert.Equal(t, quantity, items[i].Quantity)
			}
		})
	}
}

func TestCartService_SameMenuItemDifferentCustomizationsBothKept(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m8", Quantity: 1, Customizations: map[string]string{"crust": "thin"}})
	require.NoError(t, err)
	items, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m8", Quantity: 1, Customizations: map[string]string{"crust": "stuffed"}})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
		expected int // remaining lines
	}{
		{"zero_removes_line", 0, 0},
		{"negative_removes_line", -1, 0},
		{"positive_sets_exactly", 5, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := newCartService()
			added, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Quantity: 2})
			require.NoError(t, err)

			items, err := svc.UpdateQuantity(ctx, added[0].ID, testCase.quantity)
			require.NoError(t, err)
			require.Len(t, items, testCase.expected)
			if testCase.expected == 1 {
				assert.Equal(t, testCase.quantity, items[0].Quantity)
			}
		})
	}
}

func TestCartService_UpdateQuantityUnknownIDIsSilentNoop(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Quantity: 2})
	require.NoError(t, err)

	items, err := svc.UpdateQuantity(ctx, "does-not-exist", 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_RemoveItemIsIdempotent(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	added, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Quantity: 1})
	require.NoError(t, err)

	items, err := svc.RemoveItem(ctx, added[0].ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Removing again must not fail.
	items, err = svc.RemoveItem(ctx, added[0].ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_TotalUsesLinePrices(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Price: 320, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, models.CartItem{MenuItemID: "m3", Price: 60, Quantity: 3})
	require.NoError(t, err)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2*320.0+3*60.0, total)
}

func TestCartService_ClearEmptiesCart(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_EveryMutationNotifies(t *testing.T) {
	signal := services.NewSignal()
	svc := services.NewCartService(memory.NewCartRepository(), signal, nil, 0)
	ctx := context.Background()

	var notified int
	cancel := signal.Subscribe(func() { notified++ })
	defer cancel()

	added, err := svc.AddItem(ctx, models.CartItem{MenuItemID: "m1", Quantity: 1})
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, added[0].ID, 2)
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, "missing", 2) // no-op still notifies
	require.NoError(t, err)
	_, err = svc.RemoveItem(ctx, "missing") // no-op still notifies
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	assert.Equal(t, 5, notified)

	// Reads never notify.
	_, err = svc.Items(ctx)
	require.NoError(t, err)
	_, err = svc.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, notified)
}
