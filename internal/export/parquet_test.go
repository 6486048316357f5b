package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories/memory"
)

func TestToRow(t *testing.T) {
	placedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	order := models.Order{
		ID:           "o1",
		RestaurantID: "r1",
		Items: []models.CartItem{
			{ID: "c1", MenuItemID: "m1", Quantity: 2},
			{ID: "c2", MenuItemID: "m3", Quantity: 1},
		},
		Total:             712,
		Address:           models.Address{City: "Bengaluru"},
		PaymentMethod:     models.PaymentMethodCard,
		Status:            models.OrderStatusDelivered,
		PlacedAt:          placedAt,
		EstimatedDelivery: placedAt.Add(45 * time.Minute),
	}

	row := toRow(order)

	assert.Equal(t, "o1", row.ID)
	assert.Equal(t, "r1", row.RestaurantID)
	assert.Equal(t, 712.0, row.Total)
	assert.Equal(t, models.OrderStatusDelivered, row.Status)
	assert.Equal(t, models.PaymentMethodCard, row.PaymentMethod)
	assert.Equal(t, int32(2), row.ItemCount)
	assert.Equal(t, "Bengaluru", row.City)
	assert.Equal(t, placedAt.UnixMilli(), row.PlacedAt)
	assert.Equal(t, placedAt.Add(45*time.Minute).UnixMilli(), row.EstimatedDelivery)
}

func TestWriteLocal(t *testing.T) {
	now := time.Now()
	repo := memory.NewOrderRepository([]models.Order{
		{ID: "o1", RestaurantID: "r1", Status: models.OrderStatusPlaced, PlacedAt: now, EstimatedDelivery: now.Add(45 * time.Minute)},
		{ID: "o2", RestaurantID: "r2", Status: models.OrderStatusDelivered, PlacedAt: now, EstimatedDelivery: now.Add(45 * time.Minute)},
	})

	path := filepath.Join(t.TempDir(), "orders.parquet")
	count, err := WriteLocal(context.Background(), repo, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
