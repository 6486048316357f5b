package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, restaurant_id, items, total, delivery_address, payment_method, status, placed_at, estimated_delivery, delivered_at`

// GetAll orders newest-first by placement time, matching the in-memory
// store's prepend ordering.
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY placed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, fmt.Errorf("order %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (r *OrderRepository) Prepend(ctx context.Context, order models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encoding order items: %w", err)
	}
	address, err := json.Marshal(order.Address)
	if err != nil {
		return fmt.Errorf("encoding order address: %w", err)
	}
	query := `
        INSERT INTO orders (id, restaurant_id, items, total, delivery_address, payment_method, status, placed_at, estimated_delivery, delivered_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.RestaurantID,
		items,
		order.Total,
		address,
		order.PaymentMethod,
		order.Status,
		order.PlacedAt,
		order.EstimatedDelivery,
		order.DeliveredAt,
	)
	return err
}

func (r *OrderRepository) SetStatus(ctx context.Context, id string, status string) (models.Order, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return models.Order{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.Order{}, fmt.Errorf("order %s: %w", id, repositories.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

func scanOrder(row pgx.Row) (models.Order, error) {
	var order models.Order
	var items, address []byte
	err := row.Scan(
		&order.ID,
		&order.RestaurantID,
		&items,
		&order.Total,
		&address,
		&order.PaymentMethod,
		&order.Status,
		&order.PlacedAt,
		&order.EstimatedDelivery,
		&order.DeliveredAt,
	)
	if err != nil {
		return models.Order{}, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return models.Order{}, fmt.Errorf("decoding items for order %s: %w", order.ID, err)
	}
	if err := json.Unmarshal(address, &order.Address); err != nil {
		return models.Order{}, fmt.Errorf("decoding address for order %s: %w", order.ID, err)
	}
	return order, nil
}
