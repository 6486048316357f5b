package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

// OrderRepository stores orders newest-first.
type OrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrderRepository(seed []models.Order) *OrderRepository {
	r := &OrderRepository{orders: make([]models.Order, 0, len(seed))}
	for _, order := range seed {
		r.orders = append(r.orders, order.Clone())
	}
	return r
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Order, len(r.orders))
	for i, order := range r.orders {
		out[i] = order.Clone()
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == id {
			return order.Clone(), nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, repositories.ErrNotFound)
}

func (r *OrderRepository) Prepend(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]models.Order{order.Clone()}, r.orders...)
	return nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, id string, status string) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return r.orders[i].Clone(), nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, repositories.ErrNotFound)
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders), nil
}
