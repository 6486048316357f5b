package services

import (
	"context"
	"log"
	"time"

	"github.com/lucsky/cuid"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

const (
	orderPlacedEvent        = "order.placed"
	orderStatusChangedEvent = "order.status_changed"
)

type OrderService struct {
	repo      repositories.OrderRepository
	publisher EventPublisher
	delay     time.Duration
}

func NewOrderService(repo repositories.OrderRepository, publisher EventPublisher, delay time.Duration) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, delay: delay}
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id string) (models.Order, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Order{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Create places an order from a draft. The draft's shape is taken at face
// value; there is no payment processing to fail. Items and address are
// snapshots, never live references.
func (s *OrderService) Create(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Order{}, err
	}
	now := time.Now()
	order := models.Order{
		ID:                cuid.New(),
		RestaurantID:      draft.RestaurantID,
		Items:             models.CloneCartItems(draft.Items),
		Total:             draft.Total,
		Address:           draft.Address,
		PaymentMethod:     draft.PaymentMethod,
		Status:            models.OrderStatusPlaced,
		PlacedAt:          now,
		EstimatedDelivery: now.Add(models.EstimatedDeliveryOffsetMinutes * time.Minute),
	}
	if err := s.repo.Prepend(ctx, order); err != nil {
		return models.Order{}, err
	}
	s.publish(ctx, orderPlacedEvent, order)
	return order.Clone(), nil
}

// UpdateStatus overwrites the status field unconditionally; any
// status-to-status jump is accepted. Callers wanting a stricter lifecycle
// can gate on the status constants and IsTerminalStatus.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Order{}, err
	}
	order, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return models.Order{}, err
	}
	s.publish(ctx, orderStatusChangedEvent, order)
	return order, nil
}

// Reorder clones an existing order into a brand-new one: same restaurant,
// items, total and address, fresh id, status and timestamps. The cart is
// deliberately not involved; callers that want the cart emptied clear it
// themselves.
func (s *OrderService) Reorder(ctx context.Context, id string) (models.Order, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Order{}, err
	}
	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	now := time.Now()
	order := models.Order{
		ID:                cuid.New(),
		RestaurantID:      original.RestaurantID,
		Items:             models.CloneCartItems(original.Items),
		Total:             original.Total,
		Address:           original.Address,
		PaymentMethod:     original.PaymentMethod,
		Status:            models.OrderStatusPlaced,
		PlacedAt:          now,
		EstimatedDelivery: now.Add(models.EstimatedDeliveryOffsetMinutes * time.Minute),
	}
	if err := s.repo.Prepend(ctx, order); err != nil {
		return models.Order{}, err
	}
	s.publish(ctx, orderPlacedEvent, order)
	return order.Clone(), nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order models.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, order); err != nil {
		log.Printf("Failed to publish %s event for order %s: %v", eventType, order.ID, err)
	}
}
