package services

import (
	"context"
	"log"
	"time"

	"github.com/lucsky/cuid"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

const cartUpdatedEvent = "cart.updated"

type CartService struct {
	repo      repositories.CartRepository
	changed   *Signal
	publisher EventPublisher
	delay     time.Duration
}

func NewCartService(repo repositories.CartRepository, changed *Signal, publisher EventPublisher, delay time.Duration) *CartService {
	return &CartService{repo: repo, changed: changed, publisher: publisher, delay: delay}
}

// Changed exposes the cart-change signal for UI chrome to subscribe to.
func (s *CartService) Changed() *Signal {
	return s.changed
}

func (s *CartService) Items(ctx context.Context) ([]models.CartItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}

// AddItem merges the item into an existing line with the same menu item and
// customizations, or appends a new line with a fresh id. Every call mutates
// the cart, so the change signal always fires.
func (s *CartService) AddItem(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	item.ID = cuid.New()
	items, err := s.repo.UpsertLine(ctx, item)
	if err != nil {
		return nil, err
	}
	s.notify(ctx)
	return items, nil
}

// UpdateQuantity sets a line's quantity; anything <= 0 removes the line.
// An unknown id is a silent no-op, but the change signal still fires.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) ([]models.CartItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	items, err := s.repo.SetQuantity(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}
	s.notify(ctx)
	return items, nil
}

// RemoveItem is idempotent; removing an absent id is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, itemID string) ([]models.CartItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	items, err := s.repo.RemoveLine(ctx, itemID)
	if err != nil {
		return nil, err
	}
	s.notify(ctx)
	return items, nil
}

func (s *CartService) Clear(ctx context.Context) error {
	if err := wait(ctx, s.delay); err != nil {
		return err
	}
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// Total is the cart subtotal: the sum of quantity times each line's own
// price.
func (s *CartService) Total(ctx context.Context) (float64, error) {
	if err := wait(ctx, s.delay); err != nil {
		return 0, err
	}
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total, nil
}

func (s *CartService) notify(ctx context.Context) {
	if s.changed != nil {
		s.changed.Notify()
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, cartUpdatedEvent, nil); err != nil {
			log.Printf("Failed to publish %s event: %v", cartUpdatedEvent, err)
		}
	}
}
