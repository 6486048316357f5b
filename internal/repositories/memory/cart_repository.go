package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/quickbite/quickbite/internal/models"
)

type CartRepository struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) GetAll(ctx context.Context) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneCartItems(r.items), nil
}

// UpsertLine folds the item into an existing line when the menu item and
// customizations match; otherwise it becomes a new line. The caller assigns
// the candidate id, which is discarded on a merge.
func (r *CartRepository) UpsertLine(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].SameLine(item) {
			r.items[i].Quantity += item.Quantity
			return models.CloneCartItems(r.items), nil
		}
	}
	r.items = append(r.items, item.Clone())
	return models.CloneCartItems(r.items), nil
}

func (r *CartRepository) SetQuantity(ctx context.Context, itemID string, quantity int) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != itemID {
			continue
		}
		if quantity <= 0 {
			r.items = slices.Delete(r.items, i, i+1)
		} else {
			r.items[i].Quantity = quantity
		}
		break
	}
	return models.CloneCartItems(r.items), nil
}

func (r *CartRepository) RemoveLine(ctx context.Context, itemID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(item models.CartItem) bool {
		return item.ID == itemID
	})
	return models.CloneCartItems(r.items), nil
}

func (r *CartRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}
