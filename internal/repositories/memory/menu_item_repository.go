package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

type MenuItemRepository struct {
	mu        sync.Mutex
	menuItems []models.MenuItem
}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menuItems = append(r.menuItems, menuItems...)
	return nil
}

func (r *MenuItemRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.menuItems), nil
}

func (r *MenuItemRepository) GetByID(ctx context.Context, id string) (models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.menuItems {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, repositories.ErrNotFound)
}

func (r *MenuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MenuItem
	for _, item := range r.menuItems {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.menuItems), nil
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menuItems = nil
	return nil
}
