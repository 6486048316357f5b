package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

// RestaurantRepository keeps the restaurant fixtures in memory. The slice is
// canonical state; every read hands out copies so callers can never reach the
// backing storage through a returned value.
type RestaurantRepository struct {
	mu          sync.Mutex
	restaurants []models.Restaurant
}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{}
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []models.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, restaurant := range restaurants {
		restaurant.Cuisine = slices.Clone(restaurant.Cuisine)
		r.restaurants = append(r.restaurants, restaurant)
	}
	return nil
}

func (r *RestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneRestaurants(r.restaurants), nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (models.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, restaurant := range r.restaurants {
		if restaurant.ID == id {
			restaurant.Cuisine = slices.Clone(restaurant.Cuisine)
			return restaurant, nil
		}
	}
	return models.Restaurant{}, fmt.Errorf("restaurant %s: %w", id, repositories.ErrNotFound)
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.restaurants), nil
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants = nil
	return nil
}

func cloneRestaurants(restaurants []models.Restaurant) []models.Restaurant {
	out := make([]models.Restaurant, len(restaurants))
	for i, restaurant := range restaurants {
		restaurant.Cuisine = slices.Clone(restaurant.Cuisine)
		out[i] = restaurant
	}
	return out
}
