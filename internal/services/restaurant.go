package services

import (
	"context"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

const (
	featuredMinRating = 4.5
	featuredLimit     = 6
)

type RestaurantService struct {
	repo  repositories.RestaurantRepository
	cache RestaurantCache
	delay time.Duration
}

func NewRestaurantService(repo repositories.RestaurantRepository, cache RestaurantCache, delay time.Duration) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache, delay: delay}
}

func (s *RestaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.load(ctx)
}

func (s *RestaurantService) GetByID(ctx context.Context, id string) (models.Restaurant, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Restaurant{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Search matches the query case-insensitively against name and cuisines,
// then narrows by the optional filters. An empty query matches everything.
func (s *RestaurantService) Search(ctx context.Context, query string, filters models.RestaurantFilters) ([]models.Restaurant, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	restaurants, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.Restaurant, 0, len(restaurants))
	term := strings.ToLower(query)
	for _, restaurant := range restaurants {
		if term != "" && !matchesRestaurant(restaurant, term) {
			continue
		}
		if len(filters.Cuisine) > 0 && !hasAnyCuisine(restaurant, filters.Cuisine) {
			continue
		}
		if filters.MinRating > 0 && restaurant.Rating < filters.MinRating {
			continue
		}
		if filters.MaxDeliveryTime > 0 && restaurant.DeliveryTime > filters.MaxDeliveryTime {
			continue
		}
		results = append(results, restaurant)
	}
	return results, nil
}

// Featured returns up to six restaurants rated 4.5 or better, in fixture
// order.
func (s *RestaurantService) Featured(ctx context.Context) ([]models.Restaurant, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	restaurants, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]models.Restaurant, 0, featuredLimit)
	for _, restaurant := range restaurants {
		if restaurant.Rating >= featuredMinRating {
			featured = append(featured, restaurant)
			if len(featured) == featuredLimit {
				break
			}
		}
	}
	return featured, nil
}

func (s *RestaurantService) ByCuisine(ctx context.Context, cuisine string) ([]models.Restaurant, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	restaurants, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var results []models.Restaurant
	for _, restaurant := range restaurants {
		if slices.Contains(restaurant.Cuisine, cuisine) {
			results = append(results, restaurant)
		}
	}
	return results, nil
}

// load reads through the cache when one is configured. Cache failures fall
// back to the repository.
func (s *RestaurantService) load(ctx context.Context) ([]models.Restaurant, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAll(ctx); err != nil {
			log.Printf("Restaurant cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}
	restaurants, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetAll(ctx, restaurants); err != nil {
			log.Printf("Restaurant cache write failed: %v", err)
		}
	}
	return restaurants, nil
}

func matchesRestaurant(restaurant models.Restaurant, term string) bool {
	if strings.Contains(strings.ToLower(restaurant.Name), term) {
		return true
	}
	for _, cuisine := range restaurant.Cuisine {
		if strings.Contains(strings.ToLower(cuisine), term) {
			return true
		}
	}
	return false
}

func hasAnyCuisine(restaurant models.Restaurant, wanted []string) bool {
	for _, cuisine := range restaurant.Cuisine {
		if slices.Contains(wanted, cuisine) {
			return true
		}
	}
	return false
}
