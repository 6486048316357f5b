package services

import (
	"context"
	"strings"
	"time"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

type MenuItemService struct {
	repo  repositories.MenuItemRepository
	delay time.Duration
}

func NewMenuItemService(repo repositories.MenuItemRepository, delay time.Duration) *MenuItemService {
	return &MenuItemService{repo: repo, delay: delay}
}

func (s *MenuItemService) List(ctx context.Context) ([]models.MenuItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}

func (s *MenuItemService) GetByID(ctx context.Context, id string) (models.MenuItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.MenuItem{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *MenuItemService) ByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.GetByRestaurantID(ctx, restaurantID)
}

func (s *MenuItemService) ByCategory(ctx context.Context, restaurantID, category string) ([]models.MenuItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	items, err := s.repo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	var results []models.MenuItem
	for _, item := range items {
		if item.Category == category {
			results = append(results, item)
		}
	}
	return results, nil
}

// Search matches the query case-insensitively against name and description
// across all restaurants.
func (s *MenuItemService) Search(ctx context.Context, query string) ([]models.MenuItem, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(query)
	var results []models.MenuItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			results = append(results, item)
		}
	}
	return results, nil
}
