package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
	"github.com/quickbite/quickbite/internal/repositories/memory"
	"github.com/quickbite/quickbite/internal/services"
)

var testRestaurants = []models.Restaurant{
	{ID: "r1", Name: "Spice Garden", Cuisine: []string{"North Indian", "Mughlai"}, Rating: 4.6, DeliveryTime: 30},
	{ID: "r2", Name: "Dragon House", Cuisine: []string{"Chinese", "Thai"}, Rating: 4.2, DeliveryTime: 40},
	{ID: "r3", Name: "Pizza Roma", Cuisine: []string{"Italian", "Pizza"}, Rating: 4.7, DeliveryTime: 25},
	{ID: "r4", Name: "Burger Barn", Cuisine: []string{"American"}, Rating: 3.9, DeliveryTime: 35},
}

func newRestaurantService(t *testing.T, cache services.RestaurantCache) *services.RestaurantService {
	t.Helper()
	repo := memory.NewRestaurantRepository()
	require.NoError(t, repo.BulkCreate(context.Background(), testRestaurants))
	return services.NewRestaurantService(repo, cache, 0)
}

func TestRestaurantService_Search(t *testing.T) {
	svc := newRestaurantService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		filters  models.RestaurantFilters
		expected []string
	}{
		{
			name:     "empty_query_returns_everything",
			expected: []string{"r1", "r2", "r3", "r4"},
		},
		{
			name:     "name_match_is_case_insensitive",
			query:    "SPICE",
			expected: []string{"r1"},
		},
		{
			name:     "cuisine_substring_matches",
			query:    "pizz",
			expected: []string{"r3"},
		},
		{
			name:     "min_rating_filter",
			filters:  models.RestaurantFilters{MinRating: 4.5},
			expected: []string{"r1", "r3"},
		},
		{
			name:     "max_delivery_time_filter",
			filters:  models.RestaurantFilters{MaxDeliveryTime: 30},
			expected: []string{"r1", "r3"},
		},
		{
			name:     "cuisine_set_membership",
			filters:  models.RestaurantFilters{Cuisine: []string{"Thai", "American"}},
			expected: []string{"r2", "r4"},
		},
		{
			name:     "query_and_filters_combine",
			query:    "a",
			filters:  models.RestaurantFilters{MinRating: 4.5, MaxDeliveryTime: 30},
			expected: []string{"r1", "r3"},
		},
		{
			name:     "no_match_is_empty_not_error",
			query:    "sushi",
			expected: []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			results, err := svc.Search(ctx, testCase.query, testCase.filters)
			require.NoError(t, err)

			ids := make([]string, 0, len(results))
			for _, restaurant := range results {
				ids = append(ids, restaurant.ID)
			}
			assert.Equal(t, testCase.expected, ids)
		})
	}
}

func TestRestaurantService_Featured(t *testing.T) {
	svc := newRestaurantService(t, nil)

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)

	require.Len(t, featured, 2)
	for _, restaurant := range featured {
		assert.GreaterOrEqual(t, restaurant.Rating, 4.5)
	}
}

func TestRestaurantService_ByCuisine(t *testing.T) {
	svc := newRestaurantService(t, nil)

	results, err := svc.ByCuisine(context.Background(), "Mughlai")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
}

func TestRestaurantService_GetByIDNotFound(t *testing.T) {
	svc := newRestaurantService(t, nil)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

type fakeRestaurantCache struct {
	stored []models.Restaurant
	hits   int
	writes int
}

func (f *fakeRestaurantCache) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	if f.stored != nil {
		f.hits++
	}
	return f.stored, nil
}

func (f *fakeRestaurantCache) SetAll(ctx context.Context, restaurants []models.Restaurant) error {
	f.stored = restaurants
	f.writes++
	return nil
}

func TestRestaurantService_ListReadsThroughCache(t *testing.T) {
	fake := &fakeRestaurantCache{}
	svc := newRestaurantService(t, fake)
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.writes)
	assert.Equal(t, 0, fake.hits)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.writes)
	assert.Equal(t, 1, fake.hits)
	assert.Equal(t, first, second)
}
