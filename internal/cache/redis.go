package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickbite/quickbite/internal/models"
)

const restaurantsKey = "restaurants:all"

// RestaurantCache fronts the restaurant collection with Redis. The fixture
// set is read-only, so a flat full-collection key with a TTL is enough.
type RestaurantCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRestaurantCache(client *redis.Client, ttl time.Duration) *RestaurantCache {
	return &RestaurantCache{Client: client, TTL: ttl}
}

// GetAll returns the cached collection, or (nil, nil) on a miss.
func (c *RestaurantCache) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	raw, err := c.Client.Get(ctx, restaurantsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *RestaurantCache) SetAll(ctx context.Context, restaurants []models.Restaurant) error {
	raw, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, restaurantsKey, raw, c.TTL).Err()
}
