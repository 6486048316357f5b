package services

import (
	"context"

	"github.com/quickbite/quickbite/internal/models"
)

// EventPublisher fans service events out to an external broker. Services
// treat a nil publisher as "events disabled" and never fail a call because
// publishing failed.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// RestaurantCache fronts the restaurant collection with a read-through
// cache. A miss returns (nil, nil).
type RestaurantCache interface {
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	SetAll(ctx context.Context, restaurants []models.Restaurant) error
}
