package repositories

import (
	"context"
	"errors"

	"github.com/quickbite/quickbite/internal/models"
)

// ErrNotFound is returned when an entity id does not exist in its collection.
var ErrNotFound = errors.New("not found")

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []models.Restaurant) error
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id string) (models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, menuItems []models.MenuItem) error
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (models.MenuItem, error)
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type AddressRepository interface {
	GetAll(ctx context.Context) ([]models.Address, error)
	GetByID(ctx context.Context, id string) (models.Address, error)
	Create(ctx context.Context, address models.Address) error
	Update(ctx context.Context, id string, fields models.AddressUpdate) (models.Address, error)
	Delete(ctx context.Context, id string) error
	// SetDefault flips is_default on in a single atomic operation: true for
	// the matching id, false for every other record. An unknown id leaves
	// every address non-default.
	SetDefault(ctx context.Context, id string) ([]models.Address, error)
}

type CartRepository interface {
	GetAll(ctx context.Context) ([]models.CartItem, error)
	// UpsertLine merges the item into an existing line with the same menu
	// item and customizations (summing quantities) or appends it as a new
	// line. The merge is atomic; no partial state is observable.
	UpsertLine(ctx context.Context, item models.CartItem) ([]models.CartItem, error)
	// SetQuantity sets a line's quantity, removing it when quantity <= 0.
	// An unknown id is a silent no-op.
	SetQuantity(ctx context.Context, itemID string, quantity int) ([]models.CartItem, error)
	RemoveLine(ctx context.Context, itemID string) ([]models.CartItem, error)
	Clear(ctx context.Context) error
}

type OrderRepository interface {
	// GetAll returns orders newest-first.
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	// Prepend inserts the order at the head of the collection.
	Prepend(ctx context.Context, order models.Order) error
	SetStatus(ctx context.Context, id string, status string) (models.Order, error)
	Count(ctx context.Context) (int, error)
}
