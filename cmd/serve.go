package cmd

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	httpapi "github.com/quickbite/quickbite/internal/api/http"
	"github.com/quickbite/quickbite/internal/cache"
	"github.com/quickbite/quickbite/internal/events"
	"github.com/quickbite/quickbite/internal/fixtures"
	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
	"github.com/quickbite/quickbite/internal/repositories/memory"
	"github.com/quickbite/quickbite/internal/repositories/postgres"
	"github.com/quickbite/quickbite/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quickbite HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		runServe(mustLoadConfig())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type stores struct {
	restaurants repositories.RestaurantRepository
	menuItems   repositories.MenuItemRepository
	addresses   repositories.AddressRepository
	cart        repositories.CartRepository
	orders      repositories.OrderRepository
}

func runServe(cfg *models.Config) {
	ctx := context.Background()

	st, err := buildStores(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialise entity store: %v", err)
	}

	var publisher services.EventPublisher
	if cfg.KafkaEnabled {
		producer, err := events.NewSaramaProducer(cfg)
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %v", err)
		}
		defer producer.Close()
		publisher = producer
	}

	var restaurantCache services.RestaurantCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		restaurantCache = cache.NewRestaurantCache(client, cfg.RedisCacheTTL)
		log.Printf("Restaurant cache enabled via Redis at %s", cfg.RedisAddr)
	}

	handler := &httpapi.Handler{
		Restaurants:     services.NewRestaurantService(st.restaurants, restaurantCache, cfg.MockLatency),
		MenuItems:       services.NewMenuItemService(st.menuItems, cfg.MockLatency),
		Cart:            services.NewCartService(st.cart, services.NewSignal(), publisher, cfg.MockLatency),
		Addresses:       services.NewAddressService(st.addresses, cfg.MockLatency),
		Orders:          services.NewOrderService(st.orders, publisher, cfg.MockLatency),
		TrackingBaseURL: cfg.TrackingBaseURL,
	}

	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler, cfg.CORSAllowedOrigins))
}

func buildStores(ctx context.Context, cfg *models.Config) (*stores, error) {
	switch cfg.Storage {
	case "postgres":
		return buildPostgresStores(ctx, cfg)
	default:
		return buildMemoryStores(ctx)
	}
}

func buildMemoryStores(ctx context.Context) (*stores, error) {
	data, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	restaurants := memory.NewRestaurantRepository()
	if err := restaurants.BulkCreate(ctx, data.Restaurants); err != nil {
		return nil, err
	}
	menuItems := memory.NewMenuItemRepository()
	if err := menuItems.BulkCreate(ctx, data.MenuItems); err != nil {
		return nil, err
	}

	log.Printf("Loaded %d restaurants, %d menu items and %d addresses from fixtures",
		len(data.Restaurants), len(data.MenuItems), len(data.Addresses))

	return &stores{
		restaurants: restaurants,
		menuItems:   menuItems,
		addresses:   memory.NewAddressRepository(data.Addresses),
		cart:        memory.NewCartRepository(),
		orders:      memory.NewOrderRepository(nil),
	}, nil
}

func buildPostgresStores(ctx context.Context, cfg *models.Config) (*stores, error) {
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		return nil, err
	}

	restaurants := postgres.NewRestaurantRepository(pool)

	// Seed the read-only fixtures on first run against an empty database.
	count, err := restaurants.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		data, err := fixtures.Load()
		if err != nil {
			return nil, err
		}
		if err := restaurants.BulkCreate(ctx, data.Restaurants); err != nil {
			return nil, err
		}
		if err := postgres.NewMenuItemRepository(pool).BulkCreate(ctx, data.MenuItems); err != nil {
			return nil, err
		}
		addresses := postgres.NewAddressRepository(pool)
		for _, address := range data.Addresses {
			if err := addresses.Create(ctx, address); err != nil {
				return nil, err
			}
		}
		log.Printf("Seeded empty database with %d restaurants and %d menu items",
			len(data.Restaurants), len(data.MenuItems))
	}

	return &stores{
		restaurants: restaurants,
		menuItems:   postgres.NewMenuItemRepository(pool),
		addresses:   postgres.NewAddressRepository(pool),
		cart:        postgres.NewCartRepository(pool),
		orders:      postgres.NewOrderRepository(pool),
	}, nil
}
