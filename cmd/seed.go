package cmd

import (
	"context"
	"log"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/quickbite/quickbite/internal/factories"
	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate fake restaurants, menus and addresses into Postgres",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if cfg.PostgresDSN == "" {
			log.Fatal("seed requires postgres_dsn to be configured")
		}
		if err := runSeed(context.Background(), cfg); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context, cfg *models.Config) error {
	rand.Seed(int64(cfg.Seed))

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	restaurantCount := cfg.SeedRestaurants
	if restaurantCount <= 0 {
		restaurantCount = 100
	}
	itemsPerPlace := cfg.SeedMenuItemsPerPlace
	if itemsPerPlace <= 0 {
		itemsPerPlace = 10
	}
	addressCount := cfg.SeedAddresses
	if addressCount <= 0 {
		addressCount = 5
	}

	restaurantFactory := &factories.RestaurantFactory{}
	menuItemFactory := &factories.MenuItemFactory{}
	addressFactory := &factories.AddressFactory{}

	bar := progressbar.Default(int64(restaurantCount), "seeding restaurants")
	restaurants := make([]models.Restaurant, 0, restaurantCount)
	menuItems := make([]models.MenuItem, 0, restaurantCount*itemsPerPlace)
	for i := 0; i < restaurantCount; i++ {
		restaurant := restaurantFactory.CreateRestaurant()
		restaurants = append(restaurants, restaurant)
		for j := 0; j < itemsPerPlace; j++ {
			menuItems = append(menuItems, menuItemFactory.CreateMenuItem(restaurant))
		}
		bar.Add(1)
	}

	if err := postgres.NewRestaurantRepository(pool).BulkCreate(ctx, restaurants); err != nil {
		return err
	}
	if err := postgres.NewMenuItemRepository(pool).BulkCreate(ctx, menuItems); err != nil {
		return err
	}

	addresses := postgres.NewAddressRepository(pool)
	for i := 0; i < addressCount; i++ {
		if err := addresses.Create(ctx, addressFactory.CreateAddress()); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d restaurants, %d menu items and %d addresses",
		len(restaurants), len(menuItems), addressCount)
	return nil
}
