package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []models.Restaurant) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"restaurants"},
		[]string{"id", "name", "image", "cuisine", "rating", "delivery_time", "min_order", "is_open", "address"},
		pgx.CopyFromSlice(len(restaurants), func(i int) ([]interface{}, error) {
			return []interface{}{
				restaurants[i].ID,
				restaurants[i].Name,
				restaurants[i].Image,
				restaurants[i].Cuisine,
				restaurants[i].Rating,
				restaurants[i].DeliveryTime,
				restaurants[i].MinOrder,
				restaurants[i].IsOpen,
				restaurants[i].Address,
			}, nil
		}),
	)
	return err
}

func (r *RestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	query := `
        SELECT id, name, image, cuisine, rating, delivery_time, min_order, is_open, address
        FROM restaurants
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var restaurant models.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Image,
			&restaurant.Cuisine,
			&restaurant.Rating,
			&restaurant.DeliveryTime,
			&restaurant.MinOrder,
			&restaurant.IsOpen,
			&restaurant.Address,
		)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (models.Restaurant, error) {
	query := `
        SELECT id, name, image, cuisine, rating, delivery_time, min_order, is_open, address
        FROM restaurants
        WHERE id = $1
    `
	var restaurant models.Restaurant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Image,
		&restaurant.Cuisine,
		&restaurant.Rating,
		&restaurant.DeliveryTime,
		&restaurant.MinOrder,
		&restaurant.IsOpen,
		&restaurant.Address,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Restaurant{}, fmt.Errorf("restaurant %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM restaurants`)
	return err
}
