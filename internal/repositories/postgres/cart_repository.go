package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickbite/quickbite/internal/models"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

const cartColumns = `id, menu_item_id, name, price, quantity, customizations, COALESCE(special_instructions, '')`

func (r *CartRepository) GetAll(ctx context.Context) ([]models.CartItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cartColumns+` FROM cart_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCartItems(rows)
}

// UpsertLine merges into an existing line with the same menu item and
// customizations inside one transaction, so concurrent adds cannot produce
// duplicate lines.
func (r *CartRepository) UpsertLine(ctx context.Context, item models.CartItem) ([]models.CartItem, error) {
	customizations, err := marshalCustomizations(item.Customizations)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM cart_items WHERE menu_item_id = $1 AND customizations = $2 FOR UPDATE`,
		item.MenuItemID, customizations,
	).Scan(&existingID)
	switch {
	case err == nil:
		_, err = tx.Exec(ctx,
			`UPDATE cart_items SET quantity = quantity + $2 WHERE id = $1`,
			existingID, item.Quantity,
		)
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx,
			`INSERT INTO cart_items (id, menu_item_id, name, price, quantity, customizations, special_instructions)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.MenuItemID, item.Name, item.Price, item.Quantity, customizations, item.SpecialInstructions,
		)
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetAll(ctx)
}

func (r *CartRepository) SetQuantity(ctx context.Context, itemID string, quantity int) ([]models.CartItem, error) {
	var err error
	if quantity <= 0 {
		_, err = r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	} else {
		_, err = r.pool.Exec(ctx, `UPDATE cart_items SET quantity = $2 WHERE id = $1`, itemID, quantity)
	}
	if err != nil {
		return nil, err
	}
	return r.GetAll(ctx)
}

func (r *CartRepository) RemoveLine(ctx context.Context, itemID string) ([]models.CartItem, error) {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID); err != nil {
		return nil, err
	}
	return r.GetAll(ctx)
}

func (r *CartRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items`)
	return err
}

func scanCartItems(rows pgx.Rows) ([]models.CartItem, error) {
	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		var customizations []byte
		err := rows.Scan(
			&item.ID,
			&item.MenuItemID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&customizations,
			&item.SpecialInstructions,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(customizations, &item.Customizations); err != nil {
			return nil, fmt.Errorf("decoding customizations for cart item %s: %w", item.ID, err)
		}
		if len(item.Customizations) == 0 {
			item.Customizations = nil
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func marshalCustomizations(customizations map[string]string) ([]byte, error) {
	if customizations == nil {
		customizations = map[string]string{}
	}
	return json.Marshal(customizations)
}
