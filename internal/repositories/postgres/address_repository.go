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

type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

const addressColumns = `id, type, line1, COALESCE(line2, ''), COALESCE(city, ''), COALESCE(pincode, ''), COALESCE(landmark, ''), is_default`

func (r *AddressRepository) GetAll(ctx context.Context) ([]models.Address, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []models.Address
	for rows.Next() {
		var address models.Address
		if err := scanAddress(rows, &address); err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, rows.Err()
}

func (r *AddressRepository) GetByID(ctx context.Context, id string) (models.Address, error) {
	var address models.Address
	row := r.pool.QueryRow(ctx, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id)
	err := scanAddress(row, &address)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Address{}, fmt.Errorf("address %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return models.Address{}, err
	}
	return address, nil
}

func (r *AddressRepository) Create(ctx context.Context, address models.Address) error {
	query := `
        INSERT INTO addresses (id, type, line1, line2, city, pincode, landmark, is_default)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.pool.Exec(ctx, query,
		address.ID,
		address.Type,
		address.Line1,
		address.Line2,
		address.City,
		address.Pincode,
		address.Landmark,
		address.IsDefault,
	)
	return err
}

func (r *AddressRepository) Update(ctx context.Context, id string, fields models.AddressUpdate) (models.Address, error) {
	query := `
        UPDATE addresses SET
            type = COALESCE($2, type),
            line1 = COALESCE($3, line1),
            line2 = COALESCE($4, line2),
            city = COALESCE($5, city),
            pincode = COALESCE($6, pincode),
            landmark = COALESCE($7, landmark),
            is_default = COALESCE($8, is_default)
        WHERE id = $1
        RETURNING ` + addressColumns
	var address models.Address
	row := r.pool.QueryRow(ctx, query, id,
		fields.Type,
		fields.Line1,
		fields.Line2,
		fields.City,
		fields.Pincode,
		fields.Landmark,
		fields.IsDefault,
	)
	err := scanAddress(row, &address)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Address{}, fmt.Errorf("address %s: %w", id, repositories.ErrNotFound)
	}
	if err != nil {
		return models.Address{}, err
	}
	return address, nil
}

func (r *AddressRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("address %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}

// SetDefault flips every row in a single statement so the single-default
// invariant holds without a transaction. An unknown id leaves every row
// non-default.
func (r *AddressRepository) SetDefault(ctx context.Context, id string) ([]models.Address, error) {
	if _, err := r.pool.Exec(ctx, `UPDATE addresses SET is_default = (id = $1)`, id); err != nil {
		return nil, err
	}
	return r.GetAll(ctx)
}

func scanAddress(row pgx.Row, address *models.Address) error {
	return row.Scan(
		&address.ID,
		&address.Type,
		&address.Line1,
		&address.Line2,
		&address.City,
		&address.Pincode,
		&address.Landmark,
		&address.IsDefault,
	)
}
