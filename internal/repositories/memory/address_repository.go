package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

type AddressRepository struct {
	mu        sync.Mutex
	addresses []models.Address
}

func NewAddressRepository(seed []models.Address) *AddressRepository {
	return &AddressRepository{addresses: slices.Clone(seed)}
}

func (r *AddressRepository) GetAll(ctx context.Context) ([]models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.addresses), nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id string) (models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, address := range r.addresses {
		if address.ID == id {
			return address, nil
		}
	}
	return models.Address{}, fmt.Errorf("address %s: %w", id, repositories.ErrNotFound)
}

func (r *AddressRepository) Create(ctx context.Context, address models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses = append(r.addresses, address)
	return nil
}

func (r *AddressRepository) Update(ctx context.Context, id string, fields models.AddressUpdate) (models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.addresses {
		if r.addresses[i].ID != id {
			continue
		}
		applyAddressUpdate(&r.addresses[i], fields)
		return r.addresses[i], nil
	}
	return models.Address{}, fmt.Errorf("address %s: %w", id, repositories.ErrNotFound)
}

func (r *AddressRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.addresses {
		if r.addresses[i].ID == id {
			r.addresses = slices.Delete(r.addresses, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("address %s: %w", id, repositories.ErrNotFound)
}

// SetDefault flips every flag in one pass under the lock, so callers never
// observe two defaults. An unknown id leaves all addresses non-default.
func (r *AddressRepository) SetDefault(ctx context.Context, id string) ([]models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.addresses {
		r.addresses[i].IsDefault = r.addresses[i].ID == id
	}
	return slices.Clone(r.addresses), nil
}

func applyAddressUpdate(address *models.Address, fields models.AddressUpdate) {
	if fields.Type != nil {
		address.Type = *fields.Type
	}
	if fields.Line1 != nil {
		address.Line1 = *fields.Line1
	}
	if fields.Line2 != nil {
		address.Line2 = *fields.Line2
	}
	if fields.City != nil {
		address.City = *fields.City
	}
	if fields.Pincode != nil {
		address.Pincode = *fields.Pincode
	}
	if fields.Landmark != nil {
		address.Landmark = *fields.Landmark
	}
	if fields.IsDefault != nil {
		address.IsDefault = *fields.IsDefault
	}
}
