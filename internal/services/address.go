package services

import (
	"context"
	"time"

	"github.com/lucsky/cuid"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

type AddressService struct {
	repo  repositories.AddressRepository
	delay time.Duration
}

func NewAddressService(repo repositories.AddressRepository, delay time.Duration) *AddressService {
	return &AddressService{repo: repo, delay: delay}
}

func (s *AddressService) List(ctx context.Context) ([]models.Address, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}

func (s *AddressService) GetByID(ctx context.Context, id string) (models.Address, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Address{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *AddressService) Create(ctx context.Context, address models.Address) (models.Address, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Address{}, err
	}
	address.ID = cuid.New()
	if err := s.repo.Create(ctx, address); err != nil {
		return models.Address{}, err
	}
	return address, nil
}

func (s *AddressService) Update(ctx context.Context, id string, fields models.AddressUpdate) (models.Address, error) {
	if err := wait(ctx, s.delay); err != nil {
		return models.Address{}, err
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *AddressService) Delete(ctx context.Context, id string) error {
	if err := wait(ctx, s.delay); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetDefault marks the matching address as the default and clears the flag
// everywhere else. The id is not checked for existence: passing an unknown
// id ends with no default address at all, which callers rely on staying
// consistent with the repository contract.
func (s *AddressService) SetDefault(ctx context.Context, id string) ([]models.Address, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo.SetDefault(ctx, id)
}
