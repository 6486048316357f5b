package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"

	"github.com/quickbite/quickbite/internal/models"
)

type AddressFactory struct{}

func (af *AddressFactory) CreateAddress() models.Address {
	types := []string{models.AddressTypeHome, models.AddressTypeOffice, models.AddressTypeOther}
	return models.Address{
		ID:      cuid.New(),
		Type:    types[rand.Intn(len(types))],
		Line1:   fake.Address().StreetAddress(),
		Line2:   fake.Address().SecondaryAddress(),
		City:    fake.Address().City(),
		Pincode: fake.Address().PostCode(),
	}
}
