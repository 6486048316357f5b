// Package fixtures holds the embedded seed data the in-memory store is
// loaded from at startup. The data is read-only after load.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/quickbite/quickbite/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

type Data struct {
	Restaurants []models.Restaurant
	MenuItems   []models.MenuItem
	Addresses   []models.Address
}

func Load() (*Data, error) {
	var data Data
	if err := loadJSON("data/restaurants.json", &data.Restaurants); err != nil {
		return nil, err
	}
	if err := loadJSON("data/menu_items.json", &data.MenuItems); err != nil {
		return nil, err
	}
	if err := loadJSON("data/addresses.json", &data.Addresses); err != nil {
		return nil, err
	}
	return &data, nil
}

func loadJSON(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", name, err)
	}
	return nil
}
