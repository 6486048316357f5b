package models

import "maps"

type CartItem struct {
	ID                  string            `json:"id"`
	MenuItemID          string            `json:"menu_item_id"`
	Name                string            `json:"name"`
	Price               float64           `json:"price"`
	Quantity            int               `json:"quantity"`
	Customizations      map[string]string `json:"customizations,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
}

// SameLine reports whether another item lands on this cart line: identical
// menu item and structurally equal customizations. Quantity, instructions
// and price play no part in line identity.
func (c CartItem) SameLine(other CartItem) bool {
	return c.MenuItemID == other.MenuItemID && maps.Equal(c.Customizations, other.Customizations)
}

// Clone returns a copy with its own customizations map.
func (c CartItem) Clone() CartItem {
	c.Customizations = maps.Clone(c.Customizations)
	return c
}

func CloneCartItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
