package models

import "time"

type Order struct {
	ID                string     `json:"id"`
	RestaurantID      string     `json:"restaurant_id"`
	Items             []CartItem `json:"items"` // Snapshot taken at placement, never a live cart reference
	Total             float64    `json:"total"`
	Address           Address    `json:"delivery_address"`
	PaymentMethod     string     `json:"payment_method"` // e.g., "card", "cash", "upi"
	Status            string     `json:"status"`
	PlacedAt          time.Time  `json:"placed_at"`
	EstimatedDelivery time.Time  `json:"estimated_delivery"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
}

// OrderDraft is what checkout hands to the order service. Everything else
// on Order (id, status, timestamps) is assigned at creation.
type OrderDraft struct {
	RestaurantID  string     `json:"restaurant_id"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Address       Address    `json:"delivery_address"`
	PaymentMethod string     `json:"payment_method"`
}

// Clone returns a copy with its own items slice and customization maps.
func (o Order) Clone() Order {
	o.Items = CloneCartItems(o.Items)
	if o.DeliveredAt != nil {
		t := *o.DeliveredAt
		o.DeliveredAt = &t
	}
	return o
}
