package models

type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Cuisine      []string `json:"cuisine"`
	Rating       float64  `json:"rating"`
	DeliveryTime int      `json:"delivery_time"` // Estimated delivery time in minutes
	MinOrder     float64  `json:"min_order"`
	IsOpen       bool     `json:"is_open"`
	Address      string   `json:"address"`
}

// RestaurantFilters narrows a restaurant search. Zero values mean no constraint.
type RestaurantFilters struct {
	Cuisine         []string `json:"cuisine"`
	MinRating       float64  `json:"min_rating"`
	MaxDeliveryTime int      `json:"max_delivery_time"`
}
