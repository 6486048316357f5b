package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"

	"github.com/quickbite/quickbite/internal/models"
)

type MenuItemFactory struct{}

func (mf *MenuItemFactory) CreateMenuItem(restaurant models.Restaurant) models.MenuItem {
	return models.MenuItem{
		ID:           cuid.New(),
		RestaurantID: restaurant.ID,
		Name:         generateRandomMenuItem(restaurant.Cuisine),
		Description:  fake.Lorem().Sentence(10),
		Price:        float64(fake.IntBetween(4, 50) * 10),
		Category:     generateRandomCategory(),
		IsVeg:        fake.Bool(),
		Image:        fake.Internet().URL(),
	}
}

func generateRandomMenuItem(cuisines []string) string {
	items := map[string][]string{
		"Pizza":        {"Margherita", "Pepperoni", "Hawaiian", "Veggie Supreme"},
		"North Indian": {"Butter Chicken", "Paneer Tikka Masala", "Dal Makhani", "Garlic Naan"},
		"South Indian": {"Masala Dosa", "Idli Sambar", "Uttapam", "Filter Coffee"},
		"Italian":      {"Margherita Pizza", "Spaghetti Carbonara", "Lasagna", "Tiramisu"},
		"American":     {"Cheeseburger", "Hot Dog", "BBQ Ribs", "Apple Pie"},
		"Japanese":     {"Sushi Roll", "Ramen", "Tempura", "Miso Soup"},
		"Mexican":      {"Tacos", "Burrito", "Guacamole", "Quesadilla"},
		"Chinese":      {"Kung Pao Chicken", "Fried Rice", "Dumplings", "Mapo Tofu"},
		"Thai":         {"Pad Thai", "Green Curry", "Tom Yum Soup", "Mango Sticky Rice"},
		"Mughlai":      {"Chicken Biryani", "Seekh Kebab", "Shahi Paneer", "Sheermal"},
		"Healthy":      {"Quinoa Bowl", "Greek Salad", "Smoothie Bowl", "Grilled Chicken Salad"},
	}
	cuisine := cuisines[rand.Intn(len(cuisines))]
	if items, ok := items[cuisine]; ok {
		return items[rand.Intn(len(items))]
	}
	return "Special of the Day"
}

func generateRandomCategory() string {
	categories := []string{"Starters", "Main Course", "Breads", "Desserts", "Beverages"}
	return categories[rand.Intn(len(categories))]
}
