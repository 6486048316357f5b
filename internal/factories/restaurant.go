package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"

	"github.com/quickbite/quickbite/internal/models"
)

type RestaurantFactory struct{}

func (rf *RestaurantFactory) CreateRestaurant() models.Restaurant {
	return models.Restaurant{
		ID:           cuid.New(),
		Name:         fake.Company().Name(),
		Image:        fake.Internet().URL(),
		Cuisine:      generateRandomCuisines(),
		Rating:       fake.Float64(1, 3, 5),
		DeliveryTime: fake.IntBetween(15, 60),
		MinOrder:     float64(fake.IntBetween(2, 10) * 50),
		IsOpen:       rand.Float64() < 0.85,
		Address:      fake.Address().StreetAddress(),
	}
}

func generateRandomCuisines() []string {
	allCuisines := []string{"North Indian", "South Indian", "Chinese", "Italian", "Thai", "Japanese", "Mexican", "American", "Mughlai", "Arabian", "Fast Food", "Healthy", "Pizza", "Salad", "Street Food"}
	cuisineCount := rand.Intn(3) + 1 // 1 to 3 cuisines
	cuisines := make([]string, cuisineCount)
	for i := 0; i < cuisineCount; i++ {
		cuisines[i] = allCuisines[rand.Intn(len(allCuisines))]
	}
	return cuisines
}
