package configs

import (
	"log"

	"menuqr/entity"
	"menuqr/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemo loads the demo vendor and menus. Used for the in-memory demo
// store; harmless to rerun since it skips when the vendor exists.
func SeedDemo(vendors repository.VendorRepository, menus repository.MenuRepository) error {
	const demoEmail = "demo@example.com"

	if count, err := vendors.CountByEmail(demoEmail); err != nil {
		return err
	} else if count > 0 {
		log.Println("demo vendor already exists:", demoEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	vendor := &entity.Vendor{
		Email:          demoEmail,
		Password:       string(hash),
		RestaurantName: "Demo Restaurant",
		PhotoURL:       "https://ui-avatars.com/api/?name=Demo+Restaurant&background=f97316&color=fff",
		Provider:       "password",
	}
	if err := vendors.Create(vendor); err != nil {
		return err
	}

	mainMenu := &entity.Menu{
		PublicID:       uuid.NewString(),
		Name:           "Main Menu",
		Description:    "Our regular menu with all offerings",
		WhatsappNumber: "15551234567",
		VendorID:       vendor.ID,
		Categories: []entity.Category{
			{
				Name: "Appetizers",
				Items: []entity.MenuItem{
					{Name: "Garlic Bread", Description: "Toasted bread with garlic butter and herbs", Price: 5.99},
					{Name: "Mozzarella Sticks", Description: "Breaded and fried mozzarella with marinara sauce", Price: 7.99},
					{Name: "Bruschetta", Description: "Toasted bread topped with tomatoes, basil, and olive oil", Price: 6.99},
				},
			},
			{
				Name: "Main Courses",
				Items: []entity.MenuItem{
					{Name: "Spaghetti Bolognese", Description: "Classic pasta with rich meat sauce", Price: 14.99},
					{Name: "Grilled Salmon", Description: "Fresh salmon with lemon butter sauce and seasonal vegetables", Price: 18.99},
					{Name: "Chicken Parmesan", Description: "Breaded chicken topped with marinara and mozzarella, served with pasta", Price: 16.99},
				},
			},
			{
				Name: "Desserts",
				Items: []entity.MenuItem{
					{Name: "Tiramisu", Description: "Classic Italian dessert with coffee-soaked ladyfingers", Price: 7.99},
					{Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with a molten center", Price: 8.99},
				},
			},
		},
	}
	if err := menus.Create(mainMenu); err != nil {
		return err
	}

	log.Println("demo data seeded")
	return nil
}
