package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables,
// including the cascading foreign key from restaurant_pizzas to restaurants
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// IsEmpty reports whether neither restaurants nor pizzas hold any rows
func IsEmpty(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, err
	}
	return restaurants == 0 && pizzas == 0, nil
}

// SeedIfEmpty seeds the database only when it holds no restaurants and no pizzas
func SeedIfEmpty(db *gorm.DB) error {
	empty, err := IsEmpty(db)
	if err != nil {
		return fmt.Errorf("check database contents: %w", err)
	}
	if !empty {
		log.Info("Database already seeded with initial data")
		return nil
	}
	log.Info("Database is empty, seeding initial data")
	return Seed(db)
}

// Seed inserts the initial restaurants, pizzas and their prices in one transaction
func Seed(db *gorm.DB) error {
	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		restaurantPizzas := make([]models.RestaurantPizza, 0, len(restaurants))
		for i := range restaurants {
			restaurantPizzas = append(restaurantPizzas, models.RestaurantPizza{
				Price:        1,
				RestaurantID: restaurants[i].ID,
				PizzaID:      pizzas[i].ID,
			})
		}
		return tx.Create(&restaurantPizzas).Error
	})
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	log.Info("Database seeded successfully")
	return nil
}

// Reset deletes every row from the three tables, associations first
func Reset(db *gorm.DB) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Pizza{}, &models.Restaurant{}} {
			if err := tx.Delete(model).Error; err != nil {
				return fmt.Errorf("reset database: %w", err)
			}
		}
		return nil
	})
}
