// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a migrated in-memory SQLite database private to the calling test
func New(t testing.TB) *gorm.DB {
	t.Helper()

	uri := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(uri, 1)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateRestaurant inserts a restaurant and returns it with its id
func CreateRestaurant(t testing.TB, db *gorm.DB, name, address string) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{Name: name, Address: address}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

// CreatePizza inserts a pizza and returns it with its id
func CreatePizza(t testing.TB, db *gorm.DB, name, ingredients string) models.Pizza {
	t.Helper()
	pizza := models.Pizza{Name: name, Ingredients: ingredients}
	require.NoError(t, db.Create(&pizza).Error)
	return pizza
}

// CreateRestaurantPizza links a pizza to a restaurant at the given price
func CreateRestaurantPizza(t testing.TB, db *gorm.DB, restaurantID, pizzaID uint, price float64) models.RestaurantPizza {
	t.Helper()
	rp := models.RestaurantPizza{RestaurantID: restaurantID, PizzaID: pizzaID, Price: price}
	require.NoError(t, db.Create(&rp).Error)
	return rp
}
