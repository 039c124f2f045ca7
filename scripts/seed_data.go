package main

import (
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	// Parse command line flags
	uri := flag.String("db", config.GetEnvWithDefault("DB_URI", config.DefaultDatabaseURI), "Database URI to seed")
	reset := flag.Bool("reset", false, "Delete all restaurants, pizzas and prices before seeding")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})

	db, err := database.Open(*uri, 1)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if err := seed(db, *reset); err != nil {
		log.Fatal(err)
	}

	printSummary(db)
}

// seed clears the tables when asked to and loads the initial data set
func seed(db *gorm.DB, reset bool) error {
	if !reset {
		return database.SeedIfEmpty(db)
	}

	log.Warn("Resetting database contents")
	if err := database.Reset(db); err != nil {
		return err
	}
	return database.Seed(db)
}

func printSummary(db *gorm.DB) {
	var restaurants, pizzas, prices int64
	db.Table("restaurants").Count(&restaurants)
	db.Table("pizzas").Count(&pizzas)
	db.Table("restaurant_pizzas").Count(&prices)

	fmt.Printf("✓ Database seeded\n")
	fmt.Printf("Restaurants: %d\n", restaurants)
	fmt.Printf("Pizzas: %d\n", pizzas)
	fmt.Printf("Restaurant pizzas: %d\n", prices)
}
