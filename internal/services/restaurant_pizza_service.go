package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService stores the prices restaurants charge for pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and inserts rp, returning it with Pizza and Restaurant loaded.
	// Any failure rolls the transaction back and wraps ErrRestaurantPizzaRejected.
	CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// foreign keys are checked by the store, not upserted from the zero-valued structs
		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			return err
		}
		return tx.Preload("Pizza").Preload("Restaurant").First(&created, rp.ID).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, fmt.Errorf("%w: %w", ErrRestaurantPizzaRejected, err)
	}
	return created, nil
}
