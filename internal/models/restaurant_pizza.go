package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Price bounds accepted for a RestaurantPizza
const (
	MinPrice = 1
	MaxPrice = 30
)

var validate = validator.New()

// RestaurantPizza links a pizza to a restaurant at a given price
type RestaurantPizza struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Price        float64    `gorm:"not null" json:"price" validate:"gte=1,lte=30"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint       `gorm:"not null;index" json:"pizza_id"`
	Restaurant   Restaurant `json:"-" validate:"-"`
	Pizza        Pizza      `json:"-" validate:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// BeforeSave rejects a price outside [MinPrice, MaxPrice] before anything reaches the store
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	if err := validate.Struct(rp); err != nil {
		return fmt.Errorf("invalid restaurant pizza: %w", err)
	}
	return nil
}
