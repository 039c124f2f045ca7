package models

// Restaurant represents a restaurant and the pizzas it offers.
// Its RestaurantPizzas are removed by the database when the restaurant is deleted.
type Restaurant struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
