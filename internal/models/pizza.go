package models

// Pizza represents a pizza with its properties
type Pizza struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Ingredients      string            `json:"ingredients"`
	RestaurantPizzas []RestaurantPizza `json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
