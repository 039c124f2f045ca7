package models

// The view structs below list exactly the fields each endpoint emits.

// RestaurantSummary is a restaurant as it appears in GET /restaurants
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is a pizza as it appears in GET /pizzas and nested views
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaItem is an association nested under its restaurant.
// It carries no restaurant sub-object.
type RestaurantPizzaItem struct {
	ID           uint         `json:"id"`
	Price        float64      `json:"price"`
	PizzaID      uint         `json:"pizza_id"`
	RestaurantID uint         `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantDetail is a restaurant with its associations, for GET /restaurants/{id}
type RestaurantDetail struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaItem `json:"restaurant_pizzas"`
}

// RestaurantPizzaView is a newly created association with both ends expanded
type RestaurantPizzaView struct {
	ID           uint              `json:"id"`
	Price        float64           `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        *float64 `json:"price" binding:"required"`
	PizzaID      *uint    `json:"pizza_id" binding:"required"`
	RestaurantID *uint    `json:"restaurant_id" binding:"required"`
}

func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// Detail expects RestaurantPizzas and their Pizza to be loaded
func (r Restaurant) Detail() RestaurantDetail {
	items := make([]RestaurantPizzaItem, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		items = append(items, RestaurantPizzaItem{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
			Pizza:        rp.Pizza.Summary(),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: items,
	}
}

// View expects Pizza and Restaurant to be loaded
func (rp RestaurantPizza) View() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.Summary(),
		Restaurant:   rp.Restaurant.Summary(),
	}
}

// ToRestaurantSummaries maps restaurants to their list view
func ToRestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.Summary())
	}
	return out
}

// ToPizzaSummaries maps pizzas to their list view
func ToPizzaSummaries(pizzas []Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, p.Summary())
	}
	return out
}
