package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantPizzaBeforeSave(t *testing.T) {
	testCases := []struct {
		name    string
		price   float64
		wantErr bool
	}{
		{name: "lower bound is accepted", price: MinPrice},
		{name: "upper bound is accepted", price: MaxPrice},
		{name: "value inside range is accepted", price: 5},
		{name: "zero is rejected", price: 0, wantErr: true},
		{name: "negative is rejected", price: -3, wantErr: true},
		{name: "above upper bound is rejected", price: 31, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rp := &RestaurantPizza{Price: tt.price, RestaurantID: 1, PizzaID: 1}
			err := rp.BeforeSave(nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestaurantDetailOmitsBackReference(t *testing.T) {
	restaurant := Restaurant{
		ID:      1,
		Name:    "Karen's Pizza Shack",
		Address: "address1",
		RestaurantPizzas: []RestaurantPizza{
			{ID: 7, Price: 5, RestaurantID: 1, PizzaID: 2, Pizza: Pizza{ID: 2, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}},
		},
	}

	body, err := json.Marshal(restaurant.Detail())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Len(t, decoded, 4)
	items := decoded["restaurant_pizzas"].([]interface{})
	require.Len(t, items, 1)

	item := items[0].(map[string]interface{})
	assert.NotContains(t, item, "restaurant")
	assert.Equal(t, float64(5), item["price"])
	assert.Equal(t, float64(2), item["pizza_id"])
	assert.Equal(t, float64(1), item["restaurant_id"])

	pizza := item["pizza"].(map[string]interface{})
	assert.Len(t, pizza, 3)
	assert.Equal(t, "Emma", pizza["name"])
}

func TestRestaurantDetailWithoutPizzasIsEmptyList(t *testing.T) {
	body, err := json.Marshal(Restaurant{ID: 3, Name: "Empty", Address: "nowhere"}.Detail())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Empty","address":"nowhere","restaurant_pizzas":[]}`, string(body))
}

func TestSummariesOfEmptySlicesEncodeAsEmptyArrays(t *testing.T) {
	restaurants, err := json.Marshal(ToRestaurantSummaries(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(restaurants))

	pizzas, err := json.Marshal(ToPizzaSummaries(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(pizzas))
}

func TestRestaurantPizzaView(t *testing.T) {
	rp := RestaurantPizza{
		ID:           1,
		Price:        5,
		RestaurantID: 1,
		PizzaID:      1,
		Restaurant:   Restaurant{ID: 1, Name: "Sottocasa NYC", Address: "298 Atlantic Ave"},
		Pizza:        Pizza{ID: 1, Name: "Geri", Ingredients: "Dough, Tomato Sauce"},
	}

	body, err := json.Marshal(rp.View())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "price": 5, "pizza_id": 1, "restaurant_id": 1,
		"pizza": {"id": 1, "name": "Geri", "ingredients": "Dough, Tomato Sauce"},
		"restaurant": {"id": 1, "name": "Sottocasa NYC", "address": "298 Atlantic Ave"}
	}`, string(body))
}
