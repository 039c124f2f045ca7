package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrRestaurantPizzaRejected wraps every reason a restaurant pizza could not be stored
	ErrRestaurantPizzaRejected = errors.New("restaurant pizza rejected")
)
