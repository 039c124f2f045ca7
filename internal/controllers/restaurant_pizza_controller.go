package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests that price pizzas at restaurants
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant's menu at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant. Price must be between 1 and 30.
// @Description Every rejection, whatever its cause, returns the same body.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req models.CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		requestLogger(ctx).WithError(err).Warn("Invalid restaurant pizza request body")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), models.RestaurantPizza{
		Price:        *req.Price,
		PizzaID:      *req.PizzaID,
		RestaurantID: *req.RestaurantID,
	})
	if err != nil {
		requestLogger(ctx).WithError(err).Warn("Restaurant pizza rejected")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}
	ctx.JSON(http.StatusCreated, created.View())
}
