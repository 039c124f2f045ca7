package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-restaurant-pizzas/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName is reported by the health check
const ServiceName = "gin-restaurant-pizzas"

// SetupRouter wires services, controllers and middleware into a gin engine
func SetupRouter(db *gorm.DB, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORS(),
	)

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	setupRoutes(router, restaurantController, pizzaController, restaurantPizzaController)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(
	router *gin.Engine,
	restaurantController controllers.RestaurantController,
	pizzaController controllers.PizzaController,
	restaurantPizzaController controllers.RestaurantPizzaController,
) {
	// Operational endpoints
	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
		restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
	}

	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
	})
}
