package main

import (
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config
)

// @title Restaurant Pizzas API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration = loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db = setupDatabase(configuration)

	// Initialize Gin router
	router := setupRouter()

	// Start the server
	log.Infof("Starting server on %s", configuration.Address())
	checkPanicErr(router.Run(configuration.Address()))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and the configured level,
// falling back to the level implied by APP_ENV when LOG_LEVEL cannot be parsed
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using the %s default", conf.LogLevel, conf.Environment)
		level = config.LevelForEnvironment(conf.Environment)
	}
	log.SetLevel(level)
	database.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase opens the store named by DB_URI, migrates the schema and seeds an empty database
func setupDatabase(conf *config.Config) *gorm.DB {
	conn, err := database.Open(conf.DatabaseURI, conf.DBConnectRetries)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(conn))
	checkPanicErr(database.SeedIfEmpty(conn))
	return conn
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	return routes.SetupRouter(db, log.StandardLogger())
}
