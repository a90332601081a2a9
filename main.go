package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"shopping-cart/config"
	_ "shopping-cart/docs"
	"shopping-cart/middleware"
	"shopping-cart/routes"
)

// @title Shopping Cart API
// @version 1.0
// @description REST API for a small e-commerce demo: catalog, cart, checkout, orders and admin dashboard.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if config.AppConfig.AppEnv != "production" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, logger)

	port := ":" + config.AppConfig.Port
	logger.Info().
		Str("port", config.AppConfig.Port).
		Str("env", config.AppConfig.AppEnv).
		Msg("server starting")

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
