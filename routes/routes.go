package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopping-cart/config"
	"shopping-cart/controllers"
	"shopping-cart/middleware"
	"shopping-cart/repositories"
	"shopping-cart/services"
)

func SetupRoutes(router *gin.Engine, logger zerolog.Logger) {
	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	cartRepo := repositories.NewCartRepository()
	orderRepo := repositories.NewOrderRepository()

	mailService, err := services.NewEmailService()
	if err != nil {
		logger.Info().Msg("SMTP not configured, order confirmation emails disabled")
		mailService = nil
	}

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo))
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo, config.RedisClient, logger))
	cartCtrl := controllers.NewCartController(services.NewCartService(cartRepo, productRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, cartRepo, userRepo, mailService, logger))
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo, productRepo, cartRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/register", authCtrl.Register)
	api.POST("/login", authCtrl.Login)
	api.GET("/products", productCtrl.List)
	api.GET("/products/:id", productCtrl.Get)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(userRepo))
	{
		auth.GET("/profile", authCtrl.GetProfile)
		auth.PUT("/profile", authCtrl.UpdateProfile)
		auth.PUT("/profile/password", authCtrl.ChangePassword)

		auth.GET("/cart", cartCtrl.Get)
		auth.GET("/cart/export", cartCtrl.Export)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PUT("/cart/items/:productId", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)

		auth.POST("/orders", orderCtrl.Create)
		auth.GET("/orders/myorders", orderCtrl.ListMine)
	}

	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(userRepo), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)
		admin.POST("/products/:id/image", productCtrl.UploadImage)

		admin.GET("/orders", orderCtrl.ListAll)

		admin.GET("/users", userCtrl.List)
		admin.PUT("/users/:id", userCtrl.Update)
		admin.DELETE("/users/:id", userCtrl.Delete)

		admin.GET("/admin/stats", userCtrl.Stats)
	}

	router.Static("/uploads", config.AppConfig.UploadDir)
}
