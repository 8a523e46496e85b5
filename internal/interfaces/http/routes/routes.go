// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/pricing"
	"github.com/gokhanazp/riversideburger-sub000/internal/interfaces/http/handlers"
	"github.com/gokhanazp/riversideburger-sub000/internal/interfaces/http/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, pricingService *pricing.Service) {
	setupAuthRoutes(rg, db, cfg)
	setupMenuRoutes(rg, db, cfg)
	setupCartRoutes(rg, db, redisClient, cfg)
	setupLoyaltyRoutes(rg, db, redisClient, cfg)
	setupStoreRoutes(rg, db, cfg)
	setupOrderRoutes(rg, db, redisClient, cfg)
	setupPricingRoutes(rg, cfg, pricingService)
	setupAdminRoutes(rg, db, redisClient, cfg, pricingService)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	{
		users.GET("/me", authHandler.GetProfile)
		users.PUT("/me", authHandler.UpdateProfile)
	}
}

// setupMenuRoutes sets up public menu catalog routes
func setupMenuRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	menuHandler := handlers.NewMenuHandler(db, cfg)

	menu := rg.Group("/menu")
	{
		menu.GET("", menuHandler.GetMenu)
		menu.GET("/items/:id", menuHandler.GetItem)
		menu.GET("/items/:id/customizations", menuHandler.GetCustomizations)
	}
}

// setupCartRoutes sets up cart routes, all authenticated
func setupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.POST("/price", cartHandler.PriceConfiguration)
		cart.PUT("/items/:id", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// setupLoyaltyRoutes sets up loyalty points routes
func setupLoyaltyRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	loyaltyHandler := handlers.NewLoyaltyHandler(db, redisClient, cfg)

	loyalty := rg.Group("/loyalty")
	loyalty.Use(middleware.AuthMiddleware(cfg))
	{
		loyalty.GET("/balance", loyaltyHandler.GetBalance)
		loyalty.GET("/transactions", loyaltyHandler.GetTransactions)
		loyalty.POST("/quote", loyaltyHandler.QuoteRedemption)
	}
}

// setupStoreRoutes sets up public store availability routes
func setupStoreRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	storeHandler := handlers.NewStoreHandler(db, cfg)

	store := rg.Group("/store")
	{
		store.GET("/status", storeHandler.GetStatus)
	}
}

// setupOrderRoutes sets up order routes, all authenticated
func setupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.GetReceipt)
	}
}

// setupPricingRoutes sets up public currency routes
func setupPricingRoutes(rg *gin.RouterGroup, cfg *config.Config, pricingService *pricing.Service) {
	pricingHandler := handlers.NewPricingHandler(pricingService, cfg)

	prices := rg.Group("/pricing")
	{
		prices.GET("/currencies", pricingHandler.GetCurrencies)
		prices.GET("/convert", pricingHandler.Convert)
	}
}

// setupAdminRoutes sets up admin routes behind auth plus admin checks
func setupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, pricingService *pricing.Service) {
	menuHandler := handlers.NewMenuHandler(db, cfg)
	storeHandler := handlers.NewStoreHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)
	pricingHandler := handlers.NewPricingHandler(pricingService, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		menu := admin.Group("/menu")
		{
			menu.POST("/items", menuHandler.CreateItem)
			menu.PUT("/items/:id", menuHandler.UpdateItem)
			menu.POST("/option-categories", menuHandler.CreateOptionCategory)
			menu.POST("/options", menuHandler.CreateOption)
			menu.POST("/items/:id/option-categories/:categoryId", menuHandler.AttachOptionCategory)
		}

		store := admin.Group("/store")
		{
			store.PUT("/settings", storeHandler.UpdateSettings)
			store.PUT("/schedule/:weekday", storeHandler.UpdateDaySchedule)
		}

		orders := admin.Group("/orders")
		{
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
		}

		prices := admin.Group("/pricing")
		{
			prices.PUT("/rates/:code", pricingHandler.UpdateRate)
		}
	}
}
