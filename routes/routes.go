package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, cfg.DeliveryFee)
	driverSvc := services.NewDriverService(db, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	restOrderCtrl := controllers.NewRestaurantOrderController(orderSvc)
	driverCtrl := controllers.NewDriverOrderController(driverSvc)
	adminCtrl := controllers.NewAdminController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public browse
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)

	// Customer
	cust := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "customer"))
	{
		cust.GET("/cart", cartCtrl.Get)
		cust.PUT("/cart", cartCtrl.Upsert)
		cust.POST("/order", orderCtrl.Place)
		cust.GET("/orders", orderCtrl.List)
		cust.GET("/order/:id", orderCtrl.Detail)
	}

	// Restaurant
	rest := r.Group("/restaurant", middlewares.AuthMiddleware(cfg.JWTSecret, "restaurant"))
	{
		rest.GET("/orders", restOrderCtrl.List) // ?stage=pending|active|complete
		rest.GET("/order/:id", restOrderCtrl.Detail)
		rest.POST("/order/:id/accept", restOrderCtrl.Accept)
		rest.POST("/order/:id/reject", restOrderCtrl.Reject)
		rest.POST("/order/:id/ready", restOrderCtrl.Ready)
	}

	// Driver
	drv := r.Group("/driver", middlewares.AuthMiddleware(cfg.JWTSecret, "driver"))
	{
		drv.GET("/orders/claimable", driverCtrl.Claimable)
		drv.GET("/orders", driverCtrl.Mine)
		drv.POST("/order/:id/claim", driverCtrl.Claim)
		drv.POST("/order/:id/pickup", driverCtrl.Pickup)
		drv.POST("/order/:id/complete", driverCtrl.Complete)
	}

	// Admin (read-only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", adminCtrl.Orders)
	}
}
