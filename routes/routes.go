package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/configs"
	"github.com/IlyaM70/RedMango-API/controllers"
	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/middlewares"
	"github.com/IlyaM70/RedMango-API/repository"
	"github.com/IlyaM70/RedMango-API/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.SugaredLogger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, log)
	menuSvc := services.NewMenuService(menuRepo, cfg.UploadDir, log)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, log)
	paymentSvc := services.NewPaymentService(
		cartRepo,
		services.NewStripeIntentClient(cfg.StripeSecretKey),
		cfg.PaymentCurrency,
		log,
	)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, log)
	cartCtrl := controllers.NewCartController(cartSvc, log)
	orderCtrl := controllers.NewOrderController(orderSvc, log)
	paymentCtrl := controllers.NewPaymentController(paymentSvc, log)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Catalog: reads are public, mutation is admin-only
	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/:id", menuCtrl.Get)

	adminMenu := r.Group("/menu-items", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		adminMenu.POST("", menuCtrl.Create)
		adminMenu.PUT("/:id", menuCtrl.Update)
		adminMenu.DELETE("/:id", menuCtrl.Delete)
	}

	// Cart, keyed by userId query param
	r.GET("/cart", cartCtrl.Get)
	r.POST("/cart", cartCtrl.ApplyDelta)

	// Orders
	r.GET("/orders", middlewares.AuthMiddleware(cfg.JWTSecret), orderCtrl.List)
	r.GET("/orders/:id", orderCtrl.Get)
	r.POST("/orders", orderCtrl.Create)
	r.PUT("/orders/:id", orderCtrl.Update)

	// Payment intent for the current cart
	r.POST("/payment", paymentCtrl.Create)
}
