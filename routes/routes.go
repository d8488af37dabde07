package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/configs"
	"github.com/PunitTak2005/restaurant-qr-menu/controllers"
	"github.com/PunitTak2005/restaurant-qr-menu/entity"
	"github.com/PunitTak2005/restaurant-qr-menu/middlewares"
	"github.com/PunitTak2005/restaurant-qr-menu/pkg/resp"
	"github.com/PunitTak2005/restaurant-qr-menu/repository"
	"github.com/PunitTak2005/restaurant-qr-menu/services"
	"github.com/PunitTak2005/restaurant-qr-menu/ws"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. hub may be nil (tests); order mutations then skip the fan-out.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)

	// Services
	var notifier services.Notifier = services.NopNotifier{}
	if hub != nil {
		notifier = hub
	}
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, tableRepo, notifier)
	analyticsSvc := services.NewAnalyticsService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, orderRepo)
	menuCtrl := controllers.NewMenuController(db, menuRepo)
	tableCtrl := controllers.NewTableController(tableRepo)
	adminCtrl := controllers.NewAdminController(analyticsSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}
	staffOrAbove := auth(entity.RoleStaff, entity.RoleAdmin, entity.RoleOwner)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "Digital Dine API is running"})
	})

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/signup", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Menu (public reads, gated writes)
	menu := api.Group("/menu")
	{
		menu.GET("/categories", menuCtrl.ListCategories)
		menu.GET("/categories/:id", menuCtrl.GetCategory)
		menu.GET("/items", menuCtrl.ListItems)
		menu.GET("/items/:id", menuCtrl.GetItem)
		menu.GET("/:slug", menuCtrl.PublicMenu)

		manage := menu.Group("", auth(entity.RoleAdmin, entity.RoleOwner))
		{
			manage.POST("/categories", menuCtrl.CreateCategory)
			manage.PUT("/categories/:id", menuCtrl.UpdateCategory)
			manage.DELETE("/categories/:id", menuCtrl.DeleteCategory)
			manage.POST("/items", menuCtrl.CreateItem)
			manage.PUT("/items/:id", menuCtrl.UpdateItem)
			manage.DELETE("/items/:id", menuCtrl.DeleteItem)
		}
	}

	// Tables
	tables := api.Group("/tables")
	{
		tables.GET("", staffOrAbove, tableCtrl.List)
		tables.GET("/:slug", tableCtrl.BySlug) // public QR landing
		tables.POST("", auth(entity.RoleAdmin), tableCtrl.Create)
		tables.PATCH("/:id", auth(entity.RoleAdmin), tableCtrl.Update)
	}

	// Orders
	orders := api.Group("/orders", auth())
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/my", orderCtrl.ListMine)
		orders.GET("/:id", orderCtrl.Detail)
	}
	staffOrders := api.Group("/orders", staffOrAbove)
	{
		staffOrders.GET("", orderCtrl.List)
		staffOrders.GET("/user/:userId", orderCtrl.ListByUser)
		staffOrders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		staffOrders.PUT("/:id/status", orderCtrl.UpdateStatus) // duplicate verb kept for older clients
	}
	api.DELETE("/orders/:id", auth(entity.RoleAdmin), orderCtrl.Delete)

	// Polling fallback for clients without a live socket
	api.GET("/poll/orders", staffOrAbove, orderCtrl.Poll)

	// Admin
	admin := api.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/analytics", adminCtrl.GetAnalytics)
	}

	// Real-time order events
	if hub != nil {
		r.GET("/ws/orders", hub.HandleWebSocket)
	}

	r.NoRoute(func(c *gin.Context) {
		resp.NotFound(c, "route not found")
	})
}
