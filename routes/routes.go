package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"github.com/ujjwal-9/ordering-agent/agent"
	"github.com/ujjwal-9/ordering-agent/configs"
	"github.com/ujjwal-9/ordering-agent/controllers"
	"github.com/ujjwal-9/ordering-agent/middlewares"
	"github.com/ujjwal-9/ordering-agent/repository"
	"github.com/ujjwal-9/ordering-agent/services"
	"github.com/ujjwal-9/ordering-agent/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	cache := repository.NewCatalogCache(catalogRepo)
	if err := cache.Refresh(); err != nil {
		log.Printf("initial catalog load failed: %v", err)
	}

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(db, cache)
	customerSvc := services.NewCustomerService(db, customerRepo, orderRepo)
	orderSvc := services.NewOrderService(db, orderRepo, customerRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	restCtrl := controllers.NewRestaurantController(catalogRepo)

	// Call socket: one fresh agent per connection, all sharing the
	// catalog cache and the stores.
	llm := openai.NewClient(cfg.OpenAIKey)
	callServer := ws.NewCallServer(func() *agent.OrderAgent {
		return agent.NewOrderAgent(llm, cfg.OpenAIModel, cache, customerSvc, orderSvc)
	})
	r.GET("/ws/call/:call_id", callServer.HandleCall)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Public reads
	r.GET("/restaurant", restCtrl.Info)
	r.GET("/menu", restCtrl.Menu)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/menu", menuCtrl.List)
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/addons", menuCtrl.ListAddOns)
		admin.POST("/addons", menuCtrl.CreateAddOn)
		admin.PATCH("/addons/:id", menuCtrl.UpdateAddOn)
		admin.DELETE("/addons/:id", menuCtrl.DeleteAddOn)

		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/:id", orderCtrl.Detail)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)

		admin.GET("/customers", customerCtrl.List)
		admin.GET("/customers/:phone/orders", customerCtrl.OrderHistory)
	}
}
