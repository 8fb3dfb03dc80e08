package routes

import (
	"github.com/ImmrAD/the-digital-diner/configs"
	"github.com/ImmrAD/the-digital-diner/controllers"
	"github.com/ImmrAD/the-digital-diner/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth  *controllers.AuthController
	Menu  *controllers.MenuController
	Cart  *controllers.CartController
	Order *controllers.OrderController
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, ctrl Controllers) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	// Menu (catalog reads are public; writes need a login)
	api.GET("/menu", ctrl.Menu.List)
	api.GET("/menu/:category", ctrl.Menu.ListByCategory)
	api.POST("/menu", middlewares.AuthMiddleware(cfg.JWTSecret), ctrl.Menu.Create)
	api.DELETE("/menu/:id", middlewares.AuthMiddleware(cfg.JWTSecret), ctrl.Menu.Deactivate)

	// Accounts
	api.POST("/register", ctrl.Auth.Register)
	api.POST("/login", ctrl.Auth.Login)

	// Cart
	cart := api.Group("/cart/:userId")
	{
		cart.GET("", ctrl.Cart.Get)
		cart.POST("/add", ctrl.Cart.Add)
		cart.POST("/update", ctrl.Cart.Update)
		cart.POST("/remove", ctrl.Cart.Remove)
		cart.POST("/clear", ctrl.Cart.Clear)
	}

	// Orders
	api.POST("/orders", ctrl.Order.Create)
	api.POST("/orders/from-cart/:userId", ctrl.Order.CreateFromCart)
	api.GET("/orders/phone/:phone", ctrl.Order.ListByPhone)
}
