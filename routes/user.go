package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/shopnest/storefront-api/controllers/cart"
	orderControllers "github.com/shopnest/storefront-api/controllers/order"
	userControllers "github.com/shopnest/storefront-api/controllers/user"
	"github.com/shopnest/storefront-api/middleware"
)

// SetupUserRoutes registers the session-guarded customer endpoints: profile,
// cart, checkout and order history.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.RequireUser)
	{
		userGroup.GET("/me", userControllers.GetMe(deps.Store, deps.Cart))
		userGroup.PUT("/profile", userControllers.UpdateProfile(deps.Store))

		userGroup.GET("/cart", cartControllers.GetCart(deps.Cart))
		userGroup.POST("/cart", cartControllers.AddToCart(deps.Cart))
		userGroup.POST("/cart/:productID/increase", cartControllers.IncreaseQuantity(deps.Cart))
		userGroup.POST("/cart/:productID/decrease", cartControllers.DecreaseQuantity(deps.Cart))
		userGroup.PUT("/cart/:productID", cartControllers.SetQuantity(deps.Cart))
		userGroup.DELETE("/cart/:productID", cartControllers.RemoveFromCart(deps.Cart))

		userGroup.POST("/checkout", orderControllers.Checkout(deps.Checkout))
		userGroup.GET("/orders", orderControllers.GetMyOrders(deps.Store))
	}
}
