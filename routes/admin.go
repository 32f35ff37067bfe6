package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/auth"
	orderControllers "github.com/shopnest/storefront-api/controllers/order"
	productcontroller "github.com/shopnest/storefront-api/controllers/product"
	userControllers "github.com/shopnest/storefront-api/controllers/user"
	"github.com/shopnest/storefront-api/middleware"
)

// SetupAdminRoutes registers the admin-role endpoints: catalog management,
// order management and user listing.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		adminGroup.GET("/me", auth.AdminMe(deps.Store))
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.Store))

		adminGroup.GET("/orders", orderControllers.GetAllOrders(deps.Store))
		adminGroup.GET("/orders/ws", orderControllers.OrderFeed)
		adminGroup.PATCH("/orders/:orderID", orderControllers.UpdateOrderStatus(deps.Store))
		adminGroup.DELETE("/orders/:orderID", orderControllers.DeleteOrder(deps.Store))

		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(deps.Store))
	}

	// catalog mutations live on the public paths but require the admin role
	productAdmin := r.Group("/products")
	productAdmin.Use(middleware.RequireAdmin)
	{
		productAdmin.POST("", productcontroller.CreateProduct(deps.Store))
		productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.Store))
		productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Store))
	}
}
