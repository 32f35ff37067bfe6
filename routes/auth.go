package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/auth"
	productcontroller "github.com/shopnest/storefront-api/controllers/product"
)

// SetupAuthRoutes registers the public endpoints: credential flows for both
// principals and catalog browsing.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	r.POST("/register", auth.Register(deps.Store))
	r.POST("/login", auth.Login(deps.Store))
	r.POST("/logout", auth.Logout())

	r.POST("/admin/register", auth.AdminRegister(deps.Store))
	r.POST("/admin/login", auth.AdminLogin(deps.Store))
	r.POST("/admin/logout", auth.AdminLogout())

	// browsing needs no session
	r.GET("/products", productcontroller.GetProducts(deps.Store))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.Store))
}
