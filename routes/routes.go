package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/cart"
	"github.com/shopnest/storefront-api/checkout"
	"github.com/shopnest/storefront-api/store"
)

// Deps carries the wired store and engines into route registration.
type Deps struct {
	Store    *store.Store
	Cart     *cart.Engine
	Checkout *checkout.Engine
}

// SetupRoutes is the single entry point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)
	SetupUserRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
