package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/assistant"
	"github.com/sulthanularief148/RoyalTextiles/cache"
	"github.com/sulthanularief148/RoyalTextiles/config"
	"github.com/sulthanularief148/RoyalTextiles/pos"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

// Deps carries the explicitly constructed collaborators every route
// group needs. Nothing here is a package-level singleton.
type Deps struct {
	Cfg       config.Config
	Store     store.Store
	Cart      *pos.Cart
	Checkout  *pos.CheckoutService
	Cache     *cache.ProductCache // nil when Redis is not configured
	Assistant *assistant.Client   // nil when no API key is set
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// Everything else sits behind the session token
	SetupInventoryRoutes(r, d)
	SetupCustomerRoutes(r, d)
	SetupPOSRoutes(r, d)
	SetupSalesRoutes(r, d)
	SetupAssistantRoutes(r, d)
}
