package routes

import (
	"github.com/gin-gonic/gin"

	poscontroller "github.com/sulthanularief148/RoyalTextiles/controllers/pos"
	"github.com/sulthanularief148/RoyalTextiles/middleware"
)

// SetupPOSRoutes registers the till: cart mutations, checkout and
// receipt views.
func SetupPOSRoutes(r *gin.Engine, d Deps) {
	posGroup := r.Group("/pos")
	posGroup.Use(middleware.ValidateToken(d.Cfg.JWTSecret))
	{
		// ──────────────── Cart ────────────────
		cartGroup := posGroup.Group("/cart")
		{
			cartGroup.GET("/", poscontroller.GetCart(d.Cart))                        // GET /pos/cart
			cartGroup.POST("/items", poscontroller.AddItem(d.Store, d.Cart))         // POST /pos/cart/items
			cartGroup.POST("/quantity", poscontroller.UpdateQuantity(d.Cart))        // POST /pos/cart/quantity
			cartGroup.DELETE("/items/:product_id", poscontroller.RemoveItem(d.Cart)) // DELETE /pos/cart/items/:product_id
			cartGroup.DELETE("/", poscontroller.ClearCart(d.Cart))                   // DELETE /pos/cart

			cartGroup.POST("/customer", poscontroller.SelectCustomer(d.Store, d.Cart)) // POST /pos/cart/customer
			cartGroup.DELETE("/customer", poscontroller.DeselectCustomer(d.Cart))      // DELETE /pos/cart/customer
			cartGroup.POST("/redeem", poscontroller.SetRedeemPoints(d.Cart))           // POST /pos/cart/redeem
		}

		// ──────────────── Checkout & Receipt ────────────────
		posGroup.POST("/checkout", poscontroller.Checkout(d.Checkout, d.Cart, d.Cache)) // POST /pos/checkout
		posGroup.GET("/sales/:id/receipt", poscontroller.GetReceipt(d.Store))           // GET /pos/sales/:id/receipt
		posGroup.GET("/sales/:id/whatsapp", poscontroller.GetWhatsAppLink(d.Store))     // GET /pos/sales/:id/whatsapp
	}
}
