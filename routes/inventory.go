package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/sulthanularief148/RoyalTextiles/controllers/product"
	settingscontroller "github.com/sulthanularief148/RoyalTextiles/controllers/settings"
	"github.com/sulthanularief148/RoyalTextiles/middleware"
)

// SetupInventoryRoutes registers the catalog and shop-settings
// endpoints.
func SetupInventoryRoutes(r *gin.Engine, d Deps) {
	products := r.Group("/products")
	products.Use(middleware.ValidateToken(d.Cfg.JWTSecret))
	{
		products.GET("/", productcontroller.GetProducts(d.Store, d.Cache))           // GET /products
		products.GET("/low-stock", productcontroller.GetLowStock(d.Store))           // GET /products/low-stock
		products.GET("/export", productcontroller.ExportProductsToExcel(d.Store))    // GET /products/export
		products.GET("/:id", productcontroller.GetProductByID(d.Store))              // GET /products/:id
		products.POST("/", productcontroller.CreateProduct(d.Store, d.Cache))        // POST /products
		products.POST("/bulk", productcontroller.BulkImportProducts(d.Store, d.Cache)) // POST /products/bulk
		products.PUT("/:id", productcontroller.UpdateProduct(d.Store, d.Cache))      // PUT /products/:id
	}

	settings := r.Group("/settings")
	settings.Use(middleware.ValidateToken(d.Cfg.JWTSecret))
	{
		settings.GET("/", settingscontroller.GetSettings(d.Store)) // GET /settings
		settings.PUT("/", settingscontroller.SaveSettings(d.Store)) // PUT /settings
	}
}
