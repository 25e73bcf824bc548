package productcontroller

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/cache"
	"github.com/sulthanularief148/RoyalTextiles/models"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

// GetProducts lists the catalog. The store only does full scans;
// search/type narrowing happens here. The unfiltered list is served
// from the Redis cache when one is configured.
func GetProducts(st store.Store, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		ptype := c.Query("type")
		unfiltered := search == "" && ptype == ""

		if pc != nil && unfiltered {
			if products, err := pc.GetProducts(c.Request.Context()); err == nil {
				c.JSON(http.StatusOK, products)
				return
			}
		}

		products, err := st.Products().List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if pc != nil && unfiltered {
			// Fill the cache off the request path.
			go pc.SetProducts(context.Background(), products)
		}

		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if ptype != "" && string(p.Type) != ptype {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.SKU), search) {
				continue
			}
			filtered = append(filtered, p)
		}
		c.JSON(http.StatusOK, filtered)
	}
}

func GetProductByID(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		product, err := st.Products().Get(uint(id))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetLowStock lists products at or below their reorder threshold.
func GetLowStock(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products().List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		low := make([]models.Product, 0)
		for _, p := range products {
			if p.Stock <= p.MinStockLevel {
				low = append(low, p)
			}
		}
		c.JSON(http.StatusOK, low)
	}
}
