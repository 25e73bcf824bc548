package productcontroller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/cache"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

// ProductPatch carries a partial update: only the fields present in the
// request body are applied.
type ProductPatch struct {
	Name          *string  `json:"name"`
	Type          *string  `json:"type"`
	Material      *string  `json:"material"`
	Color         *string  `json:"color"`
	Variant       *string  `json:"variant"`
	Unit          *string  `json:"unit"`
	HSNCode       *string  `json:"hsn_code"`
	TaxRate       *float64 `json:"tax_rate"`
	Price         *float64 `json:"price"`
	CostPrice     *float64 `json:"cost_price"`
	Stock         *float64 `json:"stock"`
	MinStockLevel *float64 `json:"min_stock_level"`
	SKU           *string  `json:"sku"`
	Supplier      *string  `json:"supplier"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"image_url"`
}

func UpdateProduct(st store.Store, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var patch ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
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

		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Type != nil {
			ptype, err := mapProductType(*patch.Type)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Type = ptype
		}
		if patch.Material != nil {
			product.Material = *patch.Material
		}
		if patch.Color != nil {
			product.Color = *patch.Color
		}
		if patch.Variant != nil {
			product.Variant = *patch.Variant
		}
		if patch.Unit != nil {
			unit, err := mapUnit(*patch.Unit)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Unit = unit
		}
		if patch.HSNCode != nil {
			product.HSNCode = *patch.HSNCode
		}
		if patch.TaxRate != nil {
			if *patch.TaxRate < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "tax_rate cannot be negative"})
				return
			}
			product.TaxRate = *patch.TaxRate
		}
		if patch.Price != nil {
			if *patch.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
				return
			}
			product.Price = *patch.Price
		}
		if patch.CostPrice != nil {
			product.CostPrice = *patch.CostPrice
		}
		if patch.Stock != nil {
			product.Stock = *patch.Stock
		}
		if patch.MinStockLevel != nil {
			product.MinStockLevel = *patch.MinStockLevel
		}
		if patch.SKU != nil {
			product.SKU = *patch.SKU
		}
		if patch.Supplier != nil {
			product.Supplier = *patch.Supplier
		}
		if patch.Description != nil {
			product.Description = *patch.Description
		}
		if patch.ImageURL != nil {
			product.ImageURL = *patch.ImageURL
		}

		if err := st.Products().Update(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if pc != nil {
			pc.Invalidate(context.Background())
		}
		c.JSON(http.StatusOK, product)
	}
}
