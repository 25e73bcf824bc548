package productcontroller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/cache"
	"github.com/sulthanularief148/RoyalTextiles/models"
	"github.com/sulthanularief148/RoyalTextiles/store"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Material      string   `json:"material"`
	Color         string   `json:"color"`
	Variant       string   `json:"variant"`
	Unit          string   `json:"unit" binding:"required"`
	HSNCode       string   `json:"hsn_code"`
	TaxRate       *float64 `json:"tax_rate" binding:"required,gte=0"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	CostPrice     float64  `json:"cost_price" binding:"gte=0"`
	Stock         float64  `json:"stock" binding:"gte=0"`
	MinStockLevel float64  `json:"min_stock_level" binding:"gte=0"`
	SKU           string   `json:"sku"`
	Supplier      string   `json:"supplier"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
}

// -------- Helpers --------

func mapProductType(s string) (models.ProductType, error) {
	switch models.ProductType(s) {
	case models.ProductTypeFabric, models.ProductTypeYarn,
		models.ProductTypeAccessory, models.ProductTypeReadyMade:
		return models.ProductType(s), nil
	default:
		return "", errors.New("invalid product type")
	}
}

func mapUnit(s string) (models.UnitOfMeasure, error) {
	switch models.UnitOfMeasure(s) {
	case models.UnitMeters, models.UnitKg, models.UnitPcs,
		models.UnitBox, models.UnitRoll:
		return models.UnitOfMeasure(s), nil
	default:
		return "", errors.New("invalid unit of measure")
	}
}

func (in ProductInput) toModel() (models.Product, error) {
	ptype, err := mapProductType(in.Type)
	if err != nil {
		return models.Product{}, err
	}
	unit, err := mapUnit(in.Unit)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{
		Name:          in.Name,
		Type:          ptype,
		Material:      in.Material,
		Color:         in.Color,
		Variant:       in.Variant,
		Unit:          unit,
		HSNCode:       in.HSNCode,
		TaxRate:       *in.TaxRate,
		Price:         *in.Price,
		CostPrice:     in.CostPrice,
		Stock:         in.Stock,
		MinStockLevel: in.MinStockLevel,
		SKU:           in.SKU,
		Supplier:      in.Supplier,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
	}, nil
}

// -------- Handlers --------

func CreateProduct(st store.Store, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := input.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := st.Products().Add(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		if pc != nil {
			pc.Invalidate(context.Background())
		}
		c.JSON(http.StatusCreated, product)
	}
}

// BulkImportProducts inserts a batch of products in one call.
func BulkImportProducts(st store.Store, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inputs []ProductInput
		if err := c.ShouldBindJSON(&inputs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(inputs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No products to import"})
			return
		}

		products := make([]models.Product, 0, len(inputs))
		for _, in := range inputs {
			p, err := in.toModel()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			products = append(products, p)
		}

		if err := st.Products().BulkAdd(products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import products"})
			return
		}
		if pc != nil {
			pc.Invalidate(context.Background())
		}
		c.JSON(http.StatusCreated, gin.H{"imported": len(products)})
	}
}
