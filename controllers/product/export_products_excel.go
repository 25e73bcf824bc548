package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/sulthanularief148/RoyalTextiles/store"
)

func ExportProductsToExcel(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products().List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Type", "Material", "Color", "Variant", "Unit",
			"HSNCode", "TaxRate", "Price", "CostPrice", "Stock",
			"MinStockLevel", "SKU", "Supplier", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(string(p.Type))
			row.AddCell().SetValue(p.Material)
			row.AddCell().SetValue(p.Color)
			row.AddCell().SetValue(p.Variant)
			row.AddCell().SetValue(string(p.Unit))
			row.AddCell().SetValue(p.HSNCode)
			row.AddCell().SetValue(p.TaxRate)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.CostPrice)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.MinStockLevel)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Supplier)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
