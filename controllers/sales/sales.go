package salescontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/store"
)

func GetSales(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sales, err := st.Sales().List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// GetStats returns the dashboard numbers: today's revenue and invoice
// count, the all-time sale count, and how many products sit at or
// below their reorder level.
func GetStats(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sales, err := st.Sales().List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}

		now := time.Now()
		var todayRevenue float64
		var todayInvoices int
		for _, sale := range sales {
			y, m, d := sale.Date.Date()
			ny, nm, nd := now.Date()
			if y == ny && m == nm && d == nd {
				todayRevenue += sale.Total
				todayInvoices++
			}
		}

		products, err := st.Products().List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		lowStock := 0
		for _, p := range products {
			if p.Stock <= p.MinStockLevel {
				lowStock++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"today_revenue":  todayRevenue,
			"today_invoices": todayInvoices,
			"total_sales":    len(sales),
			"low_stock":      lowStock,
		})
	}
}
