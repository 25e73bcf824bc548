package routes

import (
	"github.com/gin-gonic/gin"

	salescontroller "github.com/sulthanularief148/RoyalTextiles/controllers/sales"
	"github.com/sulthanularief148/RoyalTextiles/middleware"
)

func SetupSalesRoutes(r *gin.Engine, d Deps) {
	sales := r.Group("/sales")
	sales.Use(middleware.ValidateToken(d.Cfg.JWTSecret))
	{
		sales.GET("/", salescontroller.GetSales(d.Store))      // GET /sales
		sales.GET("/stats", salescontroller.GetStats(d.Store)) // GET /sales/stats
	}

	// The live feed does its own handshake; browsers cannot set an
	// Authorization header on a websocket upgrade.
	r.GET("/ws/sales", salescontroller.SalesFeedHandler)
}
