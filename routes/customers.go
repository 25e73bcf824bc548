package routes

import (
	"github.com/gin-gonic/gin"

	customercontroller "github.com/sulthanularief148/RoyalTextiles/controllers/customer"
	"github.com/sulthanularief148/RoyalTextiles/middleware"
)

func SetupCustomerRoutes(r *gin.Engine, d Deps) {
	customers := r.Group("/customers")
	customers.Use(middleware.ValidateToken(d.Cfg.JWTSecret))
	{
		customers.GET("/", customercontroller.GetCustomers(d.Store))       // GET /customers
		customers.GET("/:id", customercontroller.GetCustomerByID(d.Store)) // GET /customers/:id
		customers.POST("/", customercontroller.CreateCustomer(d.Store))    // POST /customers
		customers.PUT("/:id", customercontroller.UpdateCustomer(d.Store))  // PUT /customers/:id
	}
}
