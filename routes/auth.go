package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/auth"
)

func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(d.Cfg)) // POST /auth/login
	}
}
