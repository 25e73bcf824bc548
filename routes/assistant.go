package routes

import (
	"github.com/gin-gonic/gin"

	assistantcontroller "github.com/sulthanularief148/RoyalTextiles/controllers/assistant"
	"github.com/sulthanularief148/RoyalTextiles/middleware"
)

func SetupAssistantRoutes(r *gin.Engine, d Deps) {
	ai := r.Group("/assistant")
	ai.Use(middleware.ValidateToken(d.Cfg.JWTSecret))
	{
		ai.POST("/chat", assistantcontroller.Chat(d.Assistant))                  // POST /assistant/chat
		ai.POST("/analyze-image", assistantcontroller.AnalyzeImage(d.Assistant)) // POST /assistant/analyze-image
	}
}
