package assistantcontroller

import (
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/sulthanularief148/RoyalTextiles/assistant"
)

// maxImageBytes caps inline image uploads sent to the model.
const maxImageBytes = 8 << 20

type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []assistant.ChatTurn `json:"history"`
}

// chatBusy rejects a new chat message while one is still being
// answered. One till, one conversation at a time.
var chatBusy sync.Mutex

func Chat(client *assistant.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not configured"})
			return
		}

		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !chatBusy.TryLock() {
			c.JSON(http.StatusConflict, gin.H{"error": "The assistant is still answering the previous message"})
			return
		}
		defer chatBusy.Unlock()

		reply, err := client.Chat(req.Message, req.History)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

func AnalyzeImage(client *assistant.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Assistant is not configured"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		if fileHeader.Size > maxImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is too large"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
			return
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = http.DetectContentType(image)
		}

		result, err := client.AnalyzeImage(image, mimeType)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": result})
	}
}
