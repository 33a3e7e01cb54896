package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dermassist/backend/internal/transport/middleware"
)

func InitRoutes(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hello from DermAssist Backend!",
		})
	})

	router.GET("/api/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hello from the backend API!",
		})
	})

	router.GET("/test", handler.TestDatabase)
	router.POST("/analyze", handler.AnalyzeImage)

	return router
}
