package routes

import (
	"github.com/gin-gonic/gin"

	"vidglobe/internal/api/v1/handlers"
	"vidglobe/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	VideoService  services.VideoService
	ChatService   services.ChatService
	ExportService services.ExportService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	videoHandler := handlers.NewVideoHandler(container.VideoService)
	videos := router.Group("/videos")
	{
		videos.POST("", videoHandler.Upload)
		videos.GET("", videoHandler.List)

		if container.ExportService != nil {
			exportHandler := handlers.NewExportHandler(container.ExportService)
			videos.GET("/export", exportHandler.Export)
		}

		videos.GET("/:id", videoHandler.Get)
		videos.POST("/:id/process", videoHandler.Process)
	}

	if container.ChatService != nil {
		chatHandler := handlers.NewChatHandler(container.ChatService)
		router.POST("/chat", chatHandler.Ask)
	}
}
