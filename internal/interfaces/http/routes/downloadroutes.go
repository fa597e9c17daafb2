package routes

import (
	"github.com/gin-gonic/gin"

	"luma/internal/interfaces/http/handlers"
)

// DownloadRouteConfig holds dependencies for download routes.
type DownloadRouteConfig struct {
	DownloadHandler *handlers.DownloadHandler
}

// SetupDownloadRoutes configures the offline-download routes. They are
// unauthenticated: the store is device-local and holds only the device
// owner's data.
func SetupDownloadRoutes(api *gin.RouterGroup, cfg *DownloadRouteConfig) {
	downloads := api.Group("/downloads")
	{
		downloads.GET("", cfg.DownloadHandler.ListDownloads)
		downloads.GET("/:id", cfg.DownloadHandler.GetDownload)
		downloads.POST("", cfg.DownloadHandler.SaveDownload)
		downloads.DELETE("/:id", cfg.DownloadHandler.DeleteDownload)
	}
}
