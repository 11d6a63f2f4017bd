package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public browsing endpoints
func SetupCatalogRoutes(router *gin.RouterGroup, controller Controller) {
	events := router.Group("/events")
	{
		events.GET("", controller.GetAllEvents)        // GET /api/v1/events - Browse events
		events.GET("/:eventId", controller.GetEvent)   // GET /api/v1/events/:eventId - Event detail
	}
}
