package seating

import (
	"github.com/gin-gonic/gin"
)

// SetupSeatingRoutes registers the layout endpoint under the events group
func SetupSeatingRoutes(router *gin.RouterGroup, controller Controller) {
	// GET /api/v1/events/:eventId/seating - Seat map for an event
	router.GET("/events/:eventId/seating", controller.GetSeatingLayout)
}
