package booking

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers the booking flow endpoints. The flow is
// public: the stub login gates nothing here, matching the storefront.
func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	bookings := router.Group("/bookings")
	{
		bookings.POST("", controller.StartBooking)                    // POST   /api/v1/bookings - Detail step
		bookings.GET("/:bookingId", controller.GetBooking)            // GET    /api/v1/bookings/:bookingId - Session state
		bookings.POST("/:bookingId/seats", controller.ToggleSeat)     // POST   /api/v1/bookings/:bookingId/seats - SelectSeats step
		bookings.POST("/:bookingId/checkout", controller.Checkout)    // POST   /api/v1/bookings/:bookingId/checkout - Summary step
		bookings.GET("/:bookingId/ticket", controller.GetTicket)      // GET    /api/v1/bookings/:bookingId/ticket - Ticket step
		bookings.DELETE("/:bookingId", controller.AbandonBooking)     // DELETE /api/v1/bookings/:bookingId - Abandon
	}
}
