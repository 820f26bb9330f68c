package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the booking route. Extra handlers (rate
// limiting) run before the controller.
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, middleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, middleware...), controller.BookEvent)
	rg.POST("/book-event", handlers...) // POST /api/book-event
}

// Route definitions for reference:
//
// POST   /api/book-event
// Request body: { "eventType", "date", "time", "guests", "venue", "menu",
//                 "name", "email", "phone", "notes"? }
//
// 200 { "message": "Booking confirmed and emails sent!" }
// 400 { "message": "Missing required booking details" }
// 400 { "message": "Invalid booking payload", "error": "..." }
// 429 { "message": "Too many booking requests", "error": "rate limit exceeded" }
// 500 { "message": "Error sending emails", "error": "..." }
