package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler for registration.
type HandlerBundle struct {
	// Booking endpoints.
	GetAvailableTimes gin.HandlerFunc
	CreateBooking     gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc

	// Catalog endpoints.
	GetBarbers  gin.HandlerFunc
	GetServices gin.HandlerFunc
}
