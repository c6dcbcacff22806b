package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"danielsbarber/models"
	"danielsbarber/services/booking"
	"danielsbarber/services/catalog"
)

type BookingHandler struct {
	AvailabilitySvc booking.AvailabilityService
	BookingSvc      booking.BookingService
	Catalog         catalog.CatalogService
	Logger          *zap.Logger
}

func NewBookingHandler(availabilitySvc booking.AvailabilityService, bookingSvc booking.BookingService, catalogSvc catalog.CatalogService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		AvailabilitySvc: availabilitySvc,
		BookingSvc:      bookingSvc,
		Catalog:         catalogSvc,
		Logger:          logger,
	}
}

// GetAvailableTimes handles GET /api/bookings/available-times.
func (h *BookingHandler) GetAvailableTimes(c *gin.Context) {
	date := c.Query("date")
	barberID := c.Query("barberId")

	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date parameter is required"})
		return
	}

	availability, err := h.AvailabilitySvc.AvailableTimes(c.Request.Context(), date, barberID)
	if err != nil {
		h.Logger.Error("GetAvailableTimes: failed to fetch booked slots",
			zap.String("date", date),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch available time slots",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"bookedTimeSlots": availability.BookedTimeSlots,
		"availableTimes":  availability.AvailableTimes,
	})
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
		return
	}

	// The form only carries the barber id; resolve the display name
	// from the roster when it was not supplied.
	if req.BarberName == "" {
		if barber, ok := h.Catalog.BarberByID(req.BarberID); ok {
			req.BarberName = barber.Name
		}
	}

	reservation, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) {
			switch bookingErr.Code {
			case booking.CodeValidation:
				c.JSON(http.StatusBadRequest, gin.H{"error": bookingErr.Message})
				return
			case booking.CodeSlotTaken:
				c.JSON(http.StatusConflict, gin.H{"error": bookingErr.Message})
				return
			}
		}
		h.Logger.Error("CreateBooking: failed to persist booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create booking",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": reservation,
	})
}
