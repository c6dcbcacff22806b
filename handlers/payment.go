package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"danielsbarber/models"
	"danielsbarber/services/booking"
)

type PaymentHandler struct {
	PaymentSvc booking.PaymentService
	Logger     *zap.Logger
}

func NewPaymentHandler(paymentSvc booking.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: paymentSvc, Logger: logger}
}

// CreatePaymentIntent handles POST /api/create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking data", "details": err.Error()})
		return
	}

	clientSecret, err := h.PaymentSvc.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) && bookingErr.Code == booking.CodeValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": bookingErr.Message})
			return
		}
		h.Logger.Error("CreatePaymentIntent: processor call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
