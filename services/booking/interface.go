package booking

import (
	"context"

	"danielsbarber/models"
)

// AvailabilityService computes which slots remain bookable for a
// barber on a date.
type AvailabilityService interface {
	AvailableTimes(ctx context.Context, date, barberID string) (*models.Availability, error)
}

// BookingService admits fully-specified booking requests.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Reservation, error)
}

// PaymentService creates the Stripe payment intent that precedes
// every booking.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (clientSecret string, err error)
}
