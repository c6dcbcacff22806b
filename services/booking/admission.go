package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	reservationRepo "danielsbarber/database/repository/reservation"
	"danielsbarber/models"
	"danielsbarber/utils"
)

// DefaultBookingService writes confirmed reservations. Callers must
// only invoke it after the payment intent reported a succeeded charge.
type DefaultBookingService struct {
	Repo   reservationRepo.ReservationRepository
	Logger *zap.Logger
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Reservation, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	token, err := utils.RandomToken(5)
	if err != nil {
		return nil, NewBackendError("failed to generate customer id", err)
	}
	customerID := fmt.Sprintf("customer-%d-%s", time.Now().UnixMilli(), token)

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	res := models.Reservation{
		Date:            req.Date,
		SortKey:         reservationRepo.SortKeyValue(req.Time, req.BarberID, customerID),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Notes:           req.Notes,
		BarberName:      req.BarberName,
		BarberID:        req.BarberID,
		Time:            req.Time,
		PaymentIntentID: req.PaymentIntentID,
		PaymentStatus:   paymentStatus,
		Status:          "confirmed",
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, NewSlotTakenError(fmt.Sprintf("the %s slot with barber %s on %s is already booked", req.Time, req.BarberID, req.Date))
		}
		return nil, NewBackendError("failed to create booking", err)
	}

	s.Logger.Info("booking confirmed",
		zap.String("date", res.Date),
		zap.String("time", res.Time),
		zap.String("barberId", res.BarberID),
		zap.String("paymentIntentId", res.PaymentIntentID),
	)
	return &res, nil
}

func validateBookingRequest(req models.BookingRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"date", req.Date},
		{"time", req.Time},
		{"barberId", req.BarberID},
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"paymentIntentId", req.PaymentIntentID},
	}
	for _, field := range required {
		if field.value == "" {
			return NewValidationError(fmt.Sprintf("missing required field: %s", field.name))
		}
	}
	return nil
}
