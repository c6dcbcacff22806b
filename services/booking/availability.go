package booking

import (
	"context"

	"go.uber.org/zap"

	reservationRepo "danielsbarber/database/repository/reservation"
	"danielsbarber/models"
)

// DefaultAvailabilityService subtracts existing reservations from the
// generated slot grid.
type DefaultAvailabilityService struct {
	Repo   reservationRepo.ReservationRepository
	Slots  SlotConfig
	Logger *zap.Logger

	// FailOpen keeps booking possible when the reservation read
	// fails: the full slot grid is returned and the occasional
	// double-booking attempt is left to admission to reject.
	FailOpen bool
}

func (s *DefaultAvailabilityService) AvailableTimes(ctx context.Context, date, barberID string) (*models.Availability, error) {
	if date == "" {
		return nil, NewValidationError("date parameter is required")
	}

	all := GenerateTimeSlots(s.Slots)

	reservations, err := s.Repo.GetByDate(ctx, date, barberID)
	if err != nil {
		if !s.FailOpen {
			return nil, NewBackendError("failed to fetch booked time slots", err)
		}
		s.Logger.Warn("availability read failed, failing open",
			zap.String("date", date),
			zap.String("barberId", barberID),
			zap.Error(err),
		)
		return &models.Availability{
			BookedTimeSlots: []models.BookedSlot{},
			AvailableTimes:  all,
		}, nil
	}

	booked := make([]models.BookedSlot, 0, len(reservations))
	taken := make(map[string]struct{}, len(reservations))
	for _, res := range reservations {
		booked = append(booked, models.BookedSlot{
			Time:     res.Time,
			BarberID: res.BarberID,
			Date:     res.Date,
		})
		taken[res.Time] = struct{}{}
	}

	// Preserve generator order; an empty result is a valid answer.
	available := make([]string, 0, len(all))
	for _, slot := range all {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return &models.Availability{
		BookedTimeSlots: booked,
		AvailableTimes:  available,
	}, nil
}
