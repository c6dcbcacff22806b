package reservationRepo

import (
	"context"
	"errors"

	"danielsbarber/models"
)

// ErrSlotTaken is returned when a reservation write loses the
// conditional check against an existing booking for the same
// (date, time, barber).
var ErrSlotTaken = errors.New("slot already booked")

// ReservationRepository provides access to persisted bookings.
type ReservationRepository interface {
	// GetByDate returns every reservation on the given date,
	// filtered by barberID when it is non-empty.
	GetByDate(ctx context.Context, date, barberID string) ([]models.Reservation, error)
	// Create durably writes one reservation. Fails with ErrSlotTaken
	// if the (date, time, barber) slot is already occupied.
	Create(ctx context.Context, res models.Reservation) error
}
