package reservationRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"danielsbarber/models"
	"danielsbarber/utils"
)

type cachedReservationRepo struct {
	inner  ReservationRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedReservationRepo wraps a repository with a short-TTL Redis
// cache of per-date reads. Writes invalidate the affected date so a
// fresh read follows every admission. With a nil client the inner
// repository is returned unwrapped.
func NewCachedReservationRepo(inner ReservationRepository, client *redis.Client, ttl time.Duration) ReservationRepository {
	if client == nil {
		return inner
	}
	return &cachedReservationRepo{inner: inner, client: client, ttl: ttl}
}

func cacheKey(date, barberID string) string {
	return fmt.Sprintf("bookings:%s:%s", date, barberID)
}

func (r *cachedReservationRepo) GetByDate(ctx context.Context, date, barberID string) ([]models.Reservation, error) {
	key := cacheKey(date, barberID)
	if data, err := r.client.Get(ctx, key).Result(); err == nil {
		var cached []models.Reservation
		if err := json.Unmarshal([]byte(data), &cached); err == nil {
			return cached, nil
		}
	}

	reservations, err := r.inner.GetByDate(ctx, date, barberID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(reservations); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache booked slots", zap.Error(err))
		}
	}
	return reservations, nil
}

func (r *cachedReservationRepo) Create(ctx context.Context, res models.Reservation) error {
	if err := r.inner.Create(ctx, res); err != nil {
		return err
	}
	// Drop both the barber-filtered and the unfiltered entries.
	keys := []string{cacheKey(res.Date, res.BarberID), cacheKey(res.Date, "")}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate booked-slot cache", zap.Error(err))
	}
	return nil
}
