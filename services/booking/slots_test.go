package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"danielsbarber/services/booking"
)

func TestGenerateTimeSlots_DefaultConfig(t *testing.T) {
	slots := booking.GenerateTimeSlots(booking.DefaultSlotConfig())

	assert.Len(t, slots, 21)
	assert.Equal(t, "9:00", slots[0])
	assert.Equal(t, "19:00", slots[len(slots)-1])
}

func TestGenerateTimeSlots_NoDuplicatesStrictlyOrdered(t *testing.T) {
	slots := booking.GenerateTimeSlots(booking.DefaultSlotConfig())

	seen := make(map[string]bool, len(slots))
	for _, slot := range slots {
		assert.False(t, seen[slot], "duplicate slot label %q", slot)
		seen[slot] = true
	}

	// Labels alternate :00 and :30 walking forward through the day.
	expected := []string{"9:00", "9:30", "10:00", "10:30", "11:00"}
	assert.Equal(t, expected, slots[:5])
}

func TestGenerateTimeSlots_CustomConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  booking.SlotConfig
		want []string
	}{
		{
			name: "hourly increments",
			cfg:  booking.SlotConfig{OpenHour: 10, CloseHour: 13, IncrementMinutes: 60},
			want: []string{"10:00", "11:00", "12:00", "13:00"},
		},
		{
			name: "partial final increment dropped",
			cfg:  booking.SlotConfig{OpenHour: 9, CloseHour: 10, IncrementMinutes: 45},
			want: []string{"9:00", "9:45"},
		},
		{
			name: "single slot day",
			cfg:  booking.SlotConfig{OpenHour: 12, CloseHour: 12, IncrementMinutes: 30},
			want: []string{"12:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.GenerateTimeSlots(tt.cfg))
		})
	}
}

func TestGenerateTimeSlots_InvalidConfig(t *testing.T) {
	assert.Nil(t, booking.GenerateTimeSlots(booking.SlotConfig{OpenHour: 9, CloseHour: 19, IncrementMinutes: 0}))
	assert.Nil(t, booking.GenerateTimeSlots(booking.SlotConfig{OpenHour: 19, CloseHour: 9, IncrementMinutes: 30}))
}
