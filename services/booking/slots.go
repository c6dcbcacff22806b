package booking

import "fmt"

// SlotConfig describes the bookable business day: opening and closing
// hours plus the slot granularity in minutes.
type SlotConfig struct {
	OpenHour         int
	CloseHour        int
	IncrementMinutes int
}

// DefaultSlotConfig is the shop's standard day: 09:00-19:00 in
// 30-minute increments, 21 slots.
func DefaultSlotConfig() SlotConfig {
	return SlotConfig{OpenHour: 9, CloseHour: 19, IncrementMinutes: 30}
}

// GenerateTimeSlots produces the ordered slot labels for one business
// day. The opening boundary is included, and any partial increment
// past the closing boundary is dropped. Labels use the display format
// of the booking page: unpadded hour, zero-padded minutes ("9:00").
func GenerateTimeSlots(cfg SlotConfig) []string {
	if cfg.IncrementMinutes <= 0 || cfg.CloseHour < cfg.OpenHour {
		return nil
	}

	opening := cfg.OpenHour * 60
	closing := cfg.CloseHour * 60

	var slots []string
	for t := opening; t <= closing; t += cfg.IncrementMinutes {
		slots = append(slots, fmt.Sprintf("%d:%02d", t/60, t%60))
	}
	return slots
}
