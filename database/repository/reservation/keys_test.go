package reservationRepo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	reservationRepo "danielsbarber/database/repository/reservation"
)

func TestSortKeyValue(t *testing.T) {
	key := reservationRepo.SortKeyValue("14:00", "1", "customer-1717243200000-a1b2c")
	assert.Equal(t, "14:00#1#customer-1717243200000-a1b2c", key)
}

func TestSlotGuardKeyPrefixesReservationKeys(t *testing.T) {
	guard := reservationRepo.SlotGuardKey("14:00", "1")
	key := reservationRepo.SortKeyValue("14:00", "1", "customer-1717243200000-a1b2c")

	assert.Equal(t, "14:00#1", guard)
	// Every reservation for a slot shares the guard as its key prefix,
	// so a begins_with query on the guard finds the slot's bookings.
	assert.True(t, strings.HasPrefix(key, guard+"#"))
}
