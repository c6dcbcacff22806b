package models

// Reservation is the persisted booking record. Attribute names mirror
// the customerBookings table exactly: the partition key is the
// calendar date and the sort key is the literal compound attribute
// "time#barberId#customerId". Clients only ever see the compound value
// under the sortKey field.
type Reservation struct {
	Date            string `json:"date" dynamodbav:"date"`
	SortKey         string `json:"sortKey" dynamodbav:"time#barberId#customerId"`
	FirstName       string `json:"firstName" dynamodbav:"firstName"`
	LastName        string `json:"lastName" dynamodbav:"lastName"`
	Email           string `json:"email" dynamodbav:"email"`
	Phone           string `json:"phone" dynamodbav:"phone"`
	Notes           string `json:"notes" dynamodbav:"notes"`
	BarberName      string `json:"barberName" dynamodbav:"barberName"`
	BarberID        string `json:"barberId" dynamodbav:"barberId"`
	Time            string `json:"time" dynamodbav:"time"`
	PaymentIntentID string `json:"paymentIntentId" dynamodbav:"paymentIntentId"`
	PaymentStatus   string `json:"paymentStatus" dynamodbav:"paymentStatus"`
	Status          string `json:"status" dynamodbav:"status"`
	CreatedAt       string `json:"createdAt" dynamodbav:"createdAt"`
}

// BookingRequest is the payload for POST /api/bookings. Format
// validation beyond presence happens in the booking form; the one
// exception is the email shape, which the binding layer re-checks.
type BookingRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	BarberID        string `json:"barberId" binding:"required"`
	BarberName      string `json:"barberName"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Notes           string `json:"notes"`
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	PaymentStatus   string `json:"paymentStatus"`
}

// BookedSlot identifies an occupied (time, barber) pair on a date.
type BookedSlot struct {
	Time     string `json:"time"`
	BarberID string `json:"barberId"`
	Date     string `json:"date"`
}

// Availability is the result of subtracting booked slots from the
// generated slot grid for one date.
type Availability struct {
	BookedTimeSlots []BookedSlot `json:"bookedTimeSlots"`
	AvailableTimes  []string     `json:"availableTimes"`
}
