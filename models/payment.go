package models

// BookingDetails is the slice of a booking attached to a payment
// intent as metadata before the reservation exists.
type BookingDetails struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	BarberID   string `json:"barberId"`
	BarberName string `json:"barberName"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
}

// PaymentIntentRequest is the payload for POST /api/create-payment-intent.
type PaymentIntentRequest struct {
	BookingData       *BookingDetails `json:"bookingData"`
	PaymentMethodType string          `json:"payment_method_type"`
}
