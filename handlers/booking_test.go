package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"danielsbarber/handlers"
	"danielsbarber/models"
	"danielsbarber/routes"
	"danielsbarber/services/booking"
	"danielsbarber/services/catalog"
)

type fakeAvailabilitySvc struct {
	availability *models.Availability
	err          error
}

func (f *fakeAvailabilitySvc) AvailableTimes(_ context.Context, _, _ string) (*models.Availability, error) {
	return f.availability, f.err
}

type fakeBookingSvc struct {
	res    *models.Reservation
	err    error
	gotReq models.BookingRequest
}

func (f *fakeBookingSvc) CreateBooking(_ context.Context, req models.BookingRequest) (*models.Reservation, error) {
	f.gotReq = req
	return f.res, f.err
}

type fakePaymentSvc struct {
	secret string
	err    error
}

func (f *fakePaymentSvc) CreatePaymentIntent(_ context.Context, _ models.PaymentIntentRequest) (string, error) {
	return f.secret, f.err
}

func newTestRouter(availabilitySvc booking.AvailabilityService, bookingSvc booking.BookingService, paymentSvc booking.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	catalogSvc := &catalog.DefaultCatalogService{}

	bookingHandler := handlers.NewBookingHandler(availabilitySvc, bookingSvc, catalogSvc, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)

	r := gin.New()
	routes.RegisterRoutes(r, &handlers.HandlerBundle{
		GetAvailableTimes:   bookingHandler.GetAvailableTimes,
		CreateBooking:       bookingHandler.CreateBooking,
		CreatePaymentIntent: paymentHandler.CreatePaymentIntent,
		GetBarbers:          catalogHandler.GetBarbers,
		GetServices:         catalogHandler.GetServices,
	})
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetAvailableTimes_MissingDate(t *testing.T) {
	r := newTestRouter(&fakeAvailabilitySvc{}, &fakeBookingSvc{}, &fakePaymentSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/available-times", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "error")
}

func TestGetAvailableTimes_ReturnsBookedAndAvailable(t *testing.T) {
	availabilitySvc := &fakeAvailabilitySvc{
		availability: &models.Availability{
			BookedTimeSlots: []models.BookedSlot{{Time: "14:00", BarberID: "1", Date: "2024-06-01"}},
			AvailableTimes:  []string{"9:00", "9:30"},
		},
	}
	r := newTestRouter(availabilitySvc, &fakeBookingSvc{}, &fakePaymentSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/available-times?date=2024-06-01&barberId=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	booked, ok := body["bookedTimeSlots"].([]any)
	require.True(t, ok)
	require.Len(t, booked, 1)
	slot := booked[0].(map[string]any)
	assert.Equal(t, "14:00", slot["time"])
	assert.Equal(t, "1", slot["barberId"])
	assert.Equal(t, "2024-06-01", slot["date"])
}

func TestGetAvailableTimes_BackendFailure(t *testing.T) {
	availabilitySvc := &fakeAvailabilitySvc{
		err: booking.NewBackendError("failed to fetch booked time slots", assert.AnError),
	}
	r := newTestRouter(availabilitySvc, &fakeBookingSvc{}, &fakePaymentSvc{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/available-times?date=2024-06-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "details")
}

func validBookingBody() map[string]any {
	return map[string]any{
		"date":            "2024-06-01",
		"time":            "14:00",
		"barberId":        "1",
		"firstName":       "Jordan",
		"lastName":        "Lee",
		"email":           "jordan.lee@example.com",
		"phone":           "5551234567",
		"notes":           "first visit",
		"paymentIntentId": "pi_123",
		"paymentStatus":   "paid",
	}
}

func getRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking_Success(t *testing.T) {
	bookingSvc := &fakeBookingSvc{
		res: &models.Reservation{
			Date:            "2024-06-01",
			SortKey:         "14:00#1#customer-1717243200000-a1b2c",
			Time:            "14:00",
			BarberID:        "1",
			BarberName:      "Niajere Daniels",
			Status:          "confirmed",
			PaymentIntentID: "pi_123",
		},
	}
	r := newTestRouter(&fakeAvailabilitySvc{}, bookingSvc, &fakePaymentSvc{})

	w := postJSON(r, "/api/bookings", validBookingBody())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	bookingBody, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "14:00#1#customer-1717243200000-a1b2c", bookingBody["sortKey"])
	assert.Equal(t, "confirmed", bookingBody["status"])
}

func TestCreateBooking_BackfillsBarberName(t *testing.T) {
	bookingSvc := &fakeBookingSvc{res: &models.Reservation{}}
	r := newTestRouter(&fakeAvailabilitySvc{}, bookingSvc, &fakePaymentSvc{})

	payload := validBookingBody()
	delete(payload, "barberName")
	w := postJSON(r, "/api/bookings", payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Niajere Daniels", bookingSvc.gotReq.BarberName)
}

func TestCreateBooking_MissingRequiredField(t *testing.T) {
	r := newTestRouter(&fakeAvailabilitySvc{}, &fakeBookingSvc{}, &fakePaymentSvc{})

	payload := validBookingBody()
	delete(payload, "email")
	w := postJSON(r, "/api/bookings", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "error")
}

func TestCreateBooking_InvalidEmailRejected(t *testing.T) {
	r := newTestRouter(&fakeAvailabilitySvc{}, &fakeBookingSvc{}, &fakePaymentSvc{})

	payload := validBookingBody()
	payload["email"] = "not-an-email"
	w := postJSON(r, "/api/bookings", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	bookingSvc := &fakeBookingSvc{
		err: booking.NewSlotTakenError("the 14:00 slot with barber 1 on 2024-06-01 is already booked"),
	}
	r := newTestRouter(&fakeAvailabilitySvc{}, bookingSvc, &fakePaymentSvc{})

	w := postJSON(r, "/api/bookings", validBookingBody())

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "error")
}

func TestCreateBooking_WriteFailure(t *testing.T) {
	bookingSvc := &fakeBookingSvc{
		err: booking.NewBackendError("failed to create booking", assert.AnError),
	}
	r := newTestRouter(&fakeAvailabilitySvc{}, bookingSvc, &fakePaymentSvc{})

	w := postJSON(r, "/api/bookings", validBookingBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "details")
}
