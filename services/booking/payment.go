package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"danielsbarber/models"
)

// DefaultPaymentService creates Stripe payment intents for the flat
// booking fee. Confirmation happens client-side against the returned
// client secret; only a succeeded intent may reach admission.
type DefaultPaymentService struct {
	Logger      *zap.Logger
	FeeCents    int64
	FeeCurrency string
}

func (s *DefaultPaymentService) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error) {
	if req.BookingData == nil {
		return "", NewValidationError("missing booking data")
	}

	methodType := req.PaymentMethodType
	if methodType == "" {
		methodType = "card"
	}

	data := req.BookingData
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(s.FeeCents),
		Currency:           stripe.String(s.FeeCurrency),
		PaymentMethodTypes: stripe.StringSlice([]string{methodType}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.New().String())
	params.AddMetadata("barberId", data.BarberID)
	params.AddMetadata("barberName", data.BarberName)
	params.AddMetadata("date", data.Date)
	params.AddMetadata("time", data.Time)
	params.AddMetadata("customerEmail", data.Email)
	params.AddMetadata("customerName", fmt.Sprintf("%s %s", data.FirstName, data.LastName))

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", NewPaymentError("failed to create payment intent", err)
	}

	s.Logger.Info("payment intent created",
		zap.String("paymentIntentId", intent.ID),
		zap.Int64("amount", s.FeeCents),
		zap.String("currency", s.FeeCurrency),
	)
	return intent.ClientSecret, nil
}
