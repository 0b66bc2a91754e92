package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// StripeProvider talks to the Stripe PaymentIntents API.
type StripeProvider struct {
	client *paymentintent.Client
}

// NewStripe builds a provider for the given secret key.
func NewStripe(secretKey string) (*StripeProvider, error) {
	if secretKey == "" {
		return nil, ErrConfiguration
	}
	return &StripeProvider{
		client: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
	}, nil
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amountMinor int64, currency, idempotencyKey string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}
	pi, err := p.client.New(params)
	if err != nil {
		return nil, stripeError(err)
	}
	return toIntent(pi), nil
}

func (p *StripeProvider) ConfirmIntent(ctx context.Context, intentID, paymentMethod string) (*Intent, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	if paymentMethod != "" {
		params.PaymentMethod = stripe.String(paymentMethod)
	}
	params.Context = ctx
	pi, err := p.client.Confirm(intentID, params)
	if err != nil {
		return nil, stripeError(err)
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *Intent {
	in := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}
	if pi.LastPaymentError != nil {
		in.LastError = pi.LastPaymentError.Msg
	}
	return in
}

func stripeError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		return &ProviderError{Msg: se.Msg, Declined: se.Type == stripe.ErrorTypeCard, Err: err}
	}
	return &ProviderError{Msg: err.Error(), Err: err}
}
