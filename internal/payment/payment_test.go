package payment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stripe/stripe-go/v81"
	"go.uber.org/zap/zaptest"
)

type fakeProvider struct {
	created   []int64
	currency  string
	idemKeys  []string
	createErr error

	confirmed  string
	confirmPM  string
	confirmOut *Intent
	confirmErr error
}

func (f *fakeProvider) CreateIntent(_ context.Context, amountMinor int64, currency, key string) (*Intent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, amountMinor)
	f.currency = currency
	f.idemKeys = append(f.idemKeys, key)
	return &Intent{ID: "pi_1", ClientSecret: "pi_1_secret_abc", Status: "requires_payment_method"}, nil
}

func (f *fakeProvider) ConfirmIntent(_ context.Context, id, pm string) (*Intent, error) {
	f.confirmed = id
	f.confirmPM = pm
	return f.confirmOut, f.confirmErr
}

type memoryIdem struct {
	values map[string]string
}

func (m *memoryIdem) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryIdem) Set(_ context.Context, key, secret string) error {
	m.values[key] = secret
	return nil
}

func TestCreateIntent_ConvertsToMinorUnits(t *testing.T) {
	p := &fakeProvider{}
	a := NewAdapter(p, "USD", WithLogger(zaptest.NewLogger(t)))

	secret, err := a.CreateIntent(context.Background(), 25.995, "")
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if secret != "pi_1_secret_abc" {
		t.Fatalf("unexpected secret %q", secret)
	}
	if len(p.created) != 1 || p.created[0] != 2600 {
		t.Fatalf("expected 2600 minor units, got %v", p.created)
	}
	if p.currency != "usd" {
		t.Fatalf("expected lower-case currency, got %q", p.currency)
	}
}

func TestCreateIntent_InvalidAmounts(t *testing.T) {
	p := &fakeProvider{}
	a := NewAdapter(p, "usd")
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), 0.004} {
		if _, err := a.CreateIntent(context.Background(), amount, ""); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if len(p.created) != 0 {
		t.Fatalf("provider must not be called for invalid amounts")
	}
}

func TestCreateIntent_MissingProvider(t *testing.T) {
	a := NewAdapter(nil, "usd")
	if _, err := a.CreateIntent(context.Background(), 10, ""); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if _, err := NewStripe(""); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration from NewStripe, got %v", err)
	}
}

func TestCreateIntent_WrapsProviderFailure(t *testing.T) {
	p := &fakeProvider{createErr: errors.New("card_declined")}
	a := NewAdapter(p, "usd")
	_, err := a.CreateIntent(context.Background(), 10, "")
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Msg != "card_declined" {
		t.Fatalf("unexpected provider message %q", pe.Msg)
	}
}

func TestCreateIntent_ReplaysIdempotencyKey(t *testing.T) {
	p := &fakeProvider{}
	idem := &memoryIdem{values: map[string]string{}}
	a := NewAdapter(p, "usd", WithIdempotencyStore(idem))

	first, err := a.CreateIntent(context.Background(), 10, "k1")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := a.CreateIntent(context.Background(), 10, "k1")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Fatalf("expected replayed secret, got %q and %q", first, second)
	}
	if len(p.created) != 1 {
		t.Fatalf("expected a single provider call, got %d", len(p.created))
	}
	if p.idemKeys[0] != "k1" {
		t.Fatalf("expected key forwarded to provider, got %q", p.idemKeys[0])
	}
}

func TestConfirm(t *testing.T) {
	p := &fakeProvider{confirmOut: &Intent{ID: "pi_1", Status: StatusSucceeded}}
	a := NewAdapter(p, "usd")
	res, err := a.Confirm(context.Background(), "pi_1_secret_abc", "pm_card_visa")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !res.Succeeded || p.confirmed != "pi_1" || p.confirmPM != "pm_card_visa" {
		t.Fatalf("unexpected result %+v (id=%q pm=%q)", res, p.confirmed, p.confirmPM)
	}

	p.confirmOut = &Intent{ID: "pi_1", Status: "requires_payment_method", LastError: "Your card was declined."}
	res, err = a.Confirm(context.Background(), "pi_1_secret_abc", "pm_card_visa")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Succeeded || res.Message != "Your card was declined." {
		t.Fatalf("unexpected result %+v", res)
	}

	p.confirmOut, p.confirmErr = nil, &ProviderError{Msg: "Your card has insufficient funds.", Declined: true}
	res, err = a.Confirm(context.Background(), "pi_1_secret_abc", "pm_card_visa")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if res.Succeeded || res.Message != "Your card has insufficient funds." {
		t.Fatalf("unexpected result %+v", res)
	}

	if _, err := a.Confirm(context.Background(), "garbage", ""); !errors.Is(err, ErrInvalidClientSecret) {
		t.Fatalf("expected ErrInvalidClientSecret, got %v", err)
	}
}

func TestConfirmProviderFailureIsError(t *testing.T) {
	cases := map[string]error{
		"transport":       errors.New("dial tcp 10.0.0.5:443: connect: connection refused"),
		"invalid request": &ProviderError{Msg: "No such payment_intent: 'pi_1'"},
		"invalid api key": stripeError(&stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Msg: "Invalid API Key provided"}),
	}
	for name, confirmErr := range cases {
		t.Run(name, func(t *testing.T) {
			a := NewAdapter(&fakeProvider{confirmErr: confirmErr}, "usd")
			res, err := a.Confirm(context.Background(), "pi_1_secret_abc", "pm_card_visa")
			var pe *ProviderError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ProviderError, got result %+v err %v", res, err)
			}
			if pe.Declined {
				t.Fatalf("non-card failure marked as declined: %+v", pe)
			}
		})
	}
}

func TestStripeErrorMarksCardDeclines(t *testing.T) {
	err := stripeError(&stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."})
	var pe *ProviderError
	if !errors.As(err, &pe) || !pe.Declined || pe.Msg != "Your card was declined." {
		t.Fatalf("unexpected error %#v", err)
	}

	a := NewAdapter(&fakeProvider{confirmErr: err}, "usd")
	res, cerr := a.Confirm(context.Background(), "pi_1_secret_abc", "")
	if cerr != nil || res.Succeeded || res.Message != "Your card was declined." {
		t.Fatalf("expected declined result, got %+v err %v", res, cerr)
	}
}
