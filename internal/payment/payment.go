// Package payment creates and confirms card payment intents.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/money"
)

var (
	// ErrConfiguration is returned when no provider secret key is configured.
	ErrConfiguration = errors.New("payment provider not configured")
	// ErrInvalidAmount is returned for non-positive or non-finite amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidClientSecret is returned when a client secret names no intent.
	ErrInvalidClientSecret = errors.New("invalid client secret")
)

// ProviderError carries the provider's message for a failed API call.
// Declined marks card errors whose message is meant for the buyer.
type ProviderError struct {
	Msg      string
	Declined bool
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Msg == "" {
		return "payment provider error"
	}
	return "payment provider error: " + e.Msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

// StatusSucceeded is the provider status of a settled intent.
const StatusSucceeded = "succeeded"

// Intent is the provider-side view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	// LastError is the provider's user-facing message for a failed attempt.
	LastError string
}

// Provider is the subset of a payment gateway the adapter needs.
type Provider interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency, idempotencyKey string) (*Intent, error)
	ConfirmIntent(ctx context.Context, intentID, paymentMethod string) (*Intent, error)
}

// IdempotencyStore remembers client secrets by request idempotency key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, clientSecret string) error
}

// ConfirmResult reports the outcome of confirming an intent.
type ConfirmResult struct {
	Succeeded bool
	Status    string
	Message   string
}

// Adapter converts storefront amounts into provider payment intents.
type Adapter struct {
	provider Provider
	currency string
	idem     IdempotencyStore
	logger   *zap.Logger
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithIdempotencyStore enables replaying client secrets for repeated keys.
func WithIdempotencyStore(s IdempotencyStore) Option {
	return func(a *Adapter) { a.idem = s }
}

// WithLogger sets the adapter logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdapter builds an Adapter. A nil provider is allowed and makes every
// call fail with ErrConfiguration.
func NewAdapter(provider Provider, currency string, opts ...Option) *Adapter {
	if currency == "" {
		currency = "usd"
	}
	a := &Adapter{
		provider: provider,
		currency: strings.ToLower(currency),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CreateIntent creates a payment intent for amount, given in display
// currency, and returns its client secret.
func (a *Adapter) CreateIntent(ctx context.Context, amount float64, idempotencyKey string) (string, error) {
	if a.provider == nil {
		return "", ErrConfiguration
	}
	minor, err := money.ToMinorUnits(amount)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if minor <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey != "" && a.idem != nil {
		secret, ok, err := a.idem.Get(ctx, idempotencyKey)
		if err != nil {
			a.logger.Warn("idempotency lookup failed", zap.String("key", idempotencyKey), zap.Error(err))
		} else if ok {
			return secret, nil
		}
	}

	intent, err := a.provider.CreateIntent(ctx, minor, a.currency, idempotencyKey)
	if err != nil {
		a.logger.Error("create payment intent failed", zap.Int64("amount_minor", minor), zap.Error(err))
		return "", asProviderError(err)
	}
	a.logger.Info("payment intent created", zap.String("intent_id", intent.ID), zap.Int64("amount_minor", minor))

	if idempotencyKey != "" && a.idem != nil {
		if err := a.idem.Set(ctx, idempotencyKey, intent.ClientSecret); err != nil {
			a.logger.Warn("idempotency store failed", zap.String("key", idempotencyKey), zap.Error(err))
		}
	}
	return intent.ClientSecret, nil
}

// Confirm confirms the intent behind clientSecret with paymentMethod. A
// declined or incomplete payment is not an error: it is reported through
// ConfirmResult with a message suitable for the buyer. Any other provider
// failure is returned as a *ProviderError.
func (a *Adapter) Confirm(ctx context.Context, clientSecret, paymentMethod string) (ConfirmResult, error) {
	if a.provider == nil {
		return ConfirmResult{}, ErrConfiguration
	}
	id, ok := IntentIDFromSecret(clientSecret)
	if !ok {
		return ConfirmResult{}, ErrInvalidClientSecret
	}
	intent, err := a.provider.ConfirmIntent(ctx, id, strings.TrimSpace(paymentMethod))
	if err != nil {
		var pe *ProviderError
		if errors.As(err, &pe) && pe.Declined && pe.Msg != "" {
			a.logger.Info("payment declined", zap.String("intent_id", id), zap.String("reason", pe.Msg))
			return ConfirmResult{Status: "failed", Message: pe.Msg}, nil
		}
		a.logger.Error("confirm payment intent failed", zap.String("intent_id", id), zap.Error(err))
		return ConfirmResult{}, asProviderError(err)
	}
	if intent.Status == StatusSucceeded {
		return ConfirmResult{Succeeded: true, Status: intent.Status}, nil
	}
	msg := intent.LastError
	if msg == "" {
		msg = "Payment was not completed (status: " + intent.Status + ")"
	}
	return ConfirmResult{Status: intent.Status, Message: msg}, nil
}

// IntentIDFromSecret returns the intent id prefix of a client secret of the
// form <id>_secret_<token>.
func IntentIDFromSecret(secret string) (string, bool) {
	id, _, found := strings.Cut(strings.TrimSpace(secret), "_secret_")
	if !found || id == "" {
		return "", false
	}
	return id, true
}

func asProviderError(err error) error {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return &ProviderError{Msg: err.Error(), Err: err}
}
