// Package order validates, prices and persists storefront orders and lists
// a user's order history.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/domain"
	"storefront/internal/metrics"
	"storefront/internal/money"
	ordrepo "storefront/internal/repository/order"
	"storefront/internal/tracing"
)

const defaultDeliveryWindow = 7 * 24 * time.Hour

var tracer = tracing.Tracer("storefront/service/order")

type tokenDecoder interface {
	Decode(token string) (*auth.Claims, error)
}

// Publisher announces stored orders to downstream consumers.
type Publisher interface {
	OrderPlaced(ctx context.Context, o domain.Order, totalCents int64, traceID string) error
}

// PriceVerifier checks submitted prices against an authoritative source.
type PriceVerifier interface {
	Verify(items []domain.OrderItemInput, total float64) error
}

// Service handles order submission and order history.
type Service struct {
	repo      ordrepo.Repository
	tokens    tokenDecoder
	publisher Publisher
	verifier  PriceVerifier
	logger    *zap.Logger
	now       func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithPriceVerifier makes Submit reject items whose prices do not match.
func WithPriceVerifier(v PriceVerifier) Option {
	return func(s *Service) { s.verifier = v }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service.
func New(repo ordrepo.Repository, tokens tokenDecoder, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitInput is the raw order submission. Items and Total are kept as raw
// JSON because storefront clients send them in more than one shape.
type SubmitInput struct {
	Token             string
	Items             json.RawMessage
	Total             json.RawMessage
	EstimatedDelivery string
}

// Confirmation is returned to the buyer after a successful submission.
type Confirmation struct {
	OrderID           string             `json:"orderId"`
	Total             float64            `json:"total"`
	Status            domain.OrderStatus `json:"status"`
	EstimatedDelivery time.Time          `json:"estimatedDelivery"`
	Items             []domain.LineItem  `json:"items"`
	User              domain.UserContact `json:"user"`
}

// Submit authenticates the caller, validates the payload and stores the
// order with a single insert. Nothing is written when validation fails.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (conf *Confirmation, err error) {
	ctx, span := tracer.Start(ctx, "order.Submit")
	defer func() {
		metrics.OrderSubmitted(outcome(err))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	claims, err := s.authenticate(in.Token)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", claims.UserID))

	items, err := ParseItems(in.Items)
	if err != nil {
		return nil, err
	}
	total, err := ParseTotal(in.Total)
	if err != nil {
		return nil, err
	}
	now := s.now()
	eta, err := ParseEstimatedDelivery(in.EstimatedDelivery, now)
	if err != nil {
		return nil, err
	}
	if s.verifier != nil {
		if err := s.verifier.Verify(items, total); err != nil {
			return nil, err
		}
	}

	order := domain.Order{
		OrderID:           NewOrderID(claims.UserID, now),
		UserID:            claims.UserID,
		Items:             LineItems(items),
		Total:             total,
		Status:            domain.OrderStatusProcessing,
		EstimatedDelivery: eta,
	}
	span.SetAttributes(attribute.String("order.id", order.OrderID))

	stored, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error("order insert failed",
			zap.String("order_id", order.OrderID),
			zap.String("user_id", order.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger.Info("order created",
		zap.String("order_id", stored.OrderID),
		zap.String("user_id", stored.UserID),
		zap.Float64("total", stored.Total),
	)
	s.publish(ctx, *stored)

	conf = &Confirmation{
		OrderID:           stored.OrderID,
		Total:             stored.Total,
		Status:            stored.Status,
		EstimatedDelivery: stored.EstimatedDelivery,
		Items:             stored.Items,
	}
	if stored.User != nil {
		conf.User = *stored.User
	} else {
		conf.User = domain.UserContact{ID: stored.UserID}
	}
	return conf, nil
}

// ListForUser returns every order of userID, newest first. The token must
// belong to userID.
func (s *Service) ListForUser(ctx context.Context, token, userID string) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "order.ListForUser")
	defer span.End()

	claims, err := s.authenticate(token)
	if err != nil {
		return nil, err
	}
	if claims.UserID != userID {
		s.logger.Warn("order list for another user rejected",
			zap.String("token_user_id", claims.UserID),
			zap.String("requested_user_id", userID),
		)
		return nil, domain.ErrForbidden
	}
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}

func (s *Service) authenticate(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, auth.ErrTokenMissing)
	}
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return claims, nil
}

func (s *Service) publish(ctx context.Context, o domain.Order) {
	if s.publisher == nil {
		return
	}
	cents, _ := money.ToMinorUnits(o.Total)
	if err := s.publisher.OrderPlaced(ctx, o, cents, tracing.TraceID(ctx)); err != nil {
		s.logger.Warn("publish order event failed", zap.String("order_id", o.OrderID), zap.Error(err))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrInvalidReference):
		return "invalid_reference"
	case errors.Is(err, domain.ErrDuplicateOrder):
		return "duplicate"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "error"
	}
}
