package order

import (
	"context"

	"storefront/internal/domain"
)

// Repository persists orders and reads them back with the owner's contact.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}
