package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"storefront/internal/db"
	"storefront/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create inserts the order in a single statement and returns it joined with
// the owner's name and email. A colliding order id is ErrDuplicateOrder and
// an unknown user is ErrInvalidReference.
func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	const q = `
WITH inserted AS (
    INSERT INTO orders (order_id, user_id, items, total, status, estimated_delivery)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id::text, order_id, user_id, items, total::float8, status, created_at, estimated_delivery
)
SELECT i.id, i.order_id, i.user_id, i.items, i.total, i.status, i.created_at, i.estimated_delivery,
       u.name, u.email
FROM inserted i
JOIN users u ON u.id = i.user_id
`
	out, err := r.scanOrder(r.pool.QueryRow(ctx, q,
		o.OrderID,
		o.UserID,
		itemsJSON,
		o.Total,
		string(o.Status),
		o.EstimatedDelivery,
	))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrDuplicateOrder
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT o.id::text, o.order_id, o.user_id, o.items, o.total::float8, o.status, o.created_at, o.estimated_delivery,
       u.name, u.email
FROM orders o
JOIN users u ON u.id = o.user_id
WHERE o.user_id = $1
ORDER BY o.created_at DESC, o.id DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Error("order repo: list query", zap.String("user_id", userID), zap.Error(err))
		return nil, db.Classify(err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Classify(err)
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	const q = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE order_id = $1
`
	tag, err := r.pool.Exec(ctx, q, orderID, string(status))
	if err != nil {
		r.logger.Error("order repo: update status", zap.String("order_id", orderID), zap.Error(err))
		return db.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o         domain.Order
		itemsJSON []byte
		status    string
		contact   domain.UserContact
	)
	err := row.Scan(
		&o.ID,
		&o.OrderID,
		&o.UserID,
		&itemsJSON,
		&o.Total,
		&status,
		&o.CreatedAt,
		&o.EstimatedDelivery,
		&contact.Name,
		&contact.Email,
	)
	if err != nil {
		classified := db.Classify(err)
		if !errors.Is(classified, domain.ErrNotFound) {
			r.logger.Error("order repo: scan", zap.Error(err))
		}
		return nil, classified
	}
	o.Status = domain.OrderStatus(status)
	contact.ID = o.UserID
	o.User = &contact
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			r.logger.Error("order repo: decode items", zap.String("order_id", o.OrderID), zap.Error(err))
			return nil, err
		}
	}
	if o.Items == nil {
		o.Items = []domain.LineItem{}
	}
	return &o, nil
}
