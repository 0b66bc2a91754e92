package domain

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

// ParseOrderStatus normalizes a status string and rejects unknown values.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, s)
}

// SelectedOption is the frozen copy of an option stored with an order.
type SelectedOption struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ConfigurationEntry pairs a category with the option picked for it.
type ConfigurationEntry struct {
	Category string         `json:"category"`
	Selected SelectedOption `json:"selected"`
}

// OrderItemInput is a line item as the storefront submits it.
type OrderItemInput struct {
	ProductID     string               `json:"productId"`
	ProductName   string               `json:"productName"`
	Brand         string               `json:"brand"`
	BasePrice     float64              `json:"basePrice"`
	Configuration []ConfigurationEntry `json:"configuration"`
	Price         float64              `json:"price"`
}

// LineItem is the persisted snapshot of an ordered product.
type LineItem struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	Brand         string                    `json:"brand"`
	BasePrice     float64                   `json:"basePrice"`
	Configuration map[string]SelectedOption `json:"configuration"`
	Price         float64                   `json:"price"`
}

// UserContact is the subset of user fields joined onto orders.
type UserContact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Order struct {
	ID                string       `json:"id"`
	OrderID           string       `json:"orderId"`
	UserID            string       `json:"userId"`
	Items             []LineItem   `json:"items"`
	Total             float64      `json:"total"`
	Status            OrderStatus  `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	EstimatedDelivery time.Time    `json:"estimatedDelivery"`
	User              *UserContact `json:"user,omitempty"`
}
