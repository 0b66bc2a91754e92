package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
	"storefront/internal/money"
)

// ParseItems accepts the items field either as a JSON array or as a JSON
// string holding an encoded array, and rejects anything that is not a
// non-empty list of items.
func ParseItems(raw json.RawMessage) ([]domain.OrderItemInput, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: items are required", domain.ErrInvalidInput)
	}
	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("%w: items: %v", domain.ErrInvalidInput, err)
		}
		raw = bytes.TrimSpace([]byte(encoded))
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: items must be an array", domain.ErrInvalidInput)
	}

	var items []domain.OrderItemInput
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: items: %v", domain.ErrInvalidInput, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", domain.ErrInvalidInput)
	}
	for i, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			return nil, fmt.Errorf("%w: item %d has no productId", domain.ErrInvalidInput, i)
		}
		for _, c := range it.Configuration {
			if strings.TrimSpace(c.Category) == "" {
				return nil, fmt.Errorf("%w: item %d has a configuration entry without category", domain.ErrInvalidInput, i)
			}
		}
	}
	return items, nil
}

// maxTotal is the largest amount the orders.total NUMERIC(12, 2) column holds.
const maxTotal = 9_999_999_999.99

// ParseTotal accepts a JSON number or a numeric string and requires a
// positive finite value. The result is rounded to whole cents.
func ParseTotal(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("%w: total is required", domain.ErrInvalidInput)
	}

	var total float64
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("%w: total: %v", domain.ErrInvalidInput, err)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: total must be a number", domain.ErrInvalidInput)
		}
		total = f
	} else if err := json.Unmarshal(raw, &total); err != nil {
		return 0, fmt.Errorf("%w: total must be a number", domain.ErrInvalidInput)
	}

	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0, fmt.Errorf("%w: total must be a positive number", domain.ErrInvalidInput)
	}
	total = money.RoundCents(total)
	if total <= 0 || total > maxTotal {
		return 0, fmt.Errorf("%w: total must be between 0.01 and %.2f", domain.ErrInvalidInput, maxTotal)
	}
	return total, nil
}

// ParseEstimatedDelivery reads an optional RFC 3339 timestamp or calendar
// date, defaulting to now + 7 days.
func ParseEstimatedDelivery(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.Add(defaultDeliveryWindow).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: estimatedDelivery must be an ISO date", domain.ErrInvalidInput)
}

// LineItems freezes submitted items into their stored shape, turning the
// configuration list into a map keyed by category.
func LineItems(items []domain.OrderItemInput) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, it := range items {
		config := make(map[string]domain.SelectedOption, len(it.Configuration))
		for _, c := range it.Configuration {
			config[c.Category] = c.Selected
		}
		out = append(out, domain.LineItem{
			ID:            it.ProductID,
			Name:          it.ProductName,
			Brand:         it.Brand,
			BasePrice:     it.BasePrice,
			Configuration: config,
			Price:         it.Price,
		})
	}
	return out
}
