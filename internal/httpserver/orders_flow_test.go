package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"storefront/internal/auth"
	"storefront/internal/domain"
	ordersvc "storefront/internal/service/order"
)

// memoryOrders is an in-memory order repository keyed by user.
type memoryOrders struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (r *memoryOrders) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.CreatedAt = time.Now().Add(time.Duration(len(r.orders)) * time.Second)
	o.User = &domain.UserContact{ID: o.UserID, Name: "Test User", Email: o.UserID + "@example.com"}
	r.orders = append(r.orders, o)
	return &o, nil
}

func (r *memoryOrders) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

func (r *memoryOrders) UpdateStatus(context.Context, string, domain.OrderStatus) error { return nil }

func TestOrderFlow_SubmitThenList(t *testing.T) {
	tokens := auth.NewTokenManager("flow-secret", time.Hour)
	repo := &memoryOrders{}
	svc := ordersvc.New(repo, tokens, zaptest.NewLogger(t))
	router := testRouter(t, Deps{Orders: svc}, Options{})

	token, _, err := tokens.Issue("u123", "u123@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	body := `{"items":[{"productId":"1","productName":"ROG Strix","brand":"ASUS","basePrice":2499,
"configuration":[{"category":"ram","selected":{"name":"64GB DDR5","price":200,"description":"6400MHz"}}],
"price":2699}],"total":2699}`
	rec := do(router, http.MethodPost, "/api/orders/create", body, map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Success bool `json:"success"`
		Order   struct {
			OrderID string  `json:"orderId"`
			Total   float64 `json:"total"`
		} `json:"order"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.Success || created.Order.Total != 2699 ||
		!regexp.MustCompile(`^ORD-u123-[0-9a-z]+-[A-Z0-9]{6}$`).MatchString(created.Order.OrderID) {
		t.Fatalf("unexpected confirmation %+v", created)
	}

	rec = do(router, http.MethodGet, "/api/orders/u123", "", map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Items[0].Configuration["ram"].Price != 200 {
		t.Fatalf("unexpected list %+v", list)
	}

	other, _, _ := tokens.Issue("u456", "")
	rec = do(router, http.MethodGet, "/api/orders/u123", "", map[string]string{"Authorization": "Bearer " + other})
	if rec.Code != http.StatusForbidden || strings.Contains(rec.Body.String(), "ORD-") {
		t.Fatalf("expected 403 without data, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(router, http.MethodPost, "/api/orders/create", `{"items":[],"total":2699}`, map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty items, got %d", rec.Code)
	}
	rec = do(router, http.MethodPost, "/api/orders/create", body, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected rejected submissions not to be stored, got %d orders", len(repo.orders))
	}
}
