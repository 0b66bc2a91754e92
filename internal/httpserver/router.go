package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/metrics"
	"storefront/internal/payment"
	ordersvc "storefront/internal/service/order"
	usersvc "storefront/internal/service/user"
)

// OrderService submits and lists orders.
type OrderService interface {
	Submit(ctx context.Context, in ordersvc.SubmitInput) (*ordersvc.Confirmation, error)
	ListForUser(ctx context.Context, token, userID string) ([]domain.Order, error)
}

// PaymentService creates and confirms payment intents.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount float64, idempotencyKey string) (string, error)
	Confirm(ctx context.Context, clientSecret, paymentMethod string) (payment.ConfirmResult, error)
}

// UserService registers and logs in storefront users.
type UserService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*usersvc.Session, error)
}

// CatalogReader serves the product catalog.
type CatalogReader interface {
	Products() []domain.Product
	Product(id string) (domain.Product, bool)
}

// Deps bundles the services the router dispatches to.
type Deps struct {
	Orders   OrderService
	Payments PaymentService
	Users    UserService
	Catalog  CatalogReader
}

// Options tunes router behaviour per environment.
type Options struct {
	ServiceName    string
	AllowedOrigins []string
	// ExposeErrors includes internal error detail in responses.
	ExposeErrors bool
}

type handlers struct {
	deps   Deps
	logger *zap.Logger
	expose bool
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db Pinger, deps Deps, opts Options) *gin.Engine {
	if opts.ServiceName == "" {
		opts.ServiceName = "storefront"
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		recovery(logger),
		otelgin.Middleware(opts.ServiceName),
		requestLogger(logger),
		metrics.Middleware(),
		cors.New(corsConfig(opts.AllowedOrigins)),
	)
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", metrics.Handler())

	h := &handlers{deps: deps, logger: logger, expose: opts.ExposeErrors}
	api := router.Group("/api")
	api.POST("/create-payment-intent", h.createPaymentIntent)
	api.POST("/confirm-payment", h.confirmPayment)
	api.POST("/orders/create", h.createOrder)
	api.GET("/orders/:userId", h.listOrders)
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
