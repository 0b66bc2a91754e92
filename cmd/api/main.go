package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/events"
	"storefront/internal/httpserver"
	"storefront/internal/payment"
	"storefront/internal/redisx"
	orderrepo "storefront/internal/repository/order"
	userrepo "storefront/internal/repository/user"
	ordersvc "storefront/internal/service/order"
	usersvc "storefront/internal/service/user"
	"storefront/internal/tracing"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	shutdownTracing := tracing.Init(cfg.ServiceName)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	cat := catalog.Default()

	var publisher ordersvc.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic, cfg.ServiceName, logger)
		defer kp.Close()
		publisher = kp
		logger.Info("order events enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaOrderTopic))
	}

	orderOpts := []ordersvc.Option{ordersvc.WithPublisher(publisher)}
	if cfg.VerifyPrices {
		orderOpts = append(orderOpts, ordersvc.WithPriceVerifier(ordersvc.NewCatalogVerifier(cat)))
	}
	orderService := ordersvc.New(orderrepo.NewPostgres(dbpool, logger), tokens, logger, orderOpts...)
	userService := usersvc.New(userrepo.NewPostgres(dbpool, logger), tokens, logger)

	var provider payment.Provider
	if sp, err := payment.NewStripe(cfg.StripeSecretKey); err != nil {
		logger.Warn("payment provider not configured; payment endpoints will fail", zap.Error(err))
	} else {
		provider = sp
	}
	payOpts := []payment.Option{payment.WithLogger(logger)}
	if cfg.RedisAddr != "" {
		rdb, err := redisx.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable; idempotency keys disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			payOpts = append(payOpts, payment.WithIdempotencyStore(redisx.NewIdempotencyStore(rdb)))
		}
	}
	payments := payment.NewAdapter(provider, cfg.Currency, payOpts...)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Orders:   orderService,
		Payments: payments,
		Users:    userService,
		Catalog:  cat,
	}, httpserver.Options{
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.CORSOrigins,
		ExposeErrors:   !cfg.Production(),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
