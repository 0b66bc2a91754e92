package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "APP_ENV", "TOKEN_TTL_SECONDS", "KAFKA_BROKERS", "VERIFY_PRICES", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" || cfg.TokenTTL != 24*time.Hour || cfg.Production() {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.KafkaBrokers != nil || cfg.VerifyPrices {
		t.Fatalf("expected optional integrations off, got %+v", cfg)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("TOKEN_TTL_SECONDS", "60")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("VERIFY_PRICES", "true")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "nope")

	cfg := FromEnv()
	if !cfg.Production() {
		t.Fatalf("expected production")
	}
	if cfg.TokenTTL != time.Minute || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected durations %v %v", cfg.TokenTTL, cfg.ShutdownTimeout)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if len(cfg.CORSOrigins) != 0 || !cfg.VerifyPrices {
		t.Fatalf("unexpected cors/verify %v %v", cfg.CORSOrigins, cfg.VerifyPrices)
	}
}
