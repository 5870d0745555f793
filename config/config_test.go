package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/donations/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("DONATION_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second {
		t.Fatalf("HTTP.HandlerTimeout: want 3s, got %v", c.HTTP.HandlerTimeout)
	}

	// Metrics
	if c.Metrics.Addr != ":2112" {
		t.Fatalf("Metrics.Addr: want :2112, got %q", c.Metrics.Addr)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "donations-app" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// Kafka
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers wrong: %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "donations" || c.Kafka.GroupID != "donations" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 15*time.Second {
		t.Fatalf("Kafka.ProcessTimeout: want 15s, got %v", c.Kafka.ProcessTimeout)
	}

	// Stripe
	if c.Stripe.APIKey != "" {
		t.Fatalf("Stripe.APIKey must not have a default")
	}
	if c.Stripe.BaseURL != "https://api.stripe.com" || c.Stripe.Timeout != 10*time.Second {
		t.Fatalf("Stripe defaults wrong: %+v", c.Stripe)
	}

	// Cache
	if c.Cache.Capacity != 1000 || c.Cache.TTL != 10*time.Minute || c.Cache.WarmUpN != 100 {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}
}

// TestLoadWithPrefix_Overrides — переменные окружения перекрывают дефолты.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	t.Setenv("DONATION_TEST_OVR_HTTP_ADDR", ":9090")
	t.Setenv("DONATION_TEST_OVR_KAFKA_TOPIC", "donations-stage")
	t.Setenv("DONATION_TEST_OVR_STRIPE_API_KEY", "sk_test_123")
	t.Setenv("DONATION_TEST_OVR_CACHE_TTL", "30s")

	c, err := cfg.LoadWithPrefix("DONATION_TEST_OVR")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9090" {
		t.Fatalf("HTTP.Addr: want :9090, got %q", c.HTTP.Addr)
	}
	if c.Kafka.Topic != "donations-stage" {
		t.Fatalf("Kafka.Topic: want donations-stage, got %q", c.Kafka.Topic)
	}
	if c.Stripe.APIKey != "sk_test_123" {
		t.Fatalf("Stripe.APIKey not picked up")
	}
	if c.Cache.TTL != 30*time.Second {
		t.Fatalf("Cache.TTL: want 30s, got %v", c.Cache.TTL)
	}
}
