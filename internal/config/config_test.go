package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "storefront.orders", cfg.KafkaTopic)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 4, cfg.KafkaWorkers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PD_HTTP_ADDR", ":9090")
	t.Setenv("PD_STORE_BACKEND", "SQLite")
	t.Setenv("PD_STORE_TIMEOUT", "500ms")
	t.Setenv("PD_KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("PD_KAFKA_WORKERS", "8")
	t.Setenv("PD_LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, 500*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 8, cfg.KafkaWorkers)
	assert.Equal(t, "json", cfg.LogFormat)
}
