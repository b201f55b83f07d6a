package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/revenue-api/internal/infrastructure/exchange"
	"github.com/jhoicas/revenue-api/pkg/config"
	"github.com/jhoicas/revenue-api/pkg/logger"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: driver},
		Exchange: config.ExchangeConfig{
			BaseURL:       "http://127.0.0.1:1",
			Timeout:       time.Second,
			RatePerSecond: 5,
			CacheTTL:      time.Minute,
		},
	}
}

func TestOpenStorage_Memoria(t *testing.T) {
	store, err := OpenStorage(context.Background(), testConfig(config.StorageMemory), logger.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.Nil(t, store.Pool)
	assert.NotNil(t, store.Clients)
	assert.NotNil(t, store.Contracts)
	assert.NotNil(t, store.Payments)
	assert.NotNil(t, store.TxRunner)
}

func TestOpenStorage_DriverDesconocido(t *testing.T) {
	_, err := OpenStorage(context.Background(), testConfig("sqlite"), logger.Nop())
	require.Error(t, err)
}

func TestNewRateProvider_SinRedis(t *testing.T) {
	rates, closeFn := NewRateProvider(context.Background(), testConfig(config.StorageMemory), logger.Nop())
	defer closeFn()
	assert.IsType(t, &exchange.Client{}, rates)
}

func TestNewRateProvider_RedisInalcanzableSigueSinCache(t *testing.T) {
	cfg := testConfig(config.StorageMemory)
	cfg.Redis.URL = "redis://127.0.0.1:1/0"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rates, closeFn := NewRateProvider(ctx, cfg, logger.Nop())
	defer closeFn()
	assert.IsType(t, &exchange.Client{}, rates)
}
