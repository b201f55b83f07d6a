package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 30, cfg.JWT.Expiration)
	assert.Equal(t, 2, cfg.JWT.RefreshHours)
	assert.Equal(t, "https://open.er-api.com/v6/latest", cfg.Exchange.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Exchange.Timeout)
	assert.Equal(t, time.Hour, cfg.Exchange.CacheTTL)
	assert.True(t, cfg.Sweeper.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Sweeper.Interval)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("EXCHANGE_TIMEOUT", "2")
	v.Set("SWEEPER_INTERVAL", "15m")
	v.Set("SWEEPER_ENABLED", "false")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_FORCE_IPV4", "true")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 2*time.Second, cfg.Exchange.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Sweeper.Interval)
	assert.False(t, cfg.Sweeper.Enabled)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "revenue", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/revenue?sslmode=disable", c.DSN())
}
