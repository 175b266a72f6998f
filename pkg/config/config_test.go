package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// vacías cuentan como no definidas
	for _, k := range []string{"STORAGE_DRIVER", "DB_MAX_CONNS", "DB_MIGRATE_ON_START", "DB_FORCE_IPV4", "DB_STATEMENT_TIMEOUT_MS", "REDIS_ADDR", "APP_NAME"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.MigrateOnStart)
	assert.True(t, cfg.DB.ForceIPv4)
	assert.Zero(t, cfg.DB.StatementTimeout)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "logistica-api", cfg.App.Name)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MIGRATE_ON_START", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_STOCK_TTL_SECONDS", "5")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_FORCE_IPV4", "false")
	t.Setenv("DB_STATEMENT_TIMEOUT_MS", "1500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.DB.MigrateOnStart)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Equal(t, 1500*time.Millisecond, cfg.DB.StatementTimeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Redis.StockTTL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "logistica", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/logistica?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
