package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081", cfg.TraderAPI.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.TraderAPI.Timeout)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.False(t, cfg.DB.RunMigrations)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TRADER_API_BASE_URL", "http://trader:8000")
	t.Setenv("DB_RUN_MIGRATIONS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://trader:8000", cfg.TraderAPI.BaseURL)
	assert.True(t, cfg.DB.RunMigrations)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load("")
	assert.Error(t, err)
}
