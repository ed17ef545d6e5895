package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_DSN", "REDIS_ADDR", "CACHE_TTL_SECONDS", "APP_TIMEZONE", "RATE_LIMIT_RPS", "AUTO_MIGRATE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 300*time.Second, cfg.Redis.CacheTTL)
	assert.False(t, cfg.Jobs.AutoMigrate)
	assert.Equal(t, time.UTC, cfg.App.Location())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("APP_TIMEZONE", "America/Santiago")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 2.5, cfg.Server.RateLimitRPS)
	assert.True(t, cfg.Jobs.AutoMigrate)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, "America/Santiago", cfg.App.Location().String())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Jobs.AutoMigrate)
}

func TestValidate(t *testing.T) {
	t.Run("unknown timezone", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{Port: "8080"}, Database: DatabaseConfig{Host: "db"}, App: AppConfig{Timezone: "Mars/Olympus"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("dsn override without host", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{Port: "8080"}, Database: DatabaseConfig{DSNOverride: "postgres://x"}, App: AppConfig{Timezone: "UTC"}}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Host: "db"}, App: AppConfig{Timezone: "UTC"}}
		assert.EqualError(t, cfg.Validate(), "PORT is required")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "secret", Name: "registry", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=registry sslmode=disable", d.DSN())

	d.DSNOverride = "postgres://app@db/registry"
	assert.Equal(t, "postgres://app@db/registry", d.DSN())
}
