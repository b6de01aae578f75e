package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("WORKER_POLL_INTERVAL", "")
	t.Setenv("WORKER_STALE_AFTER", "")
	t.Setenv("ADMIN_SIGNUP_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 15*time.Minute, cfg.Worker.StaleAfter)
	assert.True(t, cfg.Auth.SignupEnabled)
	assert.Equal(t, uint64(768), cfg.Qdrant.VectorSize)
	assert.Equal(t, 60*time.Second, cfg.Stats.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("ADMIN_SIGNUP_ENABLED", "false")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("WORKER_CONCURRENCY", "not-a-number")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 465, cfg.Mail.SMTPPort)
	assert.False(t, cfg.Auth.SignupEnabled)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 3, cfg.Worker.Concurrency)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("STATS_CACHE_TTL", "soon")
	assert.Equal(t, 60*time.Second, getEnvAsDuration("STATS_CACHE_TTL", "60s"))
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "require",
	}}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=require", cfg.GetDatabaseDSN())
}
