package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.Cache.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.Hour, cfg.Reminder.Lead)
	assert.Equal(t, "0 9 * * *", cfg.Reminder.DailySpec)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("API_URL", "https://tasks.example.com")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("CACHE_PATH", "/tmp/taskcli-test/cache.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REMINDER_LEAD_MINUTES", "15")
	t.Setenv("REMINDER_DAILY_SPEC", "30 8 * * *")

	cfg := LoadConfig()

	assert.Equal(t, "https://tasks.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/taskcli-test/cache.db", cfg.Cache.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 15*time.Minute, cfg.Reminder.Lead)
	assert.Equal(t, "30 8 * * *", cfg.Reminder.DailySpec)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SOME_STRING", "value")
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BAD_INT", "not-a-number")

	assert.Equal(t, "value", getEnv("SOME_STRING", "default"))
	assert.Equal(t, "default", getEnv("SOME_MISSING", "default"))
	assert.Equal(t, 42, getEnvAsInt("SOME_INT", 7))
	assert.Equal(t, 7, getEnvAsInt("SOME_BAD_INT", 7))
	assert.Equal(t, 7, getEnvAsInt("SOME_MISSING_INT", 7))
}
