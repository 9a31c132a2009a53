package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "verdantlog", c.DBName)
	assert.InDelta(t, 49.3, c.BaselineDailyKg, 1e-9)
	assert.Equal(t, 300, c.SummaryCacheTTLSec)
	assert.Equal(t, 60, c.StreakAuditMinutes)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	c := AppConfig{AppPort: "9000", BaselineDailyKg: 12.5, RateLimitPerMinute: 5}
	applyDefaults(&c)

	assert.Equal(t, "9000", c.AppPort)
	assert.InDelta(t, 12.5, c.BaselineDailyKg, 1e-9)
	assert.Equal(t, 5, c.RateLimitPerMinute)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8888")
	t.Setenv("BASELINE_DAILY_KG", "40.0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	assert.Equal(t, "8888", c.AppPort)
	assert.InDelta(t, 40.0, c.BaselineDailyKg, 1e-9)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,, "))
	assert.Empty(t, splitAndTrim(""))
}
