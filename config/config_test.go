package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_TLS", "false")

	cfg := Load()

	require.Equal(t, "test-secret", cfg.SessionSecret)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "sqlite://blog.db", cfg.DatabaseURI)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.False(t, cfg.SMTPTLS)
	assert.Equal(t, "templates/*.html", cfg.TemplateGlob)
}

func TestEnvHelpersIgnoreMalformedValues(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	t.Setenv("SOME_BOOL", "not-a-bool")

	assert.Equal(t, 42, getEnvInt("SOME_INT", 42))
	assert.True(t, getEnvBool("SOME_BOOL", true))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING", "fallback"))
}
