package config_test

import (
	"testing"
	"time"

	"agency-contact-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("SMTP_TIMEOUT_SECONDS", "")
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 10*time.Second, cfg.SMTPTimeout)
		assert.NotEmpty(t, cfg.ContactEmailTo)
		assert.NotEmpty(t, cfg.AllowedOrigins)
	})

	t.Run("Should read overrides from environment", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_PORT", "465")
		t.Setenv("SMTP_TIMEOUT_SECONDS", "3")
		t.Setenv("SMTP_IMPLICIT_TLS", "true")
		t.Setenv("CONTACT_EMAIL_TO", "inbox@example.com")
		t.Setenv("AGENCY_WEBSITE", "https://example.com/")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
		t.Setenv("GIN_MODE", "release")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
		assert.Equal(t, "465", cfg.SMTPPort)
		assert.Equal(t, 3*time.Second, cfg.SMTPTimeout)
		assert.True(t, cfg.SMTPImplicitTLS)
		assert.Equal(t, "inbox@example.com", cfg.ContactEmailTo)
		assert.Equal(t, "https://example.com", cfg.AgencyWebsite)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("Should fall back on non-positive timeout", func(t *testing.T) {
		t.Setenv("SMTP_TIMEOUT_SECONDS", "0")
		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.SMTPTimeout)
	})
}
