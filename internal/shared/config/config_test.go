package config_test

import (
	"errors"
	"testing"
	"time"

	"catering/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("EMAIL", "bookings@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")

	cfg := config.Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.GetServerAddress())
	assert.Equal(t, config.MailDriverSMTP, cfg.Mail.Driver)
	assert.Equal(t, "smtp.gmail.com:587", cfg.SMTPAddress())
	assert.Equal(t, config.SMTPSecuritySTARTTLS, cfg.Mail.Security)
	assert.Equal(t, 30*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "https://anjanicateringservices.netlify.app/", cfg.Business.Website)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("MAIL_DRIVER", "LOG")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SECURITY", "tls")
	t.Setenv("SMTP_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := config.Load()

	assert.Equal(t, ":8081", cfg.GetServerAddress())
	assert.Equal(t, config.MailDriverLog, cfg.Mail.Driver)
	assert.Equal(t, 465, cfg.Mail.SMTPPort)
	assert.Equal(t, config.SMTPSecurityTLS, cfg.Mail.Security)
	assert.Equal(t, 5*time.Second, cfg.Mail.Timeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestValidateListsEveryMissingKey(t *testing.T) {
	t.Setenv("EMAIL", "")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("ADMIN_EMAIL", "")

	err := config.Load().Validate()
	require.Error(t, err)

	var missing *config.MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"EMAIL", "EMAIL_PASSWORD", "ADMIN_EMAIL"}, missing.Keys)
}

func TestValidateMissingAdminOnly(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_EMAIL", "")

	var missing *config.MissingError
	require.ErrorAs(t, config.Load().Validate(), &missing)
	assert.Equal(t, []string{"ADMIN_EMAIL"}, missing.Keys)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown mail driver", key: "MAIL_DRIVER", val: "carrier-pigeon"},
		{name: "unknown smtp security", key: "SMTP_SECURITY", val: "ssl3"},
		{name: "port out of range", key: "SMTP_PORT", val: "70000"},
		{name: "rate limit without redis", key: "RATE_LIMIT_ENABLED", val: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("REDIS_ADDR", "")
			t.Setenv(tt.key, tt.val)

			err := config.Load().Validate()
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
