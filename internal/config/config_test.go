package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "HTTP_ADDR", "POSTGRES_DSN", "REDIS_ADDR", "KAFKA_BROKERS",
		"SERVICE_NAME", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "MAIL_FROM",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "storefront-api", cfg.ServiceName)
	assert.Equal(t, "sandbox.smtp.mailtrap.io", cfg.SMTPHost)
	assert.Equal(t, "2525", cfg.SMTPPort)
	assert.Equal(t, `"E-Commerce Store" <store@example.com>`, cfg.MailFrom)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,")
	t.Setenv("SMTP_USER", "user")
	t.Setenv("SMTP_PASS", "pass")

	cfg := Load()
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "user", cfg.SMTPUser)
	assert.Equal(t, "pass", cfg.SMTPPass)
}
