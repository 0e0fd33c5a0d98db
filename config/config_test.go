package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "prod") // skip .env overload

	c := LoadConfig()

	assert.Equal(t, ":3000", c.ServerPort)
	assert.Equal(t, "./public", c.StaticDir)
	assert.Equal(t, "smtp.gmail.com", c.SmtpHost)
	assert.Equal(t, "587", c.SmtpPort)
	assert.Equal(t, "Your Login Code", c.MailSubject)
	assert.Equal(t, "Auth Service", c.MailFromName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("SERVER_PORT", ":8080")
	t.Setenv("DATABASE_DSN", "postgres://localhost/auth")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "sender")
	t.Setenv("MAIL_FROM", "noreply@example.com")
	t.Setenv("KAFKA_BROKER", "broker:9092")
	t.Setenv("KAFKA_TOPIC", "user-events")

	c := LoadConfig()

	assert.Equal(t, ":8080", c.ServerPort)
	assert.Equal(t, "postgres://localhost/auth", c.DatabaseDSN)
	assert.Equal(t, "mail.example.com", c.SmtpHost)
	assert.Equal(t, "2525", c.SmtpPort)
	assert.Equal(t, "sender", c.SmtpUser)
	assert.Equal(t, "noreply@example.com", c.MailFrom)
	assert.Equal(t, "broker:9092", c.KafkaBroker)
	assert.Equal(t, "user-events", c.KafkaTopic)
}
