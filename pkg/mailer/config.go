package mailer

import (
	"os"
	"strconv"
)

// DefaultNotificationRecipient is the last tier of the notification-address
// fallback, used when neither NOTIFICATION_EMAIL nor SMTP_USER is set.
const DefaultNotificationRecipient = "shubhangmishra094@gmail.com"

// fromName is the display name on outgoing mail.
const fromName = "Shubhang Mishra Portfolio"

// Config holds SMTP gateway settings as read from the environment. Unset
// values stay zero here so the diagnostics endpoint can report what is
// actually configured; the SMTP client applies its own defaults
// (smtp.gmail.com:587) when dialing. Nothing is validated at startup; a
// missing host or credential surfaces as a failed connection check at
// request time.
type Config struct {
	Host              string
	Port              int
	Username          string
	Password          string
	NotificationEmail string
}

// ConfigFromEnv reads the SMTP_* and NOTIFICATION_EMAIL environment
// variables verbatim. A missing or unparseable SMTP_PORT is left as 0.
func ConfigFromEnv() Config {
	cfg := Config{
		Host:              os.Getenv("SMTP_HOST"),
		Username:          os.Getenv("SMTP_USER"),
		Password:          os.Getenv("SMTP_PASSWORD"),
		NotificationEmail: os.Getenv("NOTIFICATION_EMAIL"),
	}
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		cfg.Port = p
	}
	return cfg
}

// NotificationRecipient resolves where owner notifications go. The fallback
// order is a documented configuration contract and must be preserved:
// explicit NOTIFICATION_EMAIL, then the SMTP account identity, then
// DefaultNotificationRecipient.
func (c Config) NotificationRecipient() string {
	if c.NotificationEmail != "" {
		return c.NotificationEmail
	}
	if c.Username != "" {
		return c.Username
	}
	return DefaultNotificationRecipient
}
