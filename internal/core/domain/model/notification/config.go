// Package notification contains the admin-managed configuration for
// outbound notification channels. Credentials live in the database so
// admins can rotate them without redeploying; empty fields fall back to
// environment defaults.
package notification

// Config holds notification channel credentials. A single row exists at
// most; empty string fields mean "use the environment default".
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	// SMTPUseTLS is nil when the admin never set it, so the
	// environment default still applies.
	SMTPUseTLS *bool

	SMSAccountSID string
	SMSAuthToken  string
	SMSFromNumber string
}

// MergeInto overlays the stored config onto base, field by field. Only
// fields the admin actually set override the base values.
func (c *Config) MergeInto(base Config) Config {
	if c == nil {
		return base
	}
	merged := base
	if c.SMTPHost != "" {
		merged.SMTPHost = c.SMTPHost
	}
	if c.SMTPPort != 0 {
		merged.SMTPPort = c.SMTPPort
	}
	if c.SMTPUsername != "" {
		merged.SMTPUsername = c.SMTPUsername
	}
	if c.SMTPPassword != "" {
		merged.SMTPPassword = c.SMTPPassword
	}
	if c.SMTPUseTLS != nil {
		merged.SMTPUseTLS = c.SMTPUseTLS
	}
	if c.SMSAccountSID != "" {
		merged.SMSAccountSID = c.SMSAccountSID
	}
	if c.SMSAuthToken != "" {
		merged.SMSAuthToken = c.SMSAuthToken
	}
	if c.SMSFromNumber != "" {
		merged.SMSFromNumber = c.SMSFromNumber
	}
	return merged
}

// EmailConfigured reports whether the email channel can be used.
func (c Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0
}

// SMSConfigured reports whether the SMS channel can be used.
func (c Config) SMSConfigured() bool {
	return c.SMSAccountSID != "" && c.SMSAuthToken != "" && c.SMSFromNumber != ""
}
