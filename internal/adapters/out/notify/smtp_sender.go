// Package notify contains the thin outbound transports for the
// notification channels: SMTP for email and an HTTP messaging API for
// SMS. Both report ports.ErrChannelNotConfigured when their credentials
// are missing so the dispatcher can record the attempt as skipped.
package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"courier/internal/core/domain/model/notification"
	"courier/internal/core/ports"
)

// SMTPSender delivers email over a plain SMTP session with optional
// STARTTLS. One connection per message; the service's notification
// volume does not justify pooling.
type SMTPSender struct{}

// NewSMTPSender creates an SMTP email sender.
func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

// SendEmail delivers one message through the configured SMTP server.
// The context deadline bounds the whole session, dial included.
func (s *SMTPSender) SendEmail(ctx context.Context, cfg notification.Config, to, subject, body string) error {
	if !cfg.EmailConfigured() {
		return ports.ErrChannelNotConfigured
	}
	if to == "" {
		return ports.ErrChannelNotConfigured
	}

	from := cfg.SMTPUsername
	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(10 * time.Second))
	}

	client, err := smtp.NewClient(conn, cfg.SMTPHost)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	if useTLS(cfg) {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(nil); err != nil {
				return fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}

	if cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
		auth := smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	msg := buildMessage(from, to, subject, body)
	if _, err = w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}

// useTLS defaults to STARTTLS unless the admin explicitly disabled it.
func useTLS(cfg notification.Config) bool {
	if cfg.SMTPUseTLS == nil {
		return true
	}
	return *cfg.SMTPUseTLS
}

// buildMessage assembles a minimal RFC 5322 message.
func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return b.String()
}
