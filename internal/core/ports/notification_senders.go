package ports

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/shipment"
)

// ErrChannelNotConfigured is returned by senders when the channel's
// credentials are missing. The dispatcher records such attempts as
// skipped rather than failed.
var ErrChannelNotConfigured = errors.New("notification channel is not configured")

// EmailSender delivers a single email message over the configured
// channel. Implementations must honor the context deadline.
type EmailSender interface {
	SendEmail(ctx context.Context, cfg notification.Config, to, subject, body string) error
}

// SMSSender delivers a single SMS message over the configured channel.
// Implementations must honor the context deadline.
type SMSSender interface {
	SendSMS(ctx context.Context, cfg notification.Config, to, body string) error
}

// Notifier fans a shipment status change out to the interested parties.
// Implementations must not block the caller; delivery happens in the
// background after the triggering transaction commits.
type Notifier interface {
	ShipmentStatusChanged(ctx context.Context, aggregate *shipment.Shipment, assigned *agent.Agent)
}
