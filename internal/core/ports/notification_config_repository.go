package ports

import (
	"context"

	"courier/internal/core/domain/model/notification"
)

// NotificationConfigRepository stores the single admin-managed
// notification channel configuration row.
type NotificationConfigRepository interface {
	// Get retrieves the stored configuration. Returns (nil, nil)
	// when no configuration has been saved yet.
	Get(ctx context.Context) (*notification.Config, error)

	// Save inserts or updates the configuration row.
	Save(ctx context.Context, config *notification.Config) error
}
