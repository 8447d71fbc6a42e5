package commands

import (
	"context"

	"courier/internal/pkg/errs"
)

// SettingsInvalidator drops any cached view of the notification
// configuration so the next read sees the stored values.
type SettingsInvalidator interface {
	Invalidate()
}

// SaveNotificationConfigCommandHandler persists notification channel
// credentials and invalidates the in-process settings cache after
// commit. Admin-only.
type SaveNotificationConfigCommandHandler struct {
	uowFactory ConfigUoWFactory
	cache      SettingsInvalidator
}

// NewSaveNotificationConfigCommandHandler creates a handler for
// notification config updates.
func NewSaveNotificationConfigCommandHandler(uowFactory ConfigUoWFactory, cache SettingsInvalidator) SaveNotificationConfigCommandHandler {
	return SaveNotificationConfigCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the config update command.
func (h SaveNotificationConfigCommandHandler) Handle(ctx context.Context, cmd SaveNotificationConfigCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsAdmin() {
		return errs.NewNotAuthorizedError("save notification config")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cfg := cmd.Config()
	if err := uow.NotificationConfigRepository().Save(ctx, &cfg); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate()

	return nil
}
