package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/notification"
	"courier/internal/pkg/guard"
)

var ErrSaveNotificationConfigCommandIsNotConstructed = errors.New(
	"SaveNotificationConfigCommand must be created via NewSaveNotificationConfigCommand constructor",
)

// SaveNotificationConfigCommand represents an admin request to update
// the stored notification channel credentials.
type SaveNotificationConfigCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Caller
	config notification.Config

	guard guard.ConstructorGuard
}

// NewSaveNotificationConfigCommand creates a command to update the
// notification channel configuration. Empty fields keep the environment
// defaults.
func NewSaveNotificationConfigCommand(caller kernel.Caller, config notification.Config) (SaveNotificationConfigCommand, error) {
	if err := caller.Validate(); err != nil {
		return SaveNotificationConfigCommand{}, err
	}

	return SaveNotificationConfigCommand{
		caller: caller,
		config: config,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveNotificationConfigCommand) Validate() error {
	return c.guard.Validate(ErrSaveNotificationConfigCommandIsNotConstructed)
}

// Caller returns the identity and role attempting the change.
func (c SaveNotificationConfigCommand) Caller() kernel.Caller { return c.caller }

// Config returns the configuration to store.
func (c SaveNotificationConfigCommand) Config() notification.Config { return c.config }
