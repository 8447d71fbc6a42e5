package queries

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrGetNotificationConfigQueryIsNotConstructed = errors.New(
	"GetNotificationConfigQuery must be created via NewGetNotificationConfigQuery constructor",
)

// GetNotificationConfigQuery represents a request for the stored
// notification channel overrides.
type GetNotificationConfigQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNotificationConfigQuery creates a query for the stored
// notification configuration.
func NewGetNotificationConfigQuery() GetNotificationConfigQuery {
	return GetNotificationConfigQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationConfigQueryIsNotConstructed)
}

// NotificationConfigResponse represents the stored channel overrides.
// Secrets are reported as set or unset, never echoed back.
type NotificationConfigResponse struct {
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPasswordSet bool
	SMTPUseTLS      *bool

	SMSAccountSID   string
	SMSAuthTokenSet bool
	SMSFromNumber   string
}
