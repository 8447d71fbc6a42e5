package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetNotificationConfigQueryHandler retrieves the stored notification
// channel overrides for the admin settings screen. Uses direct SQL
// queries for optimal read performance in the CQRS pattern.
type GetNotificationConfigQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationConfigQueryHandler creates a handler for notification config queries.
func NewGetNotificationConfigQueryHandler(db *gorm.DB) GetNotificationConfigQueryHandler {
	return GetNotificationConfigQueryHandler{db: db}
}

// Handle executes the query. Returns nil when no configuration row has
// been saved yet.
func (h GetNotificationConfigQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationConfigQuery,
) (*NotificationConfigResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			smtp_host,
			smtp_port,
			smtp_username,
			smtp_password,
			smtp_use_tls,
			sms_account_sid,
			sms_auth_token,
			sms_from_number
		FROM notification_configs
		LIMIT 1`).Row()

	var (
		response NotificationConfigResponse
		password string
		token    string
	)
	err := row.Scan(
		&response.SMTPHost,
		&response.SMTPPort,
		&response.SMTPUsername,
		&password,
		&response.SMTPUseTLS,
		&response.SMSAccountSID,
		&token,
		&response.SMSFromNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response.SMTPPasswordSet = password != ""
	response.SMSAuthTokenSet = token != ""

	return &response, nil
}
