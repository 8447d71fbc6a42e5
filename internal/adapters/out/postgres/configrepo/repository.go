// Package configrepo persists the single admin-managed notification
// configuration row.
package configrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courier/internal/core/domain/model/notification"
)

// configRowID pins the table to a single row; every save targets it.
const configRowID = 1

// ConfigDTO represents the database structure for notification channel
// credentials.
type ConfigDTO struct {
	ID            int16  `gorm:"primaryKey"`
	SMTPHost      string `gorm:"type:varchar(255)"`
	SMTPPort      int    `gorm:"type:int"`
	SMTPUsername  string `gorm:"type:varchar(255)"`
	SMTPPassword  string `gorm:"type:text"`
	SMTPUseTLS    *bool
	SMSAccountSID string `gorm:"type:varchar(255)"`
	SMSAuthToken  string `gorm:"type:text"`
	SMSFromNumber string `gorm:"type:varchar(50)"`
}

// TableName specifies the database table name for the configuration row.
func (ConfigDTO) TableName() string {
	return "notification_configs"
}

// GormNotificationConfigRepository implements NotificationConfigRepository using GORM.
type GormNotificationConfigRepository struct {
	db *gorm.DB
}

// NewGormNotificationConfigRepository creates a new GORM notification config repository.
func NewGormNotificationConfigRepository(db *gorm.DB) *GormNotificationConfigRepository {
	return &GormNotificationConfigRepository{db: db}
}

// Get retrieves the stored configuration. Returns (nil, nil) when no
// configuration has been saved yet.
func (r *GormNotificationConfigRepository) Get(ctx context.Context) (*notification.Config, error) {
	var dto ConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", configRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &notification.Config{
		SMTPHost:      dto.SMTPHost,
		SMTPPort:      dto.SMTPPort,
		SMTPUsername:  dto.SMTPUsername,
		SMTPPassword:  dto.SMTPPassword,
		SMTPUseTLS:    dto.SMTPUseTLS,
		SMSAccountSID: dto.SMSAccountSID,
		SMSAuthToken:  dto.SMSAuthToken,
		SMSFromNumber: dto.SMSFromNumber,
	}, nil
}

// Save inserts or updates the configuration row.
func (r *GormNotificationConfigRepository) Save(ctx context.Context, config *notification.Config) error {
	dto := ConfigDTO{
		ID:            configRowID,
		SMTPHost:      config.SMTPHost,
		SMTPPort:      config.SMTPPort,
		SMTPUsername:  config.SMTPUsername,
		SMTPPassword:  config.SMTPPassword,
		SMTPUseTLS:    config.SMTPUseTLS,
		SMSAccountSID: config.SMSAccountSID,
		SMSAuthToken:  config.SMSAuthToken,
		SMSFromNumber: config.SMSFromNumber,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
