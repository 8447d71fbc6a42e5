package cmd

import (
	"courier/internal/core/domain/model/notification"
)

// Config carries everything the process needs from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Timezone used when rendering timestamps in outbound
	// notifications. Defaults to Asia/Kolkata.
	Timezone string

	// Notification holds the environment-level channel defaults. An
	// admin-saved configuration row overrides these field by field.
	Notification notification.Config
}
