package jobs

import (
	"fmt"
	"log/slog"

	"courier/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentReminderJob *PaymentReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingPaymentsHandler queries.GetPendingPaymentsQueryHandler,
	sender DirectEmailSender,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentReminderJob: NewPaymentReminderJob(pendingPaymentsHandler, sender, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentReminderJob.Stop()
}
