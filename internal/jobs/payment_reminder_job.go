package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"courier/internal/core/application/usecases/queries"
)

// paymentReminderSchedule fires every morning at 09:00 server time.
const paymentReminderSchedule = "0 0 9 * * *"

// DirectEmailSender sends a single email through the effective
// notification configuration.
type DirectEmailSender interface {
	SendDirectEmail(ctx context.Context, to, subject, body string) error
}

// PaymentReminderJob emails senders whose shipment payments are still
// pending. Runs once a day so a forgotten payment never sits silent.
type PaymentReminderJob struct {
	pendingPayments queries.GetPendingPaymentsQueryHandler
	sender          DirectEmailSender
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewPaymentReminderJob creates a job that reminds senders about
// outstanding payments.
func NewPaymentReminderJob(
	pendingPayments queries.GetPendingPaymentsQueryHandler,
	sender DirectEmailSender,
	logger *slog.Logger,
) *PaymentReminderJob {
	return &PaymentReminderJob{
		pendingPayments: pendingPayments,
		sender:          sender,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "payment_reminder_job"),
	}
}

// Start schedules the reminder run.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc(paymentReminderSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started (running daily)")
	return nil
}

// Run executes one reminder pass. Exposed so an operator can trigger it
// outside the schedule.
func (j *PaymentReminderJob) Run(ctx context.Context) {
	pending, err := j.pendingPayments.Handle(ctx, queries.NewGetPendingPaymentsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reminder job failed to load pending payments", "error", err)
		return
	}

	for _, p := range pending {
		if p.SenderEmail == "" {
			continue
		}

		subject := fmt.Sprintf("Payment Reminder: Bill No %d", p.BillNo)
		body := fmt.Sprintf(
			"Dear %s,\n\nThe payment of %s for your courier (Bill No: %d) is still pending. "+
				"Please complete it so delivery can proceed.\n",
			p.SenderName, p.Amount.StringFixed(2), p.BillNo)

		if err := j.sender.SendDirectEmail(ctx, p.SenderEmail, subject, body); err != nil {
			j.logger.ErrorContext(ctx, "Payment reminder send failed",
				"bill_no", p.BillNo, "error", err)
		}
	}
}

// Stop stops the payment reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
