// Package jobs provides scheduled background tasks for the courier service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the courier service.
//
// # Available Jobs
//
// 1. PaymentReminderJob - Runs every morning to email senders whose payments are still pending
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingPaymentsHandler, dispatcher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job logs send failures per recipient and keeps going;
// one bad address never blocks the rest of the batch. Failed job starts
// will stop any already running jobs.
package jobs
