// Package jobs provides scheduled background tasks for the flower shop backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. PendingRebroadcastJob - Runs every 30 seconds to re-announce unclaimed orders to store feeds
// 2. PaymentReminderJob - Runs every minute to nudge customers with stale unpaid orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindPendingHandler, remindAwaitingPaymentHandler, logger)
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
//   - Both jobs treat an empty work queue (ErrNoPendingOrders,
//     ErrNoAwaitingPaymentOrders) as a quiet tick, not a failure
//   - Failed job starts will stop any already running jobs
package jobs
