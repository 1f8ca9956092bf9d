// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic carrier housekeeping the service depends on.
//
// # Available Jobs
//
// 1. DocumentReconciliationJob - Runs every minute to retry label and manifest
// generation for shipments that were created without documents.
// 2. TrackingSyncJob - Runs every five minutes to poll carrier tracking and
// mark shipped orders delivered.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileDocumentsHandler, syncTrackingHandler, logger)
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
// Both jobs treat an empty sweep (no orders awaiting documents, nothing in
// transit) as the normal steady state and stay quiet about it. Any other
// error is logged; a failed job start stops jobs that already started.
package jobs
