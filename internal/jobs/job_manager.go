package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	documentReconciliationJob *DocumentReconciliationJob
	trackingSyncJob           *TrackingSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileDocumentsHandler commands.ReconcileDocumentsCommandHandler,
	syncTrackingHandler commands.SyncTrackingCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		documentReconciliationJob: NewDocumentReconciliationJob(reconcileDocumentsHandler, logger),
		trackingSyncJob:           NewTrackingSyncJob(syncTrackingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.documentReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start document reconciliation job: %w", err)
	}

	if err := jm.trackingSyncJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.documentReconciliationJob.Stop()
		return fmt.Errorf("failed to start tracking sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingSyncJob.Stop()
	jm.documentReconciliationJob.Stop()
}
