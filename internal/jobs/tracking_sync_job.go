package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TrackingSyncJob polls the carrier for tracking updates on shipped orders
// and marks them delivered when the carrier reports delivery.
// Runs every five minutes.
type TrackingSyncJob struct {
	handler commands.SyncTrackingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTrackingSyncJob creates a new job for tracking synchronization.
func NewTrackingSyncJob(handler commands.SyncTrackingCommandHandler, logger *slog.Logger) *TrackingSyncJob {
	return &TrackingSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tracking_sync_job"),
	}
}

// Start begins the tracking sync job to run every five minutes.
func (j *TrackingSyncJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSyncTrackingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Nothing in transit is the normal steady state, not a failure
			if !errors.Is(err, commands.ErrNoOrdersInTransit) {
				j.logger.ErrorContext(ctx, "Tracking sync job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking sync job started (running every five minutes)")
	return nil
}

// Stop stops the tracking sync job.
func (j *TrackingSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking sync job stopped")
}
