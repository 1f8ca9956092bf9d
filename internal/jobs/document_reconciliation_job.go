package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DocumentReconciliationJob retries label and manifest generation for orders
// whose shipment exists at the carrier but whose documents are still missing.
// Runs every minute.
type DocumentReconciliationJob struct {
	handler commands.ReconcileDocumentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDocumentReconciliationJob creates a new job for document reconciliation.
func NewDocumentReconciliationJob(handler commands.ReconcileDocumentsCommandHandler, logger *slog.Logger) *DocumentReconciliationJob {
	return &DocumentReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "document_reconciliation_job"),
	}
}

// Start begins the document reconciliation job to run every minute.
func (j *DocumentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileDocumentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep is the normal steady state, not a failure
			if !errors.Is(err, commands.ErrNoOrdersAwaitingDocuments) {
				j.logger.ErrorContext(ctx, "Document reconciliation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Document reconciliation job started (running every minute)")
	return nil
}

// Stop stops the document reconciliation job.
func (j *DocumentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Document reconciliation job stopped")
}
