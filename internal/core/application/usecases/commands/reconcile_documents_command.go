package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// ReconcileDocumentsCommand triggers a retry of document generation for all
// orders whose shipment creation committed but whose label generation failed.
//
// Example:
//
//	cmd := NewReconcileDocumentsCommand()
//	handler := NewReconcileDocumentsCommandHandler(uowFactory, gateway, logger)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Reconciliation failed: %v", err)
//	}
type ReconcileDocumentsCommand struct {
	guard guard.ConstructorGuard
}

var ErrReconcileDocumentsCommandIsNotConstructed = errors.New(
	"ReconcileDocumentsCommand must be created via NewReconcileDocumentsCommand constructor",
)

// NewReconcileDocumentsCommand creates a command to trigger the document sweep.
// This is a parameterless command that processes all orders awaiting documents.
func NewReconcileDocumentsCommand() ReconcileDocumentsCommand {
	return ReconcileDocumentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileDocumentsCommandIsNotConstructed)
}
