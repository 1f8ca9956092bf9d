package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// SyncTrackingCommand triggers a tracking poll for all shipped orders,
// promoting those the carrier reports as delivered.
type SyncTrackingCommand struct {
	guard guard.ConstructorGuard
}

var ErrSyncTrackingCommandIsNotConstructed = errors.New(
	"SyncTrackingCommand must be created via NewSyncTrackingCommand constructor",
)

// NewSyncTrackingCommand creates a command to trigger the tracking sweep.
// This is a parameterless command that processes all in-transit orders.
func NewSyncTrackingCommand() SyncTrackingCommand {
	return SyncTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SyncTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSyncTrackingCommandIsNotConstructed)
}
