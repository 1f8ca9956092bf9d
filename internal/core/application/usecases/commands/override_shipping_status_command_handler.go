package commands

import (
	"context"
	"log/slog"
)

// OverrideShippingStatusCommandHandler applies operator status overrides.
// Every override is logged with both the old and new status, since it
// bypasses the state machine and leaves no other trace of why.
type OverrideShippingStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewOverrideShippingStatusCommandHandler creates a handler for status overrides.
func NewOverrideShippingStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) OverrideShippingStatusCommandHandler {
	return OverrideShippingStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "override_shipping_status"),
	}
}

// Handle sets the order's shipping status to the commanded value.
func (h *OverrideShippingStatusCommandHandler) Handle(ctx context.Context, cmd OverrideShippingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.ShippingStatus()
	if err = aggregate.OverrideShippingStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "shipping status overridden",
		"order_id", cmd.OrderID().String(),
		"from", previous.String(),
		"to", cmd.Status().String())
	return nil
}
