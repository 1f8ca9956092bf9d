package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

// ErrNoOrdersInTransit signals an empty tracking sweep. Callers treat it as
// a quiet no-op rather than a failure.
var ErrNoOrdersInTransit = errors.New("no orders in transit")

// SyncTrackingCommandHandler polls carrier tracking for shipped orders and
// marks them delivered when the carrier says so. A tracking failure for one
// order does not abort the sweep.
type SyncTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.CarrierGateway
	logger     *slog.Logger
}

// NewSyncTrackingCommandHandler creates a handler for the tracking sweep.
func NewSyncTrackingCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.CarrierGateway,
	logger *slog.Logger,
) SyncTrackingCommandHandler {
	return SyncTrackingCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "sync_tracking"),
	}
}

// Handle processes the tracking sweep.
//
// The in-transit list is read in its own short transaction, and each
// delivered order is marked in a transaction of its own. No transaction is
// held open across a carrier call, and one order's failure leaves deliveries
// already recorded for the others committed.
//
// Returns ErrNoOrdersInTransit when no orders are shipped.
func (h *SyncTrackingCommandHandler) Handle(ctx context.Context, cmd SyncTrackingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.ordersInTransit(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoOrdersInTransit
	}

	for _, aggregate := range orders {
		query := trackingQuery(aggregate)
		if query.ShipmentID == "" && query.AWBCode == "" {
			continue
		}

		snapshot, trackErr := h.gateway.Track(ctx, query)
		if trackErr != nil {
			h.logger.WarnContext(ctx, "tracking poll failed",
				"order_id", aggregate.ID().String(),
				"error", trackErr.Error())
			continue
		}

		if !strings.EqualFold(snapshot.CurrentStatus, "delivered") {
			continue
		}

		if err = h.markDelivered(ctx, aggregate.ID()); err != nil {
			h.logger.WarnContext(ctx, "recording delivery failed, will retry next sweep",
				"order_id", aggregate.ID().String(),
				"error", err.Error())
			continue
		}

		h.logger.InfoContext(ctx, "order delivered",
			"order_id", aggregate.ID().String())
	}

	return nil
}

// ordersInTransit reads the sweep candidates in a transaction of their own,
// released before any carrier call is made.
func (h *SyncTrackingCommandHandler) ordersInTransit(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllInTransit(ctx)
}

// markDelivered records the delivery in a fresh transaction, re-reading the
// order so the update applies to its current persisted state.
func (h *SyncTrackingCommandHandler) markDelivered(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func trackingQuery(aggregate *order.Order) shipping.TrackingQuery {
	var query shipping.TrackingQuery
	if id := aggregate.CarrierShipmentID(); id != nil {
		query.ShipmentID = *id
	}
	if awb := aggregate.TrackingID(); awb != nil {
		query.AWBCode = *awb
	}
	return query
}
