package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

// ErrNoOrdersAwaitingDocuments signals an empty sweep. Callers treat it as a
// quiet no-op rather than a failure.
var ErrNoOrdersAwaitingDocuments = errors.New("no orders awaiting documents")

// ReconcileDocumentsCommandHandler retries document generation for orders
// stuck in processing with a carrier shipment but no label. One carrier
// failure does not abort the sweep; the order is retried on the next run.
type ReconcileDocumentsCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.CarrierGateway
	logger     *slog.Logger
}

// NewReconcileDocumentsCommandHandler creates a handler for the document sweep.
func NewReconcileDocumentsCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.CarrierGateway,
	logger *slog.Logger,
) ReconcileDocumentsCommandHandler {
	return ReconcileDocumentsCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "reconcile_documents"),
	}
}

// Handle processes the document reconciliation sweep.
//
// The candidate list is read in its own short transaction, and each order
// gets its own transaction for the attach. No transaction is ever held open
// across a carrier call, and one order's failure leaves the documents already
// attached for the others committed.
//
// Returns ErrNoOrdersAwaitingDocuments when nothing needs reconciling.
func (h *ReconcileDocumentsCommandHandler) Handle(ctx context.Context, cmd ReconcileDocumentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.ordersAwaitingDocuments(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoOrdersAwaitingDocuments
	}

	for _, aggregate := range orders {
		shipmentID := aggregate.CarrierShipmentID()

		docs, docErr := h.gateway.GenerateDocuments(ctx, *shipmentID)
		if docErr != nil || docs.IsEmpty() {
			h.logger.WarnContext(ctx, "document retry failed, will retry next sweep",
				"order_id", aggregate.ID().String(),
				"carrier_shipment_id", *shipmentID,
				"error", errString(docErr))
			continue
		}

		if err = h.attachDocuments(ctx, aggregate.ID(), docs); err != nil {
			h.logger.WarnContext(ctx, "persisting document URLs failed, will retry next sweep",
				"order_id", aggregate.ID().String(),
				"carrier_shipment_id", *shipmentID,
				"error", err.Error())
			continue
		}

		h.logger.InfoContext(ctx, "documents reconciled",
			"order_id", aggregate.ID().String(),
			"carrier_shipment_id", *shipmentID)
	}

	return nil
}

// ordersAwaitingDocuments reads the sweep candidates in a transaction of
// their own, released before any carrier call is made.
func (h *ReconcileDocumentsCommandHandler) ordersAwaitingDocuments(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllAwaitingDocuments(ctx)
}

// attachDocuments records the document URLs in a fresh transaction, re-reading
// the order so the update applies to its current persisted state.
func (h *ReconcileDocumentsCommandHandler) attachDocuments(ctx context.Context, orderID kernel.UUID, docs shipping.Documents) error {
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

	if err = aggregate.AttachDocuments(docs.LabelURL, docs.ManifestURL); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
