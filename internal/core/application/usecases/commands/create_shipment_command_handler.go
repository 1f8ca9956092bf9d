package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

var (
	// ErrOrderCancelled rejects shipment creation for a cancelled order.
	// Cancellation is written outside this workflow, so the guard re-reads
	// the business status on every attempt.
	ErrOrderCancelled = errors.New("order is cancelled")

	// ErrOrderShippingCancelled rejects shipment creation for an order whose
	// shipping was cancelled.
	ErrOrderShippingCancelled = errors.New("order shipping is cancelled")

	// ErrCarrierOrderExists rejects shipment creation for an order that
	// already has a carrier order attached. The carrier side must never see
	// the same order twice.
	ErrCarrierOrderExists = errors.New("order already has a carrier shipment")
)

// CreateShipmentResult reports the outcome of a shipment creation, carrier
// identifiers plus whatever documents were obtained.
type CreateShipmentResult struct {
	CarrierOrderID    string
	CarrierShipmentID *string
	TrackingID        *string
	LabelURL          *string
	ManifestURL       *string

	// DocumentsPending is set when the shipment was created and persisted
	// but label/manifest generation failed. The reconciliation sweep will
	// retry; the shipment itself is never rolled back.
	DocumentsPending bool
}

// CreateShipmentCommandHandler orchestrates the two-phase shipping workflow:
// create the carrier shipment and persist the identifiers, then generate
// documents and persist the URLs. The persistence between the phases is the
// durable checkpoint that makes a document failure recoverable without
// re-submitting the order to the carrier.
type CreateShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.CarrierGateway
	logger     *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.CarrierGateway,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "create_shipment"),
	}
}

// Handle processes the shipment creation command.
//
// Guards reject cancelled orders, orders whose shipping is cancelled, and
// orders that already carry a carrier order id. After the carrier accepts the shipment the
// identifiers are committed before document generation is attempted, so a
// document failure leaves the order in processing with its carrier linkage
// intact rather than undoing the carrier-side creation.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (CreateShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return CreateShipmentResult{}, err
	}

	if aggregate.Status() == order.StatusCancelled {
		return CreateShipmentResult{}, ErrOrderCancelled
	}
	if aggregate.ShippingStatus() == order.ShippingStatusCancelled {
		return CreateShipmentResult{}, ErrOrderShippingCancelled
	}
	if aggregate.CarrierOrderID() != nil {
		return CreateShipmentResult{}, ErrCarrierOrderExists
	}

	identity, err := h.gateway.CreateShipment(ctx, shipmentRequest(aggregate, cmd))
	if err != nil {
		return CreateShipmentResult{}, err
	}

	if err = aggregate.AttachCarrierOrder(identity.OrderID, identity.ShipmentIDPtr(), identity.AWBPtr()); err != nil {
		return CreateShipmentResult{}, err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return CreateShipmentResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	result := CreateShipmentResult{
		CarrierOrderID:    identity.OrderID,
		CarrierShipmentID: identity.ShipmentIDPtr(),
		TrackingID:        identity.AWBPtr(),
	}

	if identity.ShipmentID == "" {
		h.logger.WarnContext(ctx, "carrier returned no shipment id, documents deferred",
			"order_id", cmd.OrderID().String(),
			"carrier_order_id", identity.OrderID)
		result.DocumentsPending = true
		return result, nil
	}

	docs, err := h.gateway.GenerateDocuments(ctx, identity.ShipmentID)
	if err != nil || docs.IsEmpty() {
		h.logger.WarnContext(ctx, "document generation failed, shipment kept",
			"order_id", cmd.OrderID().String(),
			"carrier_shipment_id", identity.ShipmentID,
			"error", errString(err))
		result.DocumentsPending = true
		return result, nil
	}

	if err = h.attachDocuments(ctx, cmd, docs); err != nil {
		h.logger.WarnContext(ctx, "persisting document URLs failed, shipment kept",
			"order_id", cmd.OrderID().String(),
			"error", err.Error())
		result.DocumentsPending = true
		return result, nil
	}

	result.LabelURL = docs.LabelURL
	result.ManifestURL = docs.ManifestURL
	return result, nil
}

// attachDocuments records the document URLs in a fresh transaction, re-reading
// the order so the update applies to the committed checkpoint state.
func (h *CreateShipmentCommandHandler) attachDocuments(ctx context.Context, cmd CreateShipmentCommand, docs shipping.Documents) error {
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

	if err = aggregate.AttachDocuments(docs.LabelURL, docs.ManifestURL); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func shipmentRequest(aggregate *order.Order, cmd CreateShipmentCommand) shipping.ShipmentRequest {
	return shipping.ShipmentRequest{
		OrderRef:      aggregate.ID().String(),
		CustomerName:  aggregate.Customer().Name,
		CustomerEmail: aggregate.Customer().Email,
		CustomerPhone: aggregate.Customer().Phone,
		AddressLine:   aggregate.Address().Line,
		City:          aggregate.Address().City,
		State:         aggregate.Address().State,
		Country:       aggregate.Address().Country,
		Postcode:      aggregate.Address().Postcode,
		CourierID:     cmd.CourierID(),
		WeightKg:      aggregate.TotalWeight(),
		Dims:          cmd.Dims(),
		Subtotal:      aggregate.TotalPrice().InexactFloat64(),
		COD:           cmd.COD(),
	}
}

func errString(err error) string {
	if err == nil {
		return "empty document response"
	}
	return err.Error()
}
