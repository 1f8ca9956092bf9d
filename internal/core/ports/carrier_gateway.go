package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipping"
)

// CarrierGateway defines the contract with the external shipping aggregator.
// Every call authenticates against the aggregator before performing its
// operation; implementations do not cache credentials or tokens.
type CarrierGateway interface {
	// QuoteRates returns the couriers able to serve the given route along
	// with their rates and delivery estimates.
	QuoteRates(ctx context.Context, request shipping.RateRequest) ([]shipping.RateQuote, error)

	// CreateShipment registers the order with the aggregator and returns
	// the identifiers the carrier assigned to it. The returned identity
	// always carries an order ID; shipment ID and AWB may be absent when
	// the carrier defers courier assignment.
	CreateShipment(ctx context.Context, request shipping.ShipmentRequest) (shipping.ShipmentIdentity, error)

	// GenerateDocuments requests the shipping label and manifest for a
	// carrier shipment. Requires a non-empty shipment ID.
	GenerateDocuments(ctx context.Context, shipmentID string) (shipping.Documents, error)

	// Track fetches the current tracking state for a shipment, by carrier
	// shipment ID or by AWB code.
	Track(ctx context.Context, query shipping.TrackingQuery) (shipping.TrackingSnapshot, error)

	// PickupLocations lists the pickup addresses registered with the
	// aggregator account.
	PickupLocations(ctx context.Context) ([]shipping.PickupLocation, error)

	// CheckAuth verifies carrier credentials and basic API reachability.
	// It never fails on an unauthenticated account; the probe reports the
	// outcome instead.
	CheckAuth(ctx context.Context) (shipping.AuthProbe, error)
}
