package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

// TrackShipmentQueryHandler fetches live tracking from the carrier gateway.
// The carrier payload is passed through untransformed; the local order record
// is not touched by on-demand tracking.
type TrackShipmentQueryHandler struct {
	gateway ports.CarrierGateway
}

// NewTrackShipmentQueryHandler creates a handler for tracking queries.
func NewTrackShipmentQueryHandler(gateway ports.CarrierGateway) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{gateway: gateway}
}

// Handle executes the tracking call against the carrier.
func (h TrackShipmentQueryHandler) Handle(ctx context.Context, query TrackShipmentQuery) (shipping.TrackingSnapshot, error) {
	if err := query.Validate(); err != nil {
		return shipping.TrackingSnapshot{}, err
	}

	return h.gateway.Track(ctx, query.Tracking())
}
