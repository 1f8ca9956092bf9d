package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery fetches the live tracking state for a shipment by
// carrier shipment id or by AWB code.
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	tracking shipping.TrackingQuery

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query. At least one of shipment id
// or AWB code must be present.
func NewTrackShipmentQuery(tracking shipping.TrackingQuery) (TrackShipmentQuery, error) {
	query := TrackShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTracking(tracking); err != nil {
		return TrackShipmentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// Tracking returns the shipment identifiers to track.
func (q TrackShipmentQuery) Tracking() shipping.TrackingQuery {
	return q.tracking
}

func (q *TrackShipmentQuery) setTracking(tracking shipping.TrackingQuery) error {
	if err := tracking.Validate(); err != nil {
		return err
	}

	q.tracking = tracking
	return nil
}
