package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

// GetPickupLocationsQueryHandler lists pickup addresses via the carrier gateway.
type GetPickupLocationsQueryHandler struct {
	gateway ports.CarrierGateway
}

// NewGetPickupLocationsQueryHandler creates a handler for pickup-location queries.
func NewGetPickupLocationsQueryHandler(gateway ports.CarrierGateway) GetPickupLocationsQueryHandler {
	return GetPickupLocationsQueryHandler{gateway: gateway}
}

// Handle fetches the pickup locations registered with the carrier account.
func (h GetPickupLocationsQueryHandler) Handle(ctx context.Context, query GetPickupLocationsQuery) ([]shipping.PickupLocation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.gateway.PickupLocations(ctx)
}
