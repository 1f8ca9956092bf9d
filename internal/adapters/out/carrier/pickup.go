package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fulfillment/internal/core/domain/model/shipping"
)

const pickupLocationsPath = "/v1/external/settings/company/pickup"

// PickupLocations lists the pickup addresses registered with the account.
func (g *Gateway) PickupLocations(ctx context.Context) ([]shipping.PickupLocation, error) {
	token, err := g.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	status, body, err := g.do(ctx, http.MethodGet, pickupLocationsPath, token, nil)
	if err != nil {
		return nil, g.wrapTransport(ErrPickupLocations, err)
	}
	if status != http.StatusOK {
		return nil, &UpstreamError{Op: ErrPickupLocations, StatusCode: status, Body: string(body)}
	}

	var envelope struct {
		Data struct {
			ShippingAddress []shipping.PickupLocation `json:"shipping_address"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &UpstreamError{Op: ErrPickupLocations, Body: fmt.Sprintf("malformed pickup response: %s", err)}
	}
	return envelope.Data.ShippingAddress, nil
}
