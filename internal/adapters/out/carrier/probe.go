package carrier

import (
	"context"
	"errors"
	"net/http"

	"fulfillment/internal/core/domain/model/shipping"
)

// probe serviceability parameters. A metro-to-metro route with a small
// parcel, only used to confirm the account can quote rates.
var probeRequest = shipping.RateRequest{
	PickupPostcode:   "400001",
	DeliveryPostcode: "110001",
	WeightKg:         0.5,
	Dims:             shipping.Dimensions{LengthCm: 10, BreadthCm: 10, HeightCm: 10},
}

// CheckAuth performs a diagnostic login followed by a serviceability probe.
// It reports the outcome instead of failing: bad credentials produce an
// unauthenticated probe, not an error. Only transport-level failures that
// prevent reaching the aggregator at all surface as errors.
func (g *Gateway) CheckAuth(ctx context.Context) (shipping.AuthProbe, error) {
	probe := shipping.AuthProbe{BaseURL: g.config.BaseURL}

	_, err := g.authenticate(ctx)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			probe.StatusCode = upstream.StatusCode
			probe.Detail = upstream.Body
			if upstream.Timeout || upstream.StatusCode == 0 {
				return probe, err
			}
			return probe, nil
		}
		return probe, err
	}
	probe.Authenticated = true
	probe.StatusCode = http.StatusOK

	quotes, err := g.QuoteRates(ctx, probeRequest)
	if err != nil {
		probe.Detail = err.Error()
		return probe, nil
	}
	probe.ServiceabilityOK = true
	probe.CourierCount = len(quotes)
	return probe, nil
}
