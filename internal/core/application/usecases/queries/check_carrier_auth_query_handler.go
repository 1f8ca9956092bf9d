package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

// CheckCarrierAuthQueryHandler probes the carrier account via one gateway per
// candidate base URL, the configured one first. Bad credentials are reported
// in the probes, not returned as an error, so operators can diagnose
// configuration from the response body.
type CheckCarrierAuthQueryHandler struct {
	gateways []ports.CarrierGateway
}

// NewCheckCarrierAuthQueryHandler creates a handler for carrier diagnostics.
// Gateways are probed in the order given.
func NewCheckCarrierAuthQueryHandler(gateways ...ports.CarrierGateway) CheckCarrierAuthQueryHandler {
	return CheckCarrierAuthQueryHandler{gateways: gateways}
}

// Handle runs the authentication and serviceability probe against every
// candidate base URL. A transport failure on one candidate is recorded in its
// probe and does not stop the remaining candidates.
func (h CheckCarrierAuthQueryHandler) Handle(ctx context.Context, query CheckCarrierAuthQuery) ([]shipping.AuthProbe, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	probes := make([]shipping.AuthProbe, 0, len(h.gateways))
	for _, gateway := range h.gateways {
		probe, err := gateway.CheckAuth(ctx)
		if err != nil && probe.Detail == "" {
			probe.Detail = err.Error()
		}
		probes = append(probes, probe)
	}
	return probes, nil
}
