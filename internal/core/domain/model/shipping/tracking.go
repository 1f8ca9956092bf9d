package shipping

import (
	"encoding/json"

	"fulfillment/internal/pkg/errs"
)

// TrackingQuery identifies a shipment to track, by the aggregator's shipment
// id or by the carrier airway-bill code. Exactly one identifier is expected;
// when both are present the shipment id takes precedence.
type TrackingQuery struct {
	ShipmentID string
	AWBCode    string
}

// Validate rejects a query that carries neither identifier. The check runs
// before any network call.
func (q TrackingQuery) Validate() error {
	if q.ShipmentID == "" && q.AWBCode == "" {
		return errs.NewValueIsRequiredError("shipment_id or awb_code")
	}
	return nil
}

// TrackingSnapshot is the carrier's tracking payload. Raw is passed through to
// the caller uninterpreted; CurrentStatus is the best-effort extracted status
// string used by the delivery sweep (empty when the payload carried none).
type TrackingSnapshot struct {
	Raw           json.RawMessage
	CurrentStatus string
}

// AuthProbe is the result of a diagnostic authentication attempt against one
// aggregator base URL.
type AuthProbe struct {
	BaseURL          string `json:"base_url"`
	Authenticated    bool   `json:"authenticated"`
	StatusCode       int    `json:"status_code,omitempty"`
	Detail           string `json:"detail,omitempty"`
	ServiceabilityOK bool   `json:"serviceability_ok"`
	CourierCount     int    `json:"courier_count,omitempty"`
}
