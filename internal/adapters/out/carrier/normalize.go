package carrier

import (
	"encoding/json"
	"strconv"

	"fulfillment/internal/core/domain/model/shipping"
)

// identityRule names one place an identifier may appear in a creation
// response. Rules are tried in order; the first hit wins.
type identityRule struct {
	nested bool
	key    string
}

// The aggregator's creation endpoint has shipped several response shapes
// over time: identifiers at the top level, under a data envelope, and
// sometimes only a shipment ID with no order ID alongside it. The rule
// tables below pin the precedence so every shape normalizes the same way.
var (
	orderIDRules = []identityRule{
		{nested: false, key: "order_id"},
		{nested: true, key: "order_id"},
		{nested: false, key: "shipment_id"},
		{nested: true, key: "shipment_id"},
	}
	shipmentIDRules = []identityRule{
		{nested: false, key: "shipment_id"},
		{nested: true, key: "shipment_id"},
	}
	awbRules = []identityRule{
		{nested: false, key: "awb_code"},
		{nested: true, key: "awb_code"},
	}
)

// normalizeIdentity extracts the carrier identifiers from a raw creation
// response body. Returns ErrNoShipmentIdentity when no rule yields an
// order ID, whatever the HTTP status was.
func normalizeIdentity(body []byte) (shipping.ShipmentIdentity, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return shipping.ShipmentIdentity{}, &UpstreamError{Op: ErrNoShipmentIdentity, Body: string(body)}
	}

	var nested map[string]json.RawMessage
	if raw, ok := top["data"]; ok {
		// A data envelope that is not an object is ignored, not an error.
		_ = json.Unmarshal(raw, &nested)
	}

	identity := shipping.ShipmentIdentity{
		OrderID:    firstMatch(orderIDRules, top, nested),
		ShipmentID: firstMatch(shipmentIDRules, top, nested),
		AWB:        firstMatch(awbRules, top, nested),
	}
	if identity.OrderID == "" {
		return shipping.ShipmentIdentity{}, &UpstreamError{Op: ErrNoShipmentIdentity, Body: string(body)}
	}
	return identity, nil
}

func firstMatch(rules []identityRule, top, nested map[string]json.RawMessage) string {
	for _, rule := range rules {
		source := top
		if rule.nested {
			source = nested
		}
		if raw, ok := source[rule.key]; ok {
			if value := scalarToString(raw); value != "" {
				return value
			}
		}
	}
	return ""
}

// scalarToString renders a JSON string or number as its string form.
// Other JSON kinds, null included, yield the empty string.
func scalarToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}
