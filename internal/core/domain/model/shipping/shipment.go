package shipping

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ShipmentRequest is a forward-shipment creation request: the order's address
// fields plus the selected courier and the computed total weight.
type ShipmentRequest struct {
	OrderRef string // the store-side order id, echoed to the aggregator

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	AddressLine string
	City        string
	State       string
	Country     string
	Postcode    string

	CourierID string
	WeightKg  float64
	Dims      Dimensions
	Subtotal  float64
	COD       bool
}

// Validate checks the preconditions for submitting a forward shipment.
func (r ShipmentRequest) Validate() error {
	if r.OrderRef == "" {
		return errs.NewValueIsRequiredError("order reference")
	}
	if r.CourierID == "" {
		return errs.NewValueIsRequiredError("courier id")
	}
	if r.Postcode == "" {
		return errs.NewValueIsRequiredError("delivery postcode")
	}
	if r.WeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%g is not greater than 0", r.WeightKg),
		)
	}
	return nil
}

// ShipmentIdentity is the normalized identifier set extracted from the
// aggregator's shipment-creation response. OrderID is always present on a
// successful normalization; ShipmentID and AWB may be empty when the
// aggregator omitted them.
type ShipmentIdentity struct {
	OrderID    string
	ShipmentID string
	AWB        string
}

// ShipmentIDPtr returns the shipment id as a nullable pointer for the Order
// aggregate's carrier linkage, nil when absent.
func (i ShipmentIdentity) ShipmentIDPtr() *string {
	if i.ShipmentID == "" {
		return nil
	}
	v := i.ShipmentID
	return &v
}

// AWBPtr returns the airway-bill code as a nullable pointer, nil when absent.
func (i ShipmentIdentity) AWBPtr() *string {
	if i.AWB == "" {
		return nil
	}
	v := i.AWB
	return &v
}

// Documents holds the printable document URLs for a created shipment.
// Either field may be nil: the aggregator generates them asynchronously and
// a response without URLs is not an error.
type Documents struct {
	LabelURL    *string
	ManifestURL *string
}

// IsEmpty reports whether neither document URL is present.
func (d Documents) IsEmpty() bool {
	return d.LabelURL == nil && d.ManifestURL == nil
}
