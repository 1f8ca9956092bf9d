package shipping

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Dimensions describes a package's size in centimeters.
// All three sides must be positive.
type Dimensions struct {
	LengthCm  float64
	BreadthCm float64
	HeightCm  float64
}

// NewDimensions creates validated package dimensions.
func NewDimensions(lengthCm, breadthCm, heightCm float64) (Dimensions, error) {
	d := Dimensions{LengthCm: lengthCm, BreadthCm: breadthCm, HeightCm: heightCm}
	if err := d.Validate(); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

// Validate checks that all three sides are positive.
func (d Dimensions) Validate() error {
	for _, side := range []struct {
		name  string
		value float64
	}{
		{"length", d.LengthCm},
		{"breadth", d.BreadthCm},
		{"height", d.HeightCm},
	} {
		if side.value <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"dimensions are invalid",
				fmt.Errorf("%s %g is not greater than 0", side.name, side.value),
			)
		}
	}
	return nil
}

// RateRequest carries the serviceability parameters for a rate-quote call.
// Every field is required; validation happens before any network call.
type RateRequest struct {
	PickupPostcode   string
	DeliveryPostcode string
	WeightKg         float64
	Dims             Dimensions
	COD              bool
}

// Validate checks all serviceability parameters are present and positive.
func (r RateRequest) Validate() error {
	if r.PickupPostcode == "" {
		return errs.NewValueIsRequiredError("pickup_postcode")
	}
	if r.DeliveryPostcode == "" {
		return errs.NewValueIsRequiredError("delivery_postcode")
	}
	if r.WeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%g is not greater than 0", r.WeightKg),
		)
	}
	return r.Dims.Validate()
}

// RateQuote is one courier offer from the aggregator. Quotes are ephemeral:
// they live in the orchestrator's working memory for the duration of one
// shipment-creation attempt and are never persisted. Selecting a quote is a
// caller (operator/UI) decision.
type RateQuote struct {
	CourierID         string  `json:"courier_company_id"`
	CourierName       string  `json:"courier_name"`
	Rate              float64 `json:"rate"`
	EstimatedDelivery string  `json:"etd"`
	CODAvailable      bool    `json:"cod_available"`
}

// PickupLocation is a configured pickup address registered with the aggregator.
type PickupLocation struct {
	Name     string `json:"pickup_location"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Postcode string `json:"pin_code"`
	Phone    string `json:"phone"`
}
