package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator plugs go-playground/validator into echo's Bind/Validate flow.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request validator used by the server.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}
	return nil
}

// CalculateShippingRequest carries the serviceability parameters for a
// rate-quote call.
type CalculateShippingRequest struct {
	PickupPostcode   string  `json:"pickup_postcode" validate:"required"`
	DeliveryPostcode string  `json:"delivery_postcode" validate:"required"`
	Weight           float64 `json:"weight" validate:"required,gt=0"`
	Length           float64 `json:"length" validate:"required,gt=0"`
	Breadth          float64 `json:"breadth" validate:"required,gt=0"`
	Height           float64 `json:"height" validate:"required,gt=0"`
	COD              bool    `json:"cod"`
}

// CreateShippingOrderRequest selects the order and courier for shipment
// creation. Package dimensions default to a 10cm cube when omitted.
type CreateShippingOrderRequest struct {
	OrderID   string   `json:"order_id" validate:"required,uuid"`
	CourierID string   `json:"courier_id" validate:"required"`
	Length    *float64 `json:"length,omitempty" validate:"omitempty,gt=0"`
	Breadth   *float64 `json:"breadth,omitempty" validate:"omitempty,gt=0"`
	Height    *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	COD       bool     `json:"cod"`
}

// CreateShippingOrderResponse reports the normalized carrier identifiers and
// whether documents are still pending.
type CreateShippingOrderResponse struct {
	CarrierOrderID    string  `json:"carrier_order_id"`
	CarrierShipmentID *string `json:"carrier_shipment_id,omitempty"`
	TrackingID        *string `json:"tracking_id,omitempty"`
	LabelURL          *string `json:"label_url,omitempty"`
	ManifestURL       *string `json:"manifest_url,omitempty"`
	DocumentsPending  bool    `json:"documents_pending"`
}

// TrackShipmentRequest identifies the shipment to track. Exactly one
// identifier is required; shipment id wins when both are present.
type TrackShipmentRequest struct {
	ShipmentID string `json:"shipment_id"`
	AWBCode    string `json:"awb_code"`
}

// CreateOrderRequest captures a new order for fulfillment.
type CreateOrderRequest struct {
	IdempotencyKey string    `json:"idempotency_key"`
	CustomerName   string    `json:"customer_name" validate:"required"`
	CustomerEmail  string    `json:"customer_email" validate:"required,email"`
	CustomerPhone  string    `json:"customer_phone" validate:"required"`
	AddressLine    string    `json:"address_line" validate:"required"`
	AddressCity    string    `json:"address_city" validate:"required"`
	AddressState   string    `json:"address_state" validate:"required"`
	AddressCountry string    `json:"address_country" validate:"required"`
	Postcode       string    `json:"postcode" validate:"required"`
	ItemWeights    []float64 `json:"item_weights" validate:"required,min=1,dive,gt=0"`
	TotalPrice     string    `json:"total_price" validate:"required"`
	PaymentAmount  string    `json:"payment_amount"`
	CouponCode     *string   `json:"coupon_code,omitempty"`
}

// CreateOrderResponse returns the captured order's identifier.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// OverrideShippingStatusRequest sets an order's shipping status directly.
type OverrideShippingStatusRequest struct {
	ShippingStatus string `json:"shipping_status" validate:"required"`
}

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
