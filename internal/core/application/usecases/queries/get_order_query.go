// Package queries contains read-only operations against system state.
// Implements the Query side of the CQRS architecture: queries bypass the
// domain aggregates and read projections directly, or delegate to the
// carrier gateway for carrier-side state.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full shipping state.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the read model for a single order, the order's
// own fields plus everything the shipping workflow has attached so far.
type GetOrderQueryResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	AddressLine     string `json:"address_line"`
	AddressCity     string `json:"address_city"`
	AddressState    string `json:"address_state"`
	AddressCountry  string `json:"address_country"`
	AddressPostcode string `json:"address_postcode"`

	ItemWeights   []float64 `json:"item_weights"`
	TotalPrice    string    `json:"total_price"`
	PaymentAmount string    `json:"payment_amount"`
	CouponCode    *string   `json:"coupon_code,omitempty"`

	Status         string `json:"status"`
	PaymentStatus  string `json:"payment_status"`
	ShippingStatus string `json:"shipping_status"`

	CarrierOrderID    *string `json:"carrier_order_id,omitempty"`
	CarrierShipmentID *string `json:"carrier_shipment_id,omitempty"`
	TrackingID        *string `json:"tracking_id,omitempty"`
	LabelURL          *string `json:"label_url,omitempty"`
	ManifestURL       *string `json:"manifest_url,omitempty"`

	RefundStatus    *string `json:"refund_status,omitempty"`
	RefundID        *string `json:"refund_id,omitempty"`
	RefundAmount    *string `json:"refund_amount,omitempty"`
	CancellationFee *string `json:"cancellation_fee,omitempty"`
}
