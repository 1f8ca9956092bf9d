package carrier

import (
	"context"
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/shipping"
)

const createOrderPath = "/v1/external/orders/create/adhoc"

// adhocOrderPayload is the aggregator's quick-order creation body. One
// order line per request; multi-line orders are out of scope here.
type adhocOrderPayload struct {
	OrderID         string           `json:"order_id"`
	OrderDate       string           `json:"order_date"`
	BillingName     string           `json:"billing_customer_name"`
	BillingLastName string           `json:"billing_last_name"`
	BillingAddress  string           `json:"billing_address"`
	BillingCity     string           `json:"billing_city"`
	BillingState    string           `json:"billing_state"`
	BillingCountry  string           `json:"billing_country"`
	BillingPincode  string           `json:"billing_pincode"`
	BillingEmail    string           `json:"billing_email"`
	BillingPhone    string           `json:"billing_phone"`
	ShippingIsBill  bool             `json:"shipping_is_billing"`
	OrderItems      []adhocOrderItem `json:"order_items"`
	PaymentMethod   string           `json:"payment_method"`
	SubTotal        float64          `json:"sub_total"`
	CourierID       string           `json:"courier_id,omitempty"`
	Length          float64          `json:"length"`
	Breadth         float64          `json:"breadth"`
	Height          float64          `json:"height"`
	Weight          float64          `json:"weight"`
}

type adhocOrderItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
}

// CreateShipment registers the order with the aggregator and normalizes
// the identifiers it hands back. A 2xx response without an order ID is
// treated as a failure.
func (g *Gateway) CreateShipment(ctx context.Context, request shipping.ShipmentRequest) (shipping.ShipmentIdentity, error) {
	if err := request.Validate(); err != nil {
		return shipping.ShipmentIdentity{}, err
	}

	token, err := g.authenticate(ctx)
	if err != nil {
		return shipping.ShipmentIdentity{}, err
	}

	method := "Prepaid"
	if request.COD {
		method = "COD"
	}
	payload := adhocOrderPayload{
		OrderID:        request.OrderRef,
		OrderDate:      time.Now().UTC().Format("2006-01-02 15:04"),
		BillingName:    request.CustomerName,
		BillingAddress: request.AddressLine,
		BillingCity:    request.City,
		BillingState:   request.State,
		BillingCountry: request.Country,
		BillingPincode: request.Postcode,
		BillingEmail:   request.CustomerEmail,
		BillingPhone:   request.CustomerPhone,
		ShippingIsBill: true,
		OrderItems: []adhocOrderItem{{
			Name:         "Order " + request.OrderRef,
			SKU:          request.OrderRef,
			Units:        1,
			SellingPrice: request.Subtotal,
		}},
		PaymentMethod: method,
		SubTotal:      request.Subtotal,
		CourierID:     request.CourierID,
		Length:        request.Dims.LengthCm,
		Breadth:       request.Dims.BreadthCm,
		Height:        request.Dims.HeightCm,
		Weight:        request.WeightKg,
	}

	status, body, err := g.do(ctx, http.MethodPost, createOrderPath, token, payload)
	if err != nil {
		return shipping.ShipmentIdentity{}, g.wrapTransport(ErrShipmentCreation, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return shipping.ShipmentIdentity{}, &UpstreamError{Op: ErrShipmentCreation, StatusCode: status, Body: string(body)}
	}

	return normalizeIdentity(body)
}
