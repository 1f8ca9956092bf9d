package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCarrierOrderAlreadyAttached is returned when trying to attach carrier
	// identifiers to an order that already has a carrier order. Re-creation of a
	// carrier-side shipment is not supported; duplicate submissions are rejected.
	ErrCarrierOrderAlreadyAttached = errors.New("a carrier order is already attached to this order")

	// ErrNoCarrierShipment is returned when attaching shipping documents to an
	// order that has no carrier shipment id. Documents can only exist for a
	// created shipment.
	ErrNoCarrierShipment = errors.New("order has no carrier shipment id")

	// ErrNoDocumentURLs is returned when AttachDocuments is called with neither
	// a label nor a manifest URL.
	ErrNoDocumentURLs = errors.New("no document URLs to attach")
)

// Customer holds the contact details captured at checkout.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Address is the delivery address captured at checkout.
type Address struct {
	Line     string
	City     string
	State    string
	Country  string
	Postcode string
}

// CarrierLinkage holds the identifiers and document URLs obtained from the
// shipping aggregator. Each field is populated progressively as the workflow
// advances and is nil until set.
type CarrierLinkage struct {
	OrderID     *string
	ShipmentID  *string
	TrackingID  *string
	LabelURL    *string
	ManifestURL *string
}

// Refund holds cancellation/refund fields written by the refund process.
// The fulfillment workflow only reads them.
type Refund struct {
	Status          *string
	ID              *string
	Amount          *decimal.Decimal
	CancellationFee *decimal.Decimal
}

// Details groups the commercial and customer data needed to construct an Order.
type Details struct {
	IdempotencyKey string
	Customer       Customer
	Address        Address
	ItemWeights    []float64
	TotalPrice     decimal.Decimal
	PaymentAmount  decimal.Decimal
	CouponCode     *string
}

// Order is the aggregate root of the fulfillment workflow. It owns the
// shipping state machine and the carrier linkage, and is the only shared
// mutable resource the workflow touches.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer and address fields required for shipping must be present
//   - Item weights must be positive; monetary amounts must be non-negative
//   - A carrier shipment id implies a carrier order id; document URLs imply a
//     carrier shipment id
//   - Automated shipping-status transitions only move forward
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id             kernel.UUID
	createdAt      time.Time
	idempotencyKey string

	customer      Customer
	address       Address
	itemWeights   []float64
	totalPrice    decimal.Decimal
	paymentAmount decimal.Decimal
	couponCode    *string

	status         Status
	paymentStatus  string
	shippingStatus ShippingStatus

	linkage CarrierLinkage
	refund  Refund

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in pending business and shipping status.
// All shipping-relevant fields are validated; the returned order carries no
// carrier linkage yet.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
//	    Customer:    order.Customer{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210"},
//	    Address:     order.Address{Line: "14 MG Road", City: "Mumbai", State: "MH", Country: "India", Postcode: "400001"},
//	    ItemWeights: []float64{0.5, 0.25},
//	    TotalPrice:  decimal.NewFromInt(1499),
//	})
func NewOrder(id kernel.UUID, details Details) (*Order, error) {
	o := &Order{
		createdAt:      time.Now().UTC(),
		status:         StatusPending,
		paymentStatus:  "pending",
		shippingStatus: ShippingStatusPending,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without running state
// transitions. Statuses and the carrier-linkage invariants are still validated
// so corrupt rows cannot produce an impossible aggregate.
func RestoreOrder(
	id kernel.UUID,
	details Details,
	createdAt time.Time,
	status Status,
	paymentStatus string,
	shippingStatus ShippingStatus,
	linkage CarrierLinkage,
	refund Refund,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		paymentStatus: paymentStatus,
		refund:        refund,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setStatus(status),
		o.setShippingStatus(shippingStatus),
		o.setLinkage(linkage),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Returns ErrOrderIsNotConstructed otherwise. Called when reconstructing orders
// from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns the order capture time (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IdempotencyKey returns the client-supplied duplicate-submission key.
func (o *Order) IdempotencyKey() string {
	return o.idempotencyKey
}

// Customer returns the customer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Address returns the delivery address.
func (o *Order) Address() Address {
	return o.address
}

// ItemWeights returns a copy of the per-item weights in kilograms.
func (o *Order) ItemWeights() []float64 {
	weights := make([]float64, len(o.itemWeights))
	copy(weights, o.itemWeights)
	return weights
}

// TotalWeight returns the shipment weight in kilograms, the sum of the
// order's per-item weight entries.
func (o *Order) TotalWeight() float64 {
	var total float64
	for _, w := range o.itemWeights {
		total += w
	}
	return total
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// PaymentAmount returns the captured payment amount.
func (o *Order) PaymentAmount() decimal.Decimal {
	return o.paymentAmount
}

// CouponCode returns the applied coupon code, or nil.
func (o *Order) CouponCode() *string {
	return cloneString(o.couponCode)
}

// Status returns the business lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment status as written by payment processing.
func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

// ShippingStatus returns the current shipping workflow status.
func (o *Order) ShippingStatus() ShippingStatus {
	return o.shippingStatus
}

// CarrierOrderID returns the aggregator's order id, or nil if no carrier
// order has been created.
func (o *Order) CarrierOrderID() *string {
	return cloneString(o.linkage.OrderID)
}

// CarrierShipmentID returns the aggregator's shipment id, or nil.
func (o *Order) CarrierShipmentID() *string {
	return cloneString(o.linkage.ShipmentID)
}

// TrackingID returns the carrier airway-bill code, or nil.
func (o *Order) TrackingID() *string {
	return cloneString(o.linkage.TrackingID)
}

// LabelURL returns the printable shipping label URL, or nil.
func (o *Order) LabelURL() *string {
	return cloneString(o.linkage.LabelURL)
}

// ManifestURL returns the shipment manifest URL, or nil.
func (o *Order) ManifestURL() *string {
	return cloneString(o.linkage.ManifestURL)
}

// Refund returns the refund/cancellation fields.
func (o *Order) Refund() Refund {
	return Refund{
		Status:          cloneString(o.refund.Status),
		ID:              cloneString(o.refund.ID),
		Amount:          cloneDecimal(o.refund.Amount),
		CancellationFee: cloneDecimal(o.refund.CancellationFee),
	}
}

// AttachCarrierOrder records the identifiers returned by the aggregator for a
// freshly created shipment and advances the shipping status to processing.
//
// This is the first durable checkpoint of the workflow: callers must persist
// the order immediately after a successful call, before attempting document
// generation, so the carrier-side shipment reference survives later failures.
//
// Business rules enforced:
//   - carrierOrderID is required
//   - an order with an existing carrier order is rejected
//     (ErrCarrierOrderAlreadyAttached); duplicate submissions must not create
//     a second carrier-side shipment
//   - the shipping status must allow the pending -> processing transition
func (o *Order) AttachCarrierOrder(carrierOrderID string, carrierShipmentID, trackingID *string) error {
	if carrierOrderID == "" {
		return errs.NewValueIsRequiredError("carrier order id")
	}
	if o.linkage.OrderID != nil {
		return ErrCarrierOrderAlreadyAttached
	}

	newStatus, err := o.shippingStatus.BeginProcessing()
	if err != nil {
		return err
	}

	o.shippingStatus = newStatus
	o.linkage.OrderID = &carrierOrderID
	o.linkage.ShipmentID = cloneString(carrierShipmentID)
	o.linkage.TrackingID = cloneString(trackingID)
	return nil
}

// AttachDocuments records the label and/or manifest URLs for the shipment and
// advances the shipping status to shipped.
//
// Business rules enforced:
//   - the order must have a carrier shipment id (ErrNoCarrierShipment)
//   - at least one URL must be supplied (ErrNoDocumentURLs)
//   - the shipping status must allow the processing -> shipped transition
//
// Supplying only one URL keeps any previously attached value for the other.
func (o *Order) AttachDocuments(labelURL, manifestURL *string) error {
	if o.linkage.ShipmentID == nil {
		return ErrNoCarrierShipment
	}
	if labelURL == nil && manifestURL == nil {
		return ErrNoDocumentURLs
	}

	newStatus, err := o.shippingStatus.MarkShipped()
	if err != nil {
		return err
	}

	o.shippingStatus = newStatus
	if labelURL != nil {
		o.linkage.LabelURL = cloneString(labelURL)
	}
	if manifestURL != nil {
		o.linkage.ManifestURL = cloneString(manifestURL)
	}
	return nil
}

// MarkDelivered advances the shipping status from shipped to delivered.
// Used by the tracking sweep when the carrier reports delivery.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.shippingStatus.MarkDelivered()
	if err != nil {
		return err
	}

	o.shippingStatus = newStatus
	return nil
}

// CancelShipping moves the shipping status to cancelled from any non-terminal
// state. Cancellation is always operator-initiated; the automated workflow
// never produces it.
func (o *Order) CancelShipping() error {
	newStatus, err := o.shippingStatus.Cancel()
	if err != nil {
		return err
	}

	o.shippingStatus = newStatus
	return nil
}

// OverrideShippingStatus sets the shipping status directly, bypassing the
// state machine. This is the operator escape hatch: any valid value is
// accepted and no check against the carrier's actual state is performed.
func (o *Order) OverrideShippingStatus(status ShippingStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.shippingStatus = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	return errors.Join(
		o.setCustomer(details.Customer),
		o.setAddress(details.Address),
		o.setItemWeights(details.ItemWeights),
		o.setAmounts(details.TotalPrice, details.PaymentAmount),
		func() error {
			o.idempotencyKey = details.IdempotencyKey
			o.couponCode = cloneString(details.CouponCode)
			return nil
		}(),
	)
}

func (o *Order) setCustomer(customer Customer) error {
	if customer.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if customer.Email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if customer.Phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddress(address Address) error {
	if address.Line == "" {
		return errs.NewValueIsRequiredError("address line")
	}
	if address.City == "" {
		return errs.NewValueIsRequiredError("address city")
	}
	if address.State == "" {
		return errs.NewValueIsRequiredError("address state")
	}
	if address.Country == "" {
		return errs.NewValueIsRequiredError("address country")
	}
	if address.Postcode == "" {
		return errs.NewValueIsRequiredError("address postcode")
	}
	o.address = address
	return nil
}

func (o *Order) setItemWeights(weights []float64) error {
	if len(weights) == 0 {
		return errs.NewValueIsRequiredError("item weights")
	}
	for _, w := range weights {
		if w <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"item weight is invalid",
				fmt.Errorf("%g is not greater than 0", w),
			)
		}
	}
	o.itemWeights = make([]float64, len(weights))
	copy(o.itemWeights, weights)
	return nil
}

func (o *Order) setAmounts(totalPrice, paymentAmount decimal.Decimal) error {
	if totalPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"total price is invalid",
			fmt.Errorf("%s is negative", totalPrice),
		)
	}
	if paymentAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment amount is invalid",
			fmt.Errorf("%s is negative", paymentAmount),
		)
	}
	o.totalPrice = totalPrice
	o.paymentAmount = paymentAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setShippingStatus(status ShippingStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.shippingStatus = status
	return nil
}

func (o *Order) setLinkage(linkage CarrierLinkage) error {
	if linkage.ShipmentID != nil && linkage.OrderID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier linkage is invalid",
			errors.New("a carrier shipment id requires a carrier order id"),
		)
	}
	if (linkage.LabelURL != nil || linkage.ManifestURL != nil) && linkage.ShipmentID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier linkage is invalid",
			errors.New("document URLs require a carrier shipment id"),
		)
	}

	o.linkage = CarrierLinkage{
		OrderID:     cloneString(linkage.OrderID),
		ShipmentID:  cloneString(linkage.ShipmentID),
		TrackingID:  cloneString(linkage.TrackingID),
		LabelURL:    cloneString(linkage.LabelURL),
		ManifestURL: cloneString(linkage.ManifestURL),
	}
	return nil
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDecimal(p *decimal.Decimal) *decimal.Decimal {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
