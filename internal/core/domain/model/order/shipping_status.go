package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ShippingStatus represents the shipping workflow state of an order.
// It implements a state machine with defined transitions so that the
// fulfillment workflow can never move an order backwards.
//
// State transitions (automated workflow):
//
//	pending ──> processing ──> shipped ──> delivered
//	   │             │            │
//	   └─────────────┴────────────┴──> cancelled
//
// delivered and cancelled are terminal: no further carrier calls are made
// for orders in either state. Manual operator overrides bypass this machine
// entirely (see Order.OverrideShippingStatus).
type ShippingStatus int

const (
	// ShippingStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ShippingStatus values.
	ShippingStatusUnknown ShippingStatus = iota

	// ShippingStatusPending is the initial status: no carrier order exists yet.
	ShippingStatusPending

	// ShippingStatusProcessing indicates a carrier order has been created and
	// its identifiers persisted, but shipping documents are not yet available.
	ShippingStatusProcessing

	// ShippingStatusShipped indicates label/manifest documents were generated
	// and the shipment is on its way.
	ShippingStatusShipped

	// ShippingStatusDelivered indicates the carrier reported delivery.
	// Terminal for the automated workflow.
	ShippingStatusDelivered

	// ShippingStatusCancelled indicates the shipment was cancelled by an
	// operator. Terminal for the automated workflow.
	ShippingStatusCancelled
)

func getShippingStatusStrings() map[ShippingStatus]string {
	return map[ShippingStatus]string{
		ShippingStatusUnknown:    "unknown",
		ShippingStatusPending:    "pending",
		ShippingStatusProcessing: "processing",
		ShippingStatusShipped:    "shipped",
		ShippingStatusDelivered:  "delivered",
		ShippingStatusCancelled:  "cancelled",
	}
}

func getValidShippingStatusStrings() map[ShippingStatus]string {
	//nolint:exhaustive // ShippingStatusUnknown is intentionally excluded as it's invalid
	return map[ShippingStatus]string{
		ShippingStatusPending:    "pending",
		ShippingStatusProcessing: "processing",
		ShippingStatusShipped:    "shipped",
		ShippingStatusDelivered:  "delivered",
		ShippingStatusCancelled:  "cancelled",
	}
}

// ShippingStatusFromString parses the persisted/API string form of a shipping status.
// Returns an error for unrecognized values.
func ShippingStatusFromString(s string) (ShippingStatus, error) {
	for status, str := range getValidShippingStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ShippingStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipping status is invalid",
		fmt.Errorf("%q is not a valid shipping status", s),
	)
}

// Validate checks if the ShippingStatus value is valid.
// ShippingStatusUnknown (0) and any other values are invalid.
func (s ShippingStatus) Validate() error {
	if _, ok := getValidShippingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping status is invalid",
			fmt.Errorf("%d is not a valid shipping status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status as used in the API and
// persistence. Implements fmt.Stringer and is safe on any value.
func (s ShippingStatus) String() string {
	if str, ok := getShippingStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the automated workflow has finished with this order.
// No further carrier calls are attempted once a terminal status is reached.
func (s ShippingStatus) IsTerminal() bool {
	return s == ShippingStatusDelivered || s == ShippingStatusCancelled
}

// BeginProcessing transitions the status to processing.
//
// Valid transitions:
//   - pending -> processing (carrier order created and persisted)
//
// Any other source status is rejected: a carrier order must not be created
// twice, and shipped/terminal orders never re-enter processing.
func (s ShippingStatus) BeginProcessing() (ShippingStatus, error) {
	if s != ShippingStatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"shipping status is invalid",
			fmt.Errorf("%s is not a valid status to begin processing", s),
		)
	}
	return ShippingStatusProcessing, nil
}

// MarkShipped transitions the status to shipped.
//
// Valid transitions:
//   - processing -> shipped (shipping documents generated)
func (s ShippingStatus) MarkShipped() (ShippingStatus, error) {
	if s != ShippingStatusProcessing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"shipping status is invalid",
			fmt.Errorf("%s is not a valid status to mark shipped", s),
		)
	}
	return ShippingStatusShipped, nil
}

// MarkDelivered transitions the status to delivered.
//
// Valid transitions:
//   - shipped -> delivered (carrier reported delivery)
func (s ShippingStatus) MarkDelivered() (ShippingStatus, error) {
	if s != ShippingStatusShipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"shipping status is invalid",
			fmt.Errorf("%s is not a valid status to mark delivered", s),
		)
	}
	return ShippingStatusDelivered, nil
}

// Cancel transitions the status to cancelled.
//
// Valid from any non-terminal status. Cancelling a delivered or already
// cancelled order is rejected.
func (s ShippingStatus) Cancel() (ShippingStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"shipping status is invalid",
			fmt.Errorf("%s is terminal and cannot be cancelled", s),
		)
	}
	return ShippingStatusCancelled, nil
}
