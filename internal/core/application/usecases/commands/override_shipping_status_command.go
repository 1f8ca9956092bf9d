package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrOverrideShippingStatusCommandIsNotConstructed = errors.New(
	"OverrideShippingStatusCommand must be created via NewOverrideShippingStatusCommand constructor",
)

// OverrideShippingStatusCommand represents an operator request to set an
// order's shipping status directly, outside the automated state machine.
// Used to correct drift between the local status and the carrier's reality.
type OverrideShippingStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.ShippingStatus

	guard guard.ConstructorGuard
}

// NewOverrideShippingStatusCommand creates a command to set the shipping
// status of an order. Any valid status is accepted, backward moves included.
func NewOverrideShippingStatusCommand(orderID kernel.UUID, status order.ShippingStatus) (OverrideShippingStatusCommand, error) {
	cmd := OverrideShippingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return OverrideShippingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideShippingStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideShippingStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status is overridden.
func (c OverrideShippingStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target shipping status.
func (c OverrideShippingStatusCommand) Status() order.ShippingStatus {
	return c.status
}

func (c *OverrideShippingStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OverrideShippingStatusCommand) setStatus(status order.ShippingStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
