package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create a carrier shipment for
// an existing order with the operator-selected courier.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID string
	dims      shipping.Dimensions
	cod       bool

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to ship an order with the given
// courier and package dimensions.
func NewCreateShipmentCommand(
	orderID kernel.UUID,
	courierID string,
	dims shipping.Dimensions,
	cod bool,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		cod:   cod,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setDims(dims),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the order to ship.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the selected courier company id.
func (c CreateShipmentCommand) CourierID() string {
	return c.courierID
}

// Dims returns the package dimensions.
func (c CreateShipmentCommand) Dims() shipping.Dimensions {
	return c.dims
}

// COD reports whether the shipment collects payment on delivery.
func (c CreateShipmentCommand) COD() bool {
	return c.cod
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setCourierID(courierID string) error {
	if courierID == "" {
		return errs.NewValueIsRequiredError("courier id")
	}

	c.courierID = courierID
	return nil
}

func (c *CreateShipmentCommand) setDims(dims shipping.Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}

	c.dims = dims
	return nil
}
