package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order capture.
// Creates new orders in pending shipping status, deduplicating by
// idempotency key.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order capture operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order capture command and returns the effective order
// id: the new order's id, or the existing order's id when the idempotency
// key was seen before. Repeated submissions never create a second order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if key := cmd.Details().IdempotencyKey; key != "" {
		existing, err := orderRepo.GetByIdempotencyKey(ctx, key)
		if err == nil {
			return existing.ID(), nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, err
		}
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Details())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
