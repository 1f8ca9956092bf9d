// Package ports defines repository and gateway interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their shipping state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its carrier linkage and refund state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIdempotencyKey retrieves an order by the idempotency key supplied
	// at creation time. Returns errs.ObjectNotFoundError when no order
	// carries the key.
	GetByIdempotencyKey(ctx context.Context, key string) (*order.Order, error)

	// GetAllAwaitingDocuments retrieves orders that have a carrier shipment
	// but no label yet. Used by the document reconciliation sweep to retry
	// label and manifest generation after a partial shipment creation.
	GetAllAwaitingDocuments(ctx context.Context) ([]*order.Order, error)

	// GetAllInTransit retrieves orders in Shipped shipping status.
	// Used by the tracking sync sweep to poll carrier tracking and
	// promote delivered orders.
	GetAllInTransit(ctx context.Context) ([]*order.Order, error)
}
