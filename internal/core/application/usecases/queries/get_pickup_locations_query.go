package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetPickupLocationsQueryIsNotConstructed = errors.New(
	"GetPickupLocationsQuery must be created via NewGetPickupLocationsQuery constructor",
)

// GetPickupLocationsQuery lists the pickup addresses registered with the
// carrier account. This is a parameterless query.
type GetPickupLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPickupLocationsQuery creates a query for the account's pickup locations.
func NewGetPickupLocationsQuery() GetPickupLocationsQuery {
	return GetPickupLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPickupLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupLocationsQueryIsNotConstructed)
}
