package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrCheckCarrierAuthQueryIsNotConstructed = errors.New(
	"CheckCarrierAuthQuery must be created via NewCheckCarrierAuthQuery constructor",
)

// CheckCarrierAuthQuery runs a diagnostic probe of the carrier credentials
// and API reachability. This is a parameterless query.
type CheckCarrierAuthQuery struct {
	guard guard.ConstructorGuard
}

// NewCheckCarrierAuthQuery creates a carrier-diagnostics query.
func NewCheckCarrierAuthQuery() CheckCarrierAuthQuery {
	return CheckCarrierAuthQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CheckCarrierAuthQuery) Validate() error {
	return q.guard.Validate(ErrCheckCarrierAuthQueryIsNotConstructed)
}
