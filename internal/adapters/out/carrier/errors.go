package carrier

import (
	"errors"
	"fmt"
)

// Operation-level sentinels. Every upstream failure wraps one of these so
// callers can classify without parsing messages.
var (
	ErrAuthFailed         = errors.New("carrier authentication failed")
	ErrServiceability     = errors.New("carrier serviceability check failed")
	ErrShipmentCreation   = errors.New("carrier shipment creation failed")
	ErrDocumentGeneration = errors.New("carrier document generation failed")
	ErrTracking           = errors.New("carrier tracking failed")
	ErrPickupLocations    = errors.New("carrier pickup location listing failed")

	// ErrNoShipmentIdentity reports a creation response that carried no
	// recognizable order identifier, regardless of HTTP status.
	ErrNoShipmentIdentity = errors.New("carrier returned no order ID")
)

// UpstreamError describes a failed call to the aggregator. It wraps the
// operation sentinel so errors.Is works on the category.
type UpstreamError struct {
	Op         error
	StatusCode int
	Body       string
	Timeout    bool
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: request timed out", e.Op)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, truncate(e.Body, 512))
	}
	return fmt.Sprintf("%s: %s", e.Op, truncate(e.Body, 512))
}

func (e *UpstreamError) Unwrap() error {
	return e.Op
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
