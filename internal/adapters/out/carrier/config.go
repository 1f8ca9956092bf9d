package carrier

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

const defaultTimeout = 20 * time.Second

// Config holds the aggregator account settings used by the gateway.
type Config struct {
	// BaseURL is the aggregator API root, e.g. https://apiv2.shiprocket.in.
	BaseURL string
	// Email and Password authenticate the aggregator account.
	Email    string
	Password string
	// Timeout bounds every HTTP call, auth request included.
	Timeout time.Duration
}

// Validate checks the configuration and fills the timeout default.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errs.NewValueIsRequiredError("base url")
	}
	if c.Email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if c.Password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return nil
}
