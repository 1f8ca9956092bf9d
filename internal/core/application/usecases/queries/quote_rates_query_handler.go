package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

// QuoteRatesQueryHandler fetches courier rate quotes from the carrier gateway.
type QuoteRatesQueryHandler struct {
	gateway ports.CarrierGateway
}

// NewQuoteRatesQueryHandler creates a handler for rate-quote queries.
func NewQuoteRatesQueryHandler(gateway ports.CarrierGateway) QuoteRatesQueryHandler {
	return QuoteRatesQueryHandler{gateway: gateway}
}

// Handle executes the serviceability check against the carrier.
// An empty slice means the route is not serviceable by any courier.
func (h QuoteRatesQueryHandler) Handle(ctx context.Context, query QuoteRatesQuery) ([]shipping.RateQuote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.gateway.QuoteRates(ctx, query.Request())
}
