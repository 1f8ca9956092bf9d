package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/guard"
)

var ErrQuoteRatesQueryIsNotConstructed = errors.New(
	"QuoteRatesQuery must be created via NewQuoteRatesQuery constructor",
)

// QuoteRatesQuery asks the carrier which couriers can serve a route and at
// what rate. Quotes are ephemeral and never persisted; courier selection is
// the operator's decision.
type QuoteRatesQuery struct { //nolint:recvcheck //using for validation
	request shipping.RateRequest

	guard guard.ConstructorGuard
}

// NewQuoteRatesQuery creates a rate-quote query from serviceability parameters.
func NewQuoteRatesQuery(request shipping.RateRequest) (QuoteRatesQuery, error) {
	query := QuoteRatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRequest(request); err != nil {
		return QuoteRatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteRatesQuery) Validate() error {
	return q.guard.Validate(ErrQuoteRatesQueryIsNotConstructed)
}

// Request returns the serviceability parameters.
func (q QuoteRatesQuery) Request() shipping.RateRequest {
	return q.request
}

func (q *QuoteRatesQuery) setRequest(request shipping.RateRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	q.request = request
	return nil
}
