package queries_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) QuoteRates(ctx context.Context, request shipping.RateRequest) ([]shipping.RateQuote, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.RateQuote), args.Error(1)
}

func (m *MockCarrierGateway) CreateShipment(ctx context.Context, request shipping.ShipmentRequest) (shipping.ShipmentIdentity, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(shipping.ShipmentIdentity), args.Error(1)
}

func (m *MockCarrierGateway) GenerateDocuments(ctx context.Context, shipmentID string) (shipping.Documents, error) {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).(shipping.Documents), args.Error(1)
}

func (m *MockCarrierGateway) Track(ctx context.Context, query shipping.TrackingQuery) (shipping.TrackingSnapshot, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(shipping.TrackingSnapshot), args.Error(1)
}

func (m *MockCarrierGateway) PickupLocations(ctx context.Context) ([]shipping.PickupLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.PickupLocation), args.Error(1)
}

func (m *MockCarrierGateway) CheckAuth(ctx context.Context) (shipping.AuthProbe, error) {
	args := m.Called(ctx)
	return args.Get(0).(shipping.AuthProbe), args.Error(1)
}

func validRateRequest() shipping.RateRequest {
	return shipping.RateRequest{
		PickupPostcode:   "400001",
		DeliveryPostcode: "248001",
		WeightKg:         0.75,
		Dims:             shipping.Dimensions{LengthCm: 10, BreadthCm: 15, HeightCm: 20},
	}
}

func TestQuoteRatesQueryHandler_Handle(t *testing.T) {
	t.Run("returns_quotes", func(t *testing.T) {
		ctx := t.Context()
		request := validRateRequest()
		quotes := []shipping.RateQuote{
			{CourierID: "24", CourierName: "Bluedart", Rate: 91.5},
		}

		gateway := new(MockCarrierGateway)
		gateway.On("QuoteRates", ctx, request).Return(quotes, nil).Once()

		query, err := queries.NewQuoteRatesQuery(request)
		require.NoError(t, err)

		h := queries.NewQuoteRatesQueryHandler(gateway)
		got, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Equal(t, quotes, got)
		gateway.AssertExpectations(t)
	})

	t.Run("invalid_request_rejected_at_construction", func(t *testing.T) {
		_, err := queries.NewQuoteRatesQuery(shipping.RateRequest{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		h := queries.NewQuoteRatesQueryHandler(new(MockCarrierGateway))

		_, err := h.Handle(t.Context(), queries.QuoteRatesQuery{})

		require.ErrorIs(t, err, queries.ErrQuoteRatesQueryIsNotConstructed)
	})
}

func TestTrackShipmentQueryHandler_Handle(t *testing.T) {
	t.Run("returns_snapshot", func(t *testing.T) {
		ctx := t.Context()
		tracking := shipping.TrackingQuery{ShipmentID: "456"}
		want := shipping.TrackingSnapshot{
			Raw:           json.RawMessage(`{"tracking_data":{}}`),
			CurrentStatus: "In Transit",
		}

		gateway := new(MockCarrierGateway)
		gateway.On("Track", ctx, tracking).Return(want, nil).Once()

		query, err := queries.NewTrackShipmentQuery(tracking)
		require.NoError(t, err)

		h := queries.NewTrackShipmentQueryHandler(gateway)
		got, err := h.Handle(ctx, query)

		require.NoError(t, err)
		require.Equal(t, want, got)
		gateway.AssertExpectations(t)
	})

	t.Run("requires_an_identifier", func(t *testing.T) {
		_, err := queries.NewTrackShipmentQuery(shipping.TrackingQuery{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetPickupLocationsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	locations := []shipping.PickupLocation{
		{Name: "warehouse-mumbai", City: "Mumbai", Postcode: "400001"},
	}

	gateway := new(MockCarrierGateway)
	gateway.On("PickupLocations", ctx).Return(locations, nil).Once()

	h := queries.NewGetPickupLocationsQueryHandler(gateway)
	got, err := h.Handle(ctx, queries.NewGetPickupLocationsQuery())

	require.NoError(t, err)
	require.Equal(t, locations, got)
	gateway.AssertExpectations(t)
}

func TestCheckCarrierAuthQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	healthy := shipping.AuthProbe{
		BaseURL:          "https://apiv2.example.com",
		Authenticated:    true,
		ServiceabilityOK: true,
		CourierCount:     7,
	}
	unreachable := shipping.AuthProbe{BaseURL: "https://api.example.com"}

	configured := new(MockCarrierGateway)
	configured.On("CheckAuth", ctx).Return(healthy, nil).Once()

	// A candidate that cannot be reached still yields a probe; the sweep
	// continues to the next candidate.
	fallback := new(MockCarrierGateway)
	fallback.On("CheckAuth", ctx).Return(unreachable, errors.New("dial tcp: timeout")).Once()

	h := queries.NewCheckCarrierAuthQueryHandler(configured, fallback)
	got, err := h.Handle(ctx, queries.NewCheckCarrierAuthQuery())

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, healthy, got[0])
	require.False(t, got[1].Authenticated)
	require.Equal(t, "dial tcp: timeout", got[1].Detail)
	configured.AssertExpectations(t)
	fallback.AssertExpectations(t)
}
