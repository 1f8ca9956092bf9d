package carrier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAggregator stands in for the shipping aggregator. Every handler first
// checks the bearer token issued by the login handler, so tests exercise the
// per-call authentication path end to end.
type fakeAggregator struct {
	mux    *http.ServeMux
	logins int

	createResponse   string
	createStatusCode int

	labelResponse      string
	labelStatusCode    int
	manifestResponse   string
	manifestStatusCode int
}

func newFakeAggregator() *fakeAggregator {
	f := &fakeAggregator{
		mux:                http.NewServeMux(),
		createStatusCode:   http.StatusOK,
		labelResponse:      `{"label_created": 1, "label_url": "https://cdn.example.com/label-456.pdf"}`,
		labelStatusCode:    http.StatusOK,
		manifestResponse:   `{"status": 1, "manifest_url": "https://cdn.example.com/manifest-456.pdf"}`,
		manifestStatusCode: http.StatusOK,
	}

	f.mux.HandleFunc("POST /v1/external/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "ops@example.com" || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Wrong Password"}`))
			return
		}
		f.logins++
		_, _ = w.Write([]byte(`{"token": "tok-1"}`))
	})

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}

	f.mux.HandleFunc("GET /v1/external/courier/serviceability/", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pickup_postcode") == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		_, _ = w.Write([]byte(`{"data": {"available_courier_companies": [
			{"courier_company_id": 24, "courier_name": "Bluedart", "rate": 91.5, "etd": "Aug 30, 2026", "cod": 1},
			{"courier_company_id": 51, "courier_name": "Delhivery Surface", "rate": 60, "etd": "Sep 02, 2026", "cod": 0}
		]}}`))
	}))

	f.mux.HandleFunc("POST /v1/external/orders/create/adhoc", authed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(f.createStatusCode)
		_, _ = w.Write([]byte(f.createResponse))
	}))

	f.mux.HandleFunc("POST /v1/external/courier/generate/label", authed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(f.labelStatusCode)
		_, _ = w.Write([]byte(f.labelResponse))
	}))

	f.mux.HandleFunc("POST /v1/external/manifests/generate", authed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(f.manifestStatusCode)
		_, _ = w.Write([]byte(f.manifestResponse))
	}))

	f.mux.HandleFunc("GET /v1/external/courier/track/shipment/456", authed(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tracking_data": {"shipment_track": [{"current_status": "Delivered"}]}}`))
	}))

	f.mux.HandleFunc("GET /v1/external/settings/company/pickup", authed(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"shipping_address": [
			{"pickup_location": "warehouse-mumbai", "address": "12 Dock Road", "city": "Mumbai",
			 "state": "Maharashtra", "country": "India", "pin_code": "400001", "phone": "9876543210"}
		]}}`))
	}))

	return f
}

func newTestGateway(t *testing.T, f *fakeAggregator) (*Gateway, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(f.mux)
	t.Cleanup(server.Close)

	gateway, err := NewGateway(Config{
		BaseURL:  server.URL,
		Email:    "ops@example.com",
		Password: "secret",
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	return gateway, server
}

func validRateRequest() shipping.RateRequest {
	return shipping.RateRequest{
		PickupPostcode:   "400001",
		DeliveryPostcode: "248001",
		WeightKg:         0.75,
		Dims:             shipping.Dimensions{LengthCm: 10, BreadthCm: 15, HeightCm: 20},
	}
}

func TestGateway_QuoteRates(t *testing.T) {
	f := newFakeAggregator()
	gateway, _ := newTestGateway(t, f)

	quotes, err := gateway.QuoteRates(context.Background(), validRateRequest())

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "24", quotes[0].CourierID)
	assert.Equal(t, "Bluedart", quotes[0].CourierName)
	assert.Equal(t, 91.5, quotes[0].Rate)
	assert.True(t, quotes[0].CODAvailable)
	assert.False(t, quotes[1].CODAvailable)
	assert.Equal(t, 1, f.logins, "one login per operation")
}

func TestGateway_QuoteRates_AuthenticatesEveryCall(t *testing.T) {
	f := newFakeAggregator()
	gateway, _ := newTestGateway(t, f)

	_, err := gateway.QuoteRates(context.Background(), validRateRequest())
	require.NoError(t, err)
	_, err = gateway.QuoteRates(context.Background(), validRateRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, f.logins)
}

func TestGateway_QuoteRates_RejectsInvalidRequestBeforeNetwork(t *testing.T) {
	f := newFakeAggregator()
	gateway, _ := newTestGateway(t, f)

	_, err := gateway.QuoteRates(context.Background(), shipping.RateRequest{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Zero(t, f.logins)
}

func TestGateway_QuoteRates_BadCredentials(t *testing.T) {
	f := newFakeAggregator()
	server := httptest.NewServer(f.mux)
	t.Cleanup(server.Close)

	gateway, err := NewGateway(Config{
		BaseURL:  server.URL,
		Email:    "ops@example.com",
		Password: "wrong",
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)

	_, err = gateway.QuoteRates(context.Background(), validRateRequest())

	require.ErrorIs(t, err, ErrAuthFailed)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
}

func TestGateway_CreateShipment(t *testing.T) {
	t.Run("full_identity", func(t *testing.T) {
		f := newFakeAggregator()
		f.createResponse = `{"order_id": 123, "shipment_id": 456, "awb_code": "AWB789"}`
		gateway, _ := newTestGateway(t, f)

		identity, err := gateway.CreateShipment(context.Background(), validShipmentRequest())

		require.NoError(t, err)
		assert.Equal(t, "123", identity.OrderID)
		assert.Equal(t, "456", identity.ShipmentID)
		assert.Equal(t, "AWB789", identity.AWB)
	})

	t.Run("two_hundred_without_order_id_fails", func(t *testing.T) {
		f := newFakeAggregator()
		f.createResponse = `{"status": 1, "message": "queued"}`
		gateway, _ := newTestGateway(t, f)

		_, err := gateway.CreateShipment(context.Background(), validShipmentRequest())

		require.ErrorIs(t, err, ErrNoShipmentIdentity)
	})

	t.Run("upstream_rejection", func(t *testing.T) {
		f := newFakeAggregator()
		f.createStatusCode = http.StatusUnprocessableEntity
		f.createResponse = `{"message": "pincode not serviceable"}`
		gateway, _ := newTestGateway(t, f)

		_, err := gateway.CreateShipment(context.Background(), validShipmentRequest())

		require.ErrorIs(t, err, ErrShipmentCreation)
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Contains(t, upstream.Body, "pincode not serviceable")
	})
}

func validShipmentRequest() shipping.ShipmentRequest {
	return shipping.ShipmentRequest{
		OrderRef:      "ord-1001",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		AddressLine:   "5 Hill View",
		City:          "Dehradun",
		State:         "Uttarakhand",
		Country:       "India",
		Postcode:      "248001",
		CourierID:     "24",
		WeightKg:      0.75,
		Dims:          shipping.Dimensions{LengthCm: 10, BreadthCm: 15, HeightCm: 20},
		Subtotal:      499,
	}
}

func TestGateway_GenerateDocuments(t *testing.T) {
	t.Run("returns_both_urls", func(t *testing.T) {
		f := newFakeAggregator()
		gateway, _ := newTestGateway(t, f)

		docs, err := gateway.GenerateDocuments(context.Background(), "456")

		require.NoError(t, err)
		require.NotNil(t, docs.LabelURL)
		assert.Equal(t, "https://cdn.example.com/label-456.pdf", *docs.LabelURL)
		require.NotNil(t, docs.ManifestURL)
		assert.Equal(t, "https://cdn.example.com/manifest-456.pdf", *docs.ManifestURL)
	})

	t.Run("manifest_only_still_succeeds", func(t *testing.T) {
		f := newFakeAggregator()
		f.labelResponse = `{"label_created": 0, "response": "label under generation"}`
		gateway, _ := newTestGateway(t, f)

		docs, err := gateway.GenerateDocuments(context.Background(), "456")

		require.NoError(t, err)
		assert.Nil(t, docs.LabelURL)
		require.NotNil(t, docs.ManifestURL)
		assert.Equal(t, "https://cdn.example.com/manifest-456.pdf", *docs.ManifestURL)
	})

	t.Run("fails_only_when_no_document_was_produced", func(t *testing.T) {
		f := newFakeAggregator()
		f.labelStatusCode = http.StatusBadGateway
		f.manifestStatusCode = http.StatusBadGateway
		gateway, _ := newTestGateway(t, f)

		_, err := gateway.GenerateDocuments(context.Background(), "456")

		require.ErrorIs(t, err, ErrDocumentGeneration)
	})

	t.Run("rejects_empty_shipment_id_before_network", func(t *testing.T) {
		f := newFakeAggregator()
		gateway, _ := newTestGateway(t, f)

		_, err := gateway.GenerateDocuments(context.Background(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Zero(t, f.logins)
	})
}

func TestGateway_Track(t *testing.T) {
	f := newFakeAggregator()
	gateway, _ := newTestGateway(t, f)

	snapshot, err := gateway.Track(context.Background(), shipping.TrackingQuery{ShipmentID: "456"})

	require.NoError(t, err)
	assert.Equal(t, "Delivered", snapshot.CurrentStatus)
	assert.JSONEq(t,
		`{"tracking_data": {"shipment_track": [{"current_status": "Delivered"}]}}`,
		string(snapshot.Raw))
}

func TestGateway_PickupLocations(t *testing.T) {
	f := newFakeAggregator()
	gateway, _ := newTestGateway(t, f)

	locations, err := gateway.PickupLocations(context.Background())

	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "warehouse-mumbai", locations[0].Name)
	assert.Equal(t, "400001", locations[0].Postcode)
}

func TestGateway_CheckAuth(t *testing.T) {
	t.Run("healthy_account", func(t *testing.T) {
		f := newFakeAggregator()
		gateway, _ := newTestGateway(t, f)

		probe, err := gateway.CheckAuth(context.Background())

		require.NoError(t, err)
		assert.True(t, probe.Authenticated)
		assert.True(t, probe.ServiceabilityOK)
		assert.Equal(t, 2, probe.CourierCount)
	})

	t.Run("bad_credentials_reported_not_failed", func(t *testing.T) {
		f := newFakeAggregator()
		server := httptest.NewServer(f.mux)
		t.Cleanup(server.Close)

		gateway, err := NewGateway(Config{
			BaseURL:  server.URL,
			Email:    "ops@example.com",
			Password: "wrong",
			Timeout:  5 * time.Second,
		})
		require.NoError(t, err)

		probe, err := gateway.CheckAuth(context.Background())

		require.NoError(t, err)
		assert.False(t, probe.Authenticated)
		assert.Equal(t, http.StatusUnauthorized, probe.StatusCode)
	})
}
