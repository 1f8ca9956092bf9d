package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"fulfillment/internal/core/domain/model/shipping"
)

const serviceabilityPath = "/v1/external/courier/serviceability/"

// courierOffer mirrors one entry of the aggregator's serviceability
// response. Numeric fields arrive as JSON numbers and are normalized to
// the domain representation during mapping.
type courierOffer struct {
	CourierCompanyID json.Number `json:"courier_company_id"`
	CourierName      string      `json:"courier_name"`
	Rate             float64     `json:"rate"`
	ETD              string      `json:"etd"`
	CODAvailable     json.Number `json:"cod"`
}

// QuoteRates checks route serviceability and returns the available couriers
// with their rates and delivery estimates.
func (g *Gateway) QuoteRates(ctx context.Context, request shipping.RateRequest) ([]shipping.RateQuote, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	token, err := g.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	cod := "0"
	if request.COD {
		cod = "1"
	}
	params := url.Values{}
	params.Set("pickup_postcode", request.PickupPostcode)
	params.Set("delivery_postcode", request.DeliveryPostcode)
	params.Set("weight", strconv.FormatFloat(request.WeightKg, 'f', -1, 64))
	params.Set("cod", cod)
	params.Set("length", strconv.FormatFloat(request.Dims.LengthCm, 'f', -1, 64))
	params.Set("breadth", strconv.FormatFloat(request.Dims.BreadthCm, 'f', -1, 64))
	params.Set("height", strconv.FormatFloat(request.Dims.HeightCm, 'f', -1, 64))

	status, body, err := g.do(ctx, http.MethodGet, serviceabilityPath+"?"+params.Encode(), token, nil)
	if err != nil {
		return nil, g.wrapTransport(ErrServiceability, err)
	}
	if status != http.StatusOK {
		return nil, &UpstreamError{Op: ErrServiceability, StatusCode: status, Body: string(body)}
	}

	var envelope struct {
		Data struct {
			AvailableCourierCompanies []courierOffer `json:"available_courier_companies"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &UpstreamError{Op: ErrServiceability, Body: fmt.Sprintf("malformed serviceability response: %s", err)}
	}

	quotes := make([]shipping.RateQuote, 0, len(envelope.Data.AvailableCourierCompanies))
	for _, offer := range envelope.Data.AvailableCourierCompanies {
		quotes = append(quotes, shipping.RateQuote{
			CourierID:         offer.CourierCompanyID.String(),
			CourierName:       offer.CourierName,
			Rate:              offer.Rate,
			EstimatedDelivery: offer.ETD,
			CODAvailable:      offer.CODAvailable.String() == "1",
		})
	}
	return quotes, nil
}
