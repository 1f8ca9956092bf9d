package carrier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"fulfillment/internal/core/domain/model/shipping"
)

const (
	trackShipmentPath = "/v1/external/courier/track/shipment/"
	trackAWBPath      = "/v1/external/courier/track/awb/"
)

// Track fetches the tracking state for a shipment. The shipment ID route is
// preferred; the AWB route is used only when no shipment ID is given.
func (g *Gateway) Track(ctx context.Context, query shipping.TrackingQuery) (shipping.TrackingSnapshot, error) {
	if err := query.Validate(); err != nil {
		return shipping.TrackingSnapshot{}, err
	}

	token, err := g.authenticate(ctx)
	if err != nil {
		return shipping.TrackingSnapshot{}, err
	}

	path := trackShipmentPath + url.PathEscape(query.ShipmentID)
	if query.ShipmentID == "" {
		path = trackAWBPath + url.PathEscape(query.AWBCode)
	}

	status, body, err := g.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return shipping.TrackingSnapshot{}, g.wrapTransport(ErrTracking, err)
	}
	if status != http.StatusOK {
		return shipping.TrackingSnapshot{}, &UpstreamError{Op: ErrTracking, StatusCode: status, Body: string(body)}
	}

	return shipping.TrackingSnapshot{
		Raw:           json.RawMessage(body),
		CurrentStatus: extractTrackingStatus(body),
	}, nil
}

// extractTrackingStatus pulls the human status out of the tracking payload.
// The aggregator nests it under tracking_data.shipment_track[0].current_status;
// an unrecognized payload yields the empty string, never an error.
func extractTrackingStatus(body []byte) string {
	var envelope struct {
		TrackingData struct {
			ShipmentTrack []struct {
				CurrentStatus string `json:"current_status"`
			} `json:"shipment_track"`
		} `json:"tracking_data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if len(envelope.TrackingData.ShipmentTrack) == 0 {
		return ""
	}
	return envelope.TrackingData.ShipmentTrack[0].CurrentStatus
}
