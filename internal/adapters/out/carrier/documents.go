package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/pkg/errs"
)

const (
	labelPath    = "/v1/external/courier/generate/label"
	manifestPath = "/v1/external/manifests/generate"
)

// GenerateDocuments requests the label and the manifest for a carrier
// shipment. The two documents are independent: a failed or empty label
// response does not stop the manifest attempt, and whichever URLs were
// obtained are returned. An error is reported only when neither document
// could be produced, since a single URL is enough to advance the order.
func (g *Gateway) GenerateDocuments(ctx context.Context, shipmentID string) (shipping.Documents, error) {
	if shipmentID == "" {
		return shipping.Documents{}, errs.NewValueIsRequiredError("shipment id")
	}

	token, err := g.authenticate(ctx)
	if err != nil {
		return shipping.Documents{}, err
	}

	payload := map[string][]string{"shipment_id": {shipmentID}}

	labelURL, labelErr := g.generateDocument(ctx, token, labelPath, payload, "label_url")
	manifestURL, manifestErr := g.generateDocument(ctx, token, manifestPath, payload, "manifest_url")

	docs := shipping.Documents{LabelURL: labelURL, ManifestURL: manifestURL}
	if docs.IsEmpty() {
		if labelErr != nil {
			return shipping.Documents{}, labelErr
		}
		if manifestErr != nil {
			return shipping.Documents{}, manifestErr
		}
		return shipping.Documents{}, &UpstreamError{Op: ErrDocumentGeneration, Body: "document responses carried no urls"}
	}

	return docs, nil
}

func (g *Gateway) generateDocument(ctx context.Context, token, path string, payload any, urlKey string) (*string, error) {
	status, body, err := g.do(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return nil, g.wrapTransport(ErrDocumentGeneration, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &UpstreamError{Op: ErrDocumentGeneration, StatusCode: status, Body: string(body)}
	}

	var response map[string]json.RawMessage
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &UpstreamError{Op: ErrDocumentGeneration, Body: fmt.Sprintf("malformed document response: %s", err)}
	}
	if raw, ok := response[urlKey]; ok {
		if value := scalarToString(raw); value != "" {
			return &value, nil
		}
	}
	return nil, nil
}
