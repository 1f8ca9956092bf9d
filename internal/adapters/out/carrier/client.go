package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

const (
	loginPath = "/v1/external/auth/login"

	// maxResponseSize limits the response body size to prevent memory exhaustion.
	maxResponseSize = 10 * 1024 * 1024
)

// Gateway talks to the shipping aggregator over HTTP. It implements
// ports.CarrierGateway. Authentication happens on every operation; the
// returned token lives only for the duration of that operation.
type Gateway struct {
	config     Config
	httpClient *http.Client
}

// NewGateway creates a gateway for the given aggregator account.
func NewGateway(config Config) (*Gateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Gateway{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// authenticate logs in with the configured credentials and returns a fresh
// bearer token.
func (g *Gateway) authenticate(ctx context.Context) (string, error) {
	payload := map[string]string{
		"email":    g.config.Email,
		"password": g.config.Password,
	}

	status, body, err := g.do(ctx, http.MethodPost, loginPath, "", payload)
	if err != nil {
		return "", g.wrapTransport(ErrAuthFailed, err)
	}
	if status != http.StatusOK {
		return "", &UpstreamError{Op: ErrAuthFailed, StatusCode: status, Body: string(body)}
	}

	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &login); err != nil {
		return "", &UpstreamError{Op: ErrAuthFailed, Body: fmt.Sprintf("malformed login response: %s", err)}
	}
	if login.Token == "" {
		return "", &UpstreamError{Op: ErrAuthFailed, StatusCode: status, Body: "login response carried no token"}
	}
	return login.Token, nil
}

// do performs a single HTTP exchange and returns the status code and body.
// An empty token sends the request unauthenticated.
func (g *Gateway) do(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// wrapTransport converts a transport-level failure into an UpstreamError,
// flagging timeouts so callers can distinguish them from refusals.
func (g *Gateway) wrapTransport(op error, err error) error {
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	return &UpstreamError{Op: op, Body: err.Error(), Timeout: timeout}
}
