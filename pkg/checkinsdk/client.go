// Package checkinsdk is a typed HTTP client for the check-in service.
// It is used by the platform's other services and by the e2e tests.
package checkinsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Identity headers set by the API gateway in front of the service.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Client talks to one check-in service instance on behalf of one user.
// The gateway normally injects the identity headers; the client sets
// them directly for in-platform and test traffic.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	UserID int64
	Role   string
}

// NewClient creates a client acting as the given user.
func NewClient(baseURL string, userID int64, role string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserID: userID,
		Role:   role,
	}
}

// GenerateQR issues a one-time check-in token for an event.
func (c *Client) GenerateQR(ctx context.Context, eventID int64) (*GenerateQRResponse, error) {
	var out GenerateQRResponse
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/v1/events/%d/qr", eventID), nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveTokens lists the unredeemed, unexpired tokens for an event.
func (c *Client) ActiveTokens(ctx context.Context, eventID int64) (*ActiveTokensResponse, error) {
	var out ActiveTokensResponse
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/events/%d/qr/active", eventID), nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks a token's liveness without redeeming it.
func (c *Client) Validate(ctx context.Context, token string) (*ValidateResponse, error) {
	var out ValidateResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/qr/validate", ValidateRequest{Token: token}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckIn redeems a token for the client's user.
func (c *Client) CheckIn(ctx context.Context, req CheckInRequest) (*AttendanceResponse, error) {
	var out AttendanceResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/check-in", req, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ManualCheckIn marks a student's attendance directly, bypassing the
// token protocol. Teacher/admin only.
func (c *Client) ManualCheckIn(ctx context.Context, eventID int64, req ManualCheckInRequest) (*AttendanceResponse, error) {
	var out AttendanceResponse
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/v1/events/%d/check-in/manual", eventID), req, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Status returns the client's attendance state for an event.
func (c *Client) Status(ctx context.Context, eventID int64) (*StatusResponse, error) {
	var out StatusResponse
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/events/%d/check-in/status", eventID), nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEvent creates an event owned by the client's user.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	var out EventResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/events", req, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez hits the liveness probe.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz hits the readiness probe.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, target any, expectedStatus int) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderUserID, strconv.FormatInt(c.UserID, 10))
	req.Header.Set(HeaderUserRole, c.Role)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, raw)
	}

	if target != nil {
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
