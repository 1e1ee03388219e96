package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gremahtech/agri-auth/models"
)

// internalServiceHeader marks outbound calls as originating from a trusted
// internal service, letting the profile service bypass its own
// authentication for these requests.
const internalServiceHeader = "X-Internal-Service"

// internalServiceName is the value sent in the trust header.
const internalServiceName = "auth-service"

// HTTPClientConfig carries the settings of the outbound profile client.
type HTTPClientConfig struct {
	// BaseURL is the root address of the farmer profile service.
	BaseURL string
	// Timeout bounds every single profile call; there is no retry.
	Timeout time.Duration
}

type httpProfileAdapter struct {
	client *resty.Client
}

// NewHTTPProfileAdapter constructs a [ProfileAdapter] speaking HTTP/JSON to
// the farmer profile service. Zero-valued config fields fall back to the
// development defaults.
func NewHTTPProfileAdapter(cfg HTTPClientConfig) ProfileAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://farmer-service:3001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader(internalServiceHeader, internalServiceName)

	return &httpProfileAdapter{client: cli}
}

// CreateProfile posts the contact data of a newly registered farmer account
// to the profile service's internal creation endpoint.
func (h *httpProfileAdapter) CreateProfile(ctx context.Context, profile models.FarmerProfile) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post("/api/farmers/internal/create")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProfileRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// DeleteProfile asks the profile service to remove the profile stored for
// the given account identifier.
func (h *httpProfileAdapter) DeleteProfile(ctx context.Context, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("userID", fmt.Sprintf("%d", userID)).
		Delete("/api/farmers/internal/delete/{userID}")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProfileRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// mapHTTPError converts a non-2xx profile service response to one of the
// package sentinel errors, preserving the response body for logging.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrProfileNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrProfileUnexpectedStatus, resp.StatusCode(), body)
	}
}
