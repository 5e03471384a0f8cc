// Package trackclient implements the lookup use case against a running
// portal's JSON API, for tooling that runs outside the server process.
package trackclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client is a ports.TrackingService backed by the portal's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// reportPayload mirrors the API's report envelope. The shipment object uses
// the same JSON field names as the domain record, so it decodes directly.
type reportPayload struct {
	Shipment      domain.Shipment `json:"shipment"`
	StageIndex    int             `json:"stage_index"`
	KnownStage    bool            `json:"known_stage"`
	Progress      int             `json:"progress"`
	TrackingURL   string          `json:"tracking_url"`
	QRCodeDataURL string          `json:"qr_code_data_url"`
}

// Track looks up a shipment through the JSON API. Error mapping follows the
// service contract: empty input short-circuits locally, 404 becomes
// ErrShipmentNotFound, anything else is a transport error.
func (c *Client) Track(ctx context.Context, trackingNumber string) (*ports.TrackingReport, error) {
	tracking := strings.TrimSpace(trackingNumber)
	if tracking == "" {
		return nil, domain.ErrEmptyTracking
	}

	endpoint := c.baseURL + "/api/v1/shipments/" + url.PathEscape(tracking)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decode
	case http.StatusNotFound:
		return nil, domain.ErrShipmentNotFound
	case http.StatusBadRequest:
		return nil, domain.ErrEmptyTracking
	default:
		return nil, fmt.Errorf("lookup failed: unexpected status %d", resp.StatusCode)
	}

	var payload reportPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	return &ports.TrackingReport{
		Shipment:      &payload.Shipment,
		StageIndex:    payload.StageIndex,
		KnownStage:    payload.KnownStage,
		Progress:      payload.Progress,
		TrackingURL:   payload.TrackingURL,
		QRCodeDataURL: payload.QRCodeDataURL,
	}, nil
}
