package location

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultIPLookupURL = "https://am.i.mullvad.net/json"

// IPLookup estimates the caller's position from a geo-IP service returning
// {"latitude": ..., "longitude": ...}.
type IPLookup struct {
	client *http.Client
	url    string
	log    *zap.Logger
}

func NewIPLookup(url string, timeout time.Duration, log *zap.Logger) *IPLookup {
	if strings.TrimSpace(url) == "" {
		url = defaultIPLookupURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &IPLookup{
		client: &http.Client{Timeout: timeout},
		url:    url,
		log:    log,
	}
}

type ipLocationResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
}

func (p *IPLookup) CurrentLocation(ctx context.Context) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, p.log, "location.ip.Lookup")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("ip location: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("ip location: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("ip location: unexpected status %d", resp.StatusCode)
	}

	var body ipLocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinates{}, fmt.Errorf("ip location: decode response: %w", err)
	}
	if body.Latitude == nil || body.Longitude == nil {
		return domain.Coordinates{}, errors.New("ip location: response has no coordinates")
	}

	p.log.Debug("ip location resolved",
		zap.String("city", body.City), zap.String("country", body.Country))

	return domain.Coordinates{Lat: *body.Latitude, Lon: *body.Longitude}, nil
}
