package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"iss-tracker/internal/models"
)

// PositionFetcher is the poller's view of the location service.
type PositionFetcher interface {
	FetchPosition(ctx context.Context) (models.Telemetry, error)
}

// PositionService fetches the station's current telemetry from the
// wheretheiss.at satellite API.
type PositionService struct {
	url    string
	client *http.Client
}

// NewPositionService creates a client for the given endpoint. The timeout
// bounds each individual request on top of any context deadline.
func NewPositionService(url string, timeout time.Duration) *PositionService {
	return &PositionService{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// satellitePayload mirrors the wheretheiss.at response. Fields the tracker
// does not display are omitted.
type satellitePayload struct {
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
	Velocity   float64 `json:"velocity"`
	Visibility string  `json:"visibility"`
	Timestamp  int64   `json:"timestamp"`
}

// FetchPosition requests the current telemetry. Failures are classified as
// *NetworkError (transport) or *ResponseError (unusable answer).
func (s *PositionService) FetchPosition(ctx context.Context) (models.Telemetry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return models.Telemetry{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Telemetry{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Telemetry{}, &ResponseError{
			Status: resp.StatusCode,
			Reason: "unexpected status",
		}
	}

	var payload satellitePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Telemetry{}, &ResponseError{Reason: fmt.Sprintf("decode body: %v", err)}
	}

	pos := models.Position{
		Latitude:  payload.Latitude,
		Longitude: models.WrapLongitude(payload.Longitude),
	}
	if err := pos.Validate(); err != nil {
		return models.Telemetry{}, &ResponseError{Reason: err.Error()}
	}

	return models.Telemetry{
		Position:   pos,
		AltitudeKm: payload.Altitude,
		VelocityKm: payload.Velocity,
		Visibility: payload.Visibility,
		Timestamp:  time.Unix(payload.Timestamp, 0),
	}, nil
}
