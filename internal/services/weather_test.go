package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iss-tracker/internal/models"
)

func TestWeatherFetch(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"current": {
				"temperature_2m": -12.4,
				"relative_humidity_2m": 81,
				"wind_speed_10m": 22.7,
				"surface_pressure": 1013.2,
				"cloud_cover": 95,
				"is_day": 1,
				"weather_code": 71
			}
		}`))
	}))
	defer server.Close()

	svc := NewWeatherService(server.URL, 2*time.Second)
	report, err := svc.Fetch(context.Background(), models.Position{Latitude: 64.13, Longitude: -21.82})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery["latitude"]; len(got) != 1 || got[0] != "64.1300" {
		t.Errorf("latitude query = %v, want [64.1300]", got)
	}
	if got := gotQuery["longitude"]; len(got) != 1 || got[0] != "-21.8200" {
		t.Errorf("longitude query = %v, want [-21.8200]", got)
	}

	if report.TemperatureC != -12.4 {
		t.Errorf("temperature = %v, want -12.4", report.TemperatureC)
	}
	if report.CloudCoverPct != 95 {
		t.Errorf("cloud cover = %v, want 95", report.CloudCoverPct)
	}
	if !report.IsDay {
		t.Error("IsDay = false, want true")
	}
	if report.Description() != "Snow fall: Slight intensity" {
		t.Errorf("description = %q, want snow", report.Description())
	}
}

func TestWeatherFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewWeatherService(server.URL, 2*time.Second)
	_, err := svc.Fetch(context.Background(), models.Position{})
	if err == nil {
		t.Fatal("expected an error")
	}

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error = %T, want *ResponseError", err)
	}
	if respErr.Status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", respErr.Status)
	}
}
