package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"iss-tracker/internal/models"
)

// WeatherService fetches ground-level current conditions below the station
// from the Open-Meteo forecast API.
type WeatherService struct {
	url    string
	client *http.Client
}

func NewWeatherService(endpoint string, timeout time.Duration) *WeatherService {
	return &WeatherService{
		url:    endpoint,
		client: &http.Client{Timeout: timeout},
	}
}

type currentConditions struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    float64 `json:"relative_humidity_2m"`
	WindSpeed   float64 `json:"wind_speed_10m"`
	Pressure    float64 `json:"surface_pressure"`
	CloudCover  float64 `json:"cloud_cover"`
	IsDay       int     `json:"is_day"`
	WeatherCode int     `json:"weather_code"`
}

type forecastPayload struct {
	Current currentConditions `json:"current"`
}

// Fetch requests current conditions at the given position. Error
// classification matches FetchPosition.
func (s *WeatherService) Fetch(ctx context.Context, pos models.Position) (models.WeatherReport, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", pos.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", pos.Longitude))
	q.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,surface_pressure,cloud_cover,is_day,weather_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"?"+q.Encode(), nil)
	if err != nil {
		return models.WeatherReport{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.WeatherReport{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.WeatherReport{}, &ResponseError{
			Status: resp.StatusCode,
			Reason: "unexpected status",
		}
	}

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherReport{}, &ResponseError{Reason: fmt.Sprintf("decode body: %v", err)}
	}

	c := payload.Current
	return models.WeatherReport{
		TemperatureC:  c.Temperature,
		HumidityPct:   c.Humidity,
		WindSpeedKmh:  c.WindSpeed,
		PressureHpa:   c.Pressure,
		CloudCoverPct: c.CloudCover,
		IsDay:         c.IsDay == 1,
		WeatherCode:   c.WeatherCode,
	}, nil
}
