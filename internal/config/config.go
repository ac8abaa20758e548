package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Bounds for the user-adjustable poll interval.
	MinPollInterval = 5 * time.Second
	MaxPollInterval = 300 * time.Second

	minZoom = 1
	maxZoom = 19
)

// Config holds all application settings. Values come from the environment,
// optionally seeded from a .env file, with sane defaults for every key.
type Config struct {
	// Location service
	PositionURL  string
	WeatherURL   string
	PollInterval time.Duration
	HTTPTimeout  time.Duration

	// Map
	Zoom          int
	TrailLength   int
	TileProvider  string
	TileCacheSize int

	// Window
	WindowWidth  float32
	WindowHeight float32

	// Logging
	LogLevel string
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing keys fall back to defaults; malformed or out-of-range
// values are an error.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		PositionURL:  getEnv("ISS_POSITION_URL", "https://api.wheretheiss.at/v1/satellites/25544"),
		WeatherURL:   getEnv("ISS_WEATHER_URL", "https://api.open-meteo.com/v1/forecast"),
		TileProvider: getEnv("ISS_TILE_PROVIDER", "OpenStreetMap"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	interval, err := getSeconds("ISS_POLL_INTERVAL_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	if interval < MinPollInterval || interval > MaxPollInterval {
		return nil, fmt.Errorf("ISS_POLL_INTERVAL_SECONDS must be within [%v, %v], got %v",
			MinPollInterval, MaxPollInterval, interval)
	}
	cfg.PollInterval = interval

	timeout, err := getSeconds("ISS_HTTP_TIMEOUT_SECONDS", 8)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	zoom, err := getInt("ISS_MAP_ZOOM", 4)
	if err != nil {
		return nil, err
	}
	if zoom < minZoom || zoom > maxZoom {
		return nil, fmt.Errorf("ISS_MAP_ZOOM must be within [%d, %d], got %d", minZoom, maxZoom, zoom)
	}
	cfg.Zoom = zoom

	trail, err := getInt("ISS_TRAIL_LENGTH", 120)
	if err != nil {
		return nil, err
	}
	if trail < 0 {
		return nil, fmt.Errorf("ISS_TRAIL_LENGTH must not be negative, got %d", trail)
	}
	cfg.TrailLength = trail

	cacheSize, err := getInt("ISS_TILE_CACHE_SIZE", 256)
	if err != nil {
		return nil, err
	}
	if cacheSize < 1 {
		return nil, fmt.Errorf("ISS_TILE_CACHE_SIZE must be positive, got %d", cacheSize)
	}
	cfg.TileCacheSize = cacheSize

	width, err := getInt("ISS_WINDOW_WIDTH", 1200)
	if err != nil {
		return nil, err
	}
	height, err := getInt("ISS_WINDOW_HEIGHT", 800)
	if err != nil {
		return nil, err
	}
	cfg.WindowWidth = float32(width)
	cfg.WindowHeight = float32(height)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getSeconds(key string, fallback int) (time.Duration, error) {
	n, err := getInt(key, fallback)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return time.Duration(n) * time.Second, nil
}
