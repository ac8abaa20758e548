package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every config key so ambient environment cannot leak into
// the test.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"ISS_POSITION_URL", "ISS_WEATHER_URL", "ISS_POLL_INTERVAL_SECONDS",
		"ISS_HTTP_TIMEOUT_SECONDS", "ISS_MAP_ZOOM", "ISS_TRAIL_LENGTH",
		"ISS_TILE_PROVIDER", "ISS_TILE_CACHE_SIZE",
		"ISS_WINDOW_WIDTH", "ISS_WINDOW_HEIGHT", "LOG_LEVEL",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.PollInterval)
	}
	if cfg.Zoom != 4 {
		t.Errorf("Zoom = %d, want 4", cfg.Zoom)
	}
	if cfg.TileProvider != "OpenStreetMap" {
		t.Errorf("TileProvider = %q, want OpenStreetMap", cfg.TileProvider)
	}
	if !strings.Contains(cfg.PositionURL, "wheretheiss.at") {
		t.Errorf("PositionURL = %q, want wheretheiss.at default", cfg.PositionURL)
	}
	if cfg.TrailLength != 120 {
		t.Errorf("TrailLength = %d, want 120", cfg.TrailLength)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ISS_POLL_INTERVAL_SECONDS", "30")
	t.Setenv("ISS_MAP_ZOOM", "6")
	t.Setenv("ISS_TILE_PROVIDER", "Google Satellite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.Zoom != 6 {
		t.Errorf("Zoom = %d, want 6", cfg.Zoom)
	}
	if cfg.TileProvider != "Google Satellite" {
		t.Errorf("TileProvider = %q", cfg.TileProvider)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"interval not a number", "ISS_POLL_INTERVAL_SECONDS", "soon"},
		{"interval too small", "ISS_POLL_INTERVAL_SECONDS", "2"},
		{"interval too large", "ISS_POLL_INTERVAL_SECONDS", "301"},
		{"interval negative", "ISS_POLL_INTERVAL_SECONDS", "-10"},
		{"zoom too high", "ISS_MAP_ZOOM", "25"},
		{"zoom zero", "ISS_MAP_ZOOM", "0"},
		{"trail negative", "ISS_TRAIL_LENGTH", "-1"},
		{"cache zero", "ISS_TILE_CACHE_SIZE", "0"},
		{"width not a number", "ISS_WINDOW_WIDTH", "wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}
