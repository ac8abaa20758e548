package components

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"iss-tracker/internal/config"
	"iss-tracker/internal/models"
	"iss-tracker/internal/tiles"
)

// StatusPanel is the side panel: telemetry readouts, weather block, tile
// source selector, interval slider and quit button.
type StatusPanel struct {
	container *fyne.Container

	statusLabel     *widget.Label
	latLabel        *widget.Label
	lonLabel        *widget.Label
	altitudeLabel   *widget.Label
	velocityLabel   *widget.Label
	visibilityLabel *widget.Label
	countLabel      *widget.Label

	weatherDesc   *widget.Label
	tempLabel     *widget.Label
	humidityLabel *widget.Label
	windLabel     *widget.Label
	pressureLabel *widget.Label
	cloudLabel    *widget.Label
	dayLabel      *widget.Label

	tileSelect     *widget.Select
	intervalLabel  *widget.Label
	intervalSlider *widget.Slider
	quitButton     *widget.Button

	// Event handlers
	tileSourceHandler func(string)
	intervalHandler   func(time.Duration)
	quitHandler       func()
}

// NewStatusPanel creates the panel with the given initial interval shown.
func NewStatusPanel(initialInterval time.Duration) *StatusPanel {
	sp := &StatusPanel{}
	sp.createComponents(initialInterval)
	sp.buildLayout()
	sp.setupEventHandlers()
	return sp
}

// createComponents initializes all panel widgets.
func (sp *StatusPanel) createComponents(initialInterval time.Duration) {
	sp.statusLabel = widget.NewLabel("Waiting for first fix...")
	sp.latLabel = widget.NewLabel("Latitude: --")
	sp.lonLabel = widget.NewLabel("Longitude: --")
	sp.altitudeLabel = widget.NewLabel("Altitude: --")
	sp.velocityLabel = widget.NewLabel("Velocity: --")
	sp.visibilityLabel = widget.NewLabel("Visibility: --")
	sp.countLabel = widget.NewLabel("Updates: 0")

	sp.weatherDesc = widget.NewLabel("Weather: --")
	sp.weatherDesc.Wrapping = fyne.TextWrapWord
	sp.tempLabel = widget.NewLabel("Temperature: --")
	sp.humidityLabel = widget.NewLabel("Humidity: --")
	sp.windLabel = widget.NewLabel("Wind Speed: --")
	sp.pressureLabel = widget.NewLabel("Pressure: --")
	sp.cloudLabel = widget.NewLabel("Cloud Cover: --")
	sp.dayLabel = widget.NewLabel("Day/Night: --")

	sp.tileSelect = widget.NewSelect(tiles.SourceNames(), nil)
	sp.tileSelect.SetSelected(tiles.OpenStreetMap.Name)

	sp.intervalLabel = widget.NewLabel(formatInterval(initialInterval))
	sp.intervalSlider = widget.NewSlider(
		config.MinPollInterval.Seconds(),
		config.MaxPollInterval.Seconds(),
	)
	sp.intervalSlider.Step = 1
	sp.intervalSlider.SetValue(initialInterval.Seconds())

	sp.quitButton = widget.NewButton("Quit", nil)
	sp.quitButton.Importance = widget.MediumImportance
}

// buildLayout constructs the panel layout.
func (sp *StatusPanel) buildLayout() {
	telemetrySection := container.NewVBox(
		widget.NewLabel("Station"),
		sp.latLabel,
		sp.lonLabel,
		sp.altitudeLabel,
		sp.velocityLabel,
		sp.visibilityLabel,
		sp.countLabel,
	)

	weatherSection := container.NewVBox(
		widget.NewLabel("Ground Weather"),
		sp.weatherDesc,
		sp.tempLabel,
		sp.humidityLabel,
		sp.windLabel,
		sp.pressureLabel,
		sp.cloudLabel,
		sp.dayLabel,
	)

	controlSection := container.NewVBox(
		widget.NewLabel("Tile Server"),
		sp.tileSelect,
		sp.intervalLabel,
		sp.intervalSlider,
	)

	sp.container = container.NewVBox(
		sp.statusLabel,
		widget.NewSeparator(),
		telemetrySection,
		widget.NewSeparator(),
		weatherSection,
		widget.NewSeparator(),
		controlSection,
		widget.NewSeparator(),
		sp.quitButton,
	)
}

// setupEventHandlers connects widget events to the registered handlers.
func (sp *StatusPanel) setupEventHandlers() {
	sp.tileSelect.OnChanged = func(name string) {
		if sp.tileSourceHandler != nil {
			sp.tileSourceHandler(name)
		}
	}

	// OnChangeEnded avoids a fetch-loop reschedule per drag pixel.
	sp.intervalSlider.OnChangeEnded = func(seconds float64) {
		d := time.Duration(seconds) * time.Second
		sp.intervalLabel.SetText(formatInterval(d))
		if sp.intervalHandler != nil {
			sp.intervalHandler(d)
		}
	}

	sp.quitButton.OnTapped = func() {
		if sp.quitHandler != nil {
			sp.quitHandler()
		}
	}
}

// SetTileSourceHandler registers the tile-server change handler.
func (sp *StatusPanel) SetTileSourceHandler(handler func(string)) {
	sp.tileSourceHandler = handler
}

// SetIntervalHandler registers the poll-interval change handler.
func (sp *StatusPanel) SetIntervalHandler(handler func(time.Duration)) {
	sp.intervalHandler = handler
}

// SetQuitHandler registers the quit handler.
func (sp *StatusPanel) SetQuitHandler(handler func()) {
	sp.quitHandler = handler
}

// SetTelemetry updates the station readouts.
func (sp *StatusPanel) SetTelemetry(t models.Telemetry, stats models.TrackStats) {
	fyne.Do(func() {
		sp.statusLabel.SetText("Tracking")
		sp.latLabel.SetText(fmt.Sprintf("Latitude: %.4f", t.Position.Latitude))
		sp.lonLabel.SetText(fmt.Sprintf("Longitude: %.4f", t.Position.Longitude))
		sp.altitudeLabel.SetText(fmt.Sprintf("Altitude: %.1f km", t.AltitudeKm))
		sp.velocityLabel.SetText(fmt.Sprintf("Velocity: %.0f km/h", t.VelocityKm))
		sp.visibilityLabel.SetText(fmt.Sprintf("Visibility: %s", t.Visibility))
		sp.countLabel.SetText(fmt.Sprintf("Updates: %d", stats.FetchCount))
	})
}

// SetWeather updates the ground weather block.
func (sp *StatusPanel) SetWeather(w models.WeatherReport) {
	fyne.Do(func() {
		desc := w.Description()
		if desc == "" {
			desc = fmt.Sprintf("code %d", w.WeatherCode)
		}
		day := "Nighttime"
		if w.IsDay {
			day = "Daytime"
		}
		sp.weatherDesc.SetText(fmt.Sprintf("Weather: %s", desc))
		sp.tempLabel.SetText(fmt.Sprintf("Temperature: %.1f °C", w.TemperatureC))
		sp.humidityLabel.SetText(fmt.Sprintf("Humidity: %.0f%%", w.HumidityPct))
		sp.windLabel.SetText(fmt.Sprintf("Wind Speed: %.1f km/h", w.WindSpeedKmh))
		sp.pressureLabel.SetText(fmt.Sprintf("Pressure: %.1f hPa", w.PressureHpa))
		sp.cloudLabel.SetText(fmt.Sprintf("Cloud Cover: %.0f%%", w.CloudCoverPct))
		sp.dayLabel.SetText(fmt.Sprintf("Day/Night: %s", day))
	})
}

// SetFetchError surfaces a failed poll without clearing the last telemetry.
func (sp *StatusPanel) SetFetchError(err error, stats models.TrackStats) {
	fyne.Do(func() {
		sp.statusLabel.SetText(fmt.Sprintf("Fetch failed (%d in a row), retrying", stats.ConsecutiveFailures))
	})
}

// GetContainer returns the panel container.
func (sp *StatusPanel) GetContainer() *fyne.Container {
	return sp.container
}

func formatInterval(d time.Duration) string {
	return fmt.Sprintf("Update Interval: %d s", int(d.Seconds()))
}
