package main

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"iss-tracker/internal/config"
	"iss-tracker/internal/controllers"
	"iss-tracker/internal/logger"
	"iss-tracker/internal/models"
	"iss-tracker/internal/render"
	"iss-tracker/internal/services"
	"iss-tracker/internal/shutdown"
	"iss-tracker/internal/tiles"
	"iss-tracker/internal/views"
)

const (
	AppName = "ISS Tracker"
	AppID   = "com.issaps.iss-tracker"

	// Width reserved for the status panel when sizing the map pane.
	panelWidth = 300
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger := logger.NewConsoleLogger(parseLogLevel(cfg.LogLevel))
	appLogger.Info("main", "application starting", map[string]interface{}{
		"poll_interval": cfg.PollInterval.String(),
		"zoom":          cfg.Zoom,
		"tile_provider": cfg.TileProvider,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	// Models
	trackRepo := models.NewTrackRepository(cfg.TrailLength)

	// Services
	positionService := services.NewPositionService(cfg.PositionURL, cfg.HTTPTimeout)
	weatherService := services.NewWeatherService(cfg.WeatherURL, cfg.HTTPTimeout)
	tileFetcher := tiles.NewFetcher(cfg.TileCacheSize, cfg.HTTPTimeout, appLogger)
	compositor := render.NewCompositor(tileFetcher, appLogger)

	// Controller and poller; the poller takes the controller as its sink.
	controller := controllers.NewMainController(
		weatherService, compositor, trackRepo,
		tiles.SourceByName(cfg.TileProvider), cfg.Zoom,
		appLogger,
	)
	poller := services.NewPoller(positionService, trackRepo, controller, cfg.PollInterval, appLogger)
	controller.SetPoller(poller)

	// View
	mapWidth := cfg.WindowWidth - panelWidth
	mapHeight := cfg.WindowHeight - 40
	mainView := views.NewMainView(window, mapWidth, mapHeight, cfg.PollInterval)
	controller.SetMainView(mainView)

	// Teardown: poller first so no new updates reach the controller while
	// it drains its render and weather goroutines.
	manager := shutdown.NewManager(appLogger)
	manager.Register("controller", controller)
	manager.Register("poller", poller)
	manager.Listen()

	var quitOnce sync.Once
	quit := func() {
		quitOnce.Do(func() {
			go func() {
				manager.Shutdown()
				fyne.Do(func() {
					window.Close()
				})
			}()
		})
	}

	window.SetCloseIntercept(quit)
	window.SetOnClosed(func() {
		appLogger.Info("main", "window closed", nil)
	})
	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			quit()
		}
	})
	mainView.StatusPanel().SetQuitHandler(quit)

	// Signal-initiated shutdown also has to close the window.
	go func() {
		<-manager.Done()
		quit()
	}()

	mainView.Show()
	poller.Start()

	fyneApp.Run()

	// Covers exit paths that bypass the close intercept.
	manager.Shutdown()
	appLogger.Info("main", "application terminated", nil)
}

func parseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
