package controllers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"iss-tracker/internal/logger"
	"iss-tracker/internal/models"
	"iss-tracker/internal/render"
	"iss-tracker/internal/services"
	"iss-tracker/internal/tiles"
	"iss-tracker/internal/views"
)

// Render resolution of the composed map frame. The view scales it to fit.
const (
	frameWidth  = 1024
	frameHeight = 768
)

// MainController connects the poller to the view. It is the poller's sink:
// every update is marshaled onto the UI thread with fyne.Do, renders are
// generation-tagged so a slow frame never overwrites a newer one, and after
// Shutdown no widget is touched again.
type MainController struct {
	poller     *services.Poller
	weather    *services.WeatherService
	compositor *render.Compositor
	repo       *models.TrackRepository
	mainView   *views.MainView
	log        logger.Logger

	mu     sync.RWMutex
	source tiles.Source
	zoom   int

	renderGen   atomic.Uint64
	weatherBusy atomic.Bool
	closed      atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewMainController(
	weather *services.WeatherService,
	compositor *render.Compositor,
	repo *models.TrackRepository,
	source tiles.Source,
	zoom int,
	log logger.Logger,
) *MainController {
	ctx, cancel := context.WithCancel(context.Background())
	return &MainController{
		weather:    weather,
		compositor: compositor,
		repo:       repo,
		source:     source,
		zoom:       zoom,
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetPoller associates the poller, which is constructed after the controller
// because it takes the controller as its sink.
func (mc *MainController) SetPoller(poller *services.Poller) {
	mc.poller = poller
}

// SetMainView associates the view and wires its control events.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view

	panel := view.StatusPanel()
	panel.SetTileSourceHandler(mc.ChangeTileSource)
	panel.SetIntervalHandler(mc.ChangeInterval)
}

// ApplyTelemetry implements services.Sink for successful fetches.
func (mc *MainController) ApplyTelemetry(t models.Telemetry) {
	if mc.closed.Load() {
		return
	}

	stats := mc.repo.Stats()
	mc.mainView.StatusPanel().SetTelemetry(t, stats)

	mc.renderFrame(t.Position)
	mc.fetchWeather(t.Position)
}

// ReportFetchError implements services.Sink for failed fetches. The previous
// marker and telemetry stay on screen.
func (mc *MainController) ReportFetchError(err error) {
	if mc.closed.Load() {
		return
	}
	mc.mainView.StatusPanel().SetFetchError(err, mc.repo.Stats())
}

// ChangeTileSource switches the tile server and redraws the current view.
func (mc *MainController) ChangeTileSource(name string) {
	src := tiles.SourceByName(name)

	mc.mu.Lock()
	mc.source = src
	mc.mu.Unlock()

	mc.log.Info("controller", "tile source changed", map[string]interface{}{
		"source": src.Name,
	})

	if t, ok := mc.repo.Current(); ok {
		mc.renderFrame(t.Position)
	}
}

// ChangeInterval forwards a new polling period to the poller.
func (mc *MainController) ChangeInterval(d time.Duration) {
	mc.poller.SetInterval(d)
	mc.log.Info("controller", "poll interval changed", map[string]interface{}{
		"interval": mc.poller.Interval().String(),
	})
}

// renderFrame composes a map frame centered on the position in the
// background and swaps it into the map pane, unless a newer render has
// started meanwhile.
func (mc *MainController) renderFrame(center models.Position) {
	gen := mc.renderGen.Add(1)

	mc.mu.RLock()
	src := mc.source
	zoom := mc.zoom
	mc.mu.RUnlock()

	frame := render.Frame{
		Center:    center,
		Zoom:      zoom,
		Width:     frameWidth,
		Height:    frameHeight,
		Source:    src,
		Trail:     mc.repo.Trail(),
		Marker:    center,
		HasMarker: true,
	}

	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()

		img, err := mc.compositor.Render(mc.ctx, frame)
		if err != nil {
			// Only context cancellation reaches here.
			return
		}
		if gen != mc.renderGen.Load() || mc.closed.Load() {
			return
		}
		mc.mainView.MapPane().SetFrame(img)
	}()
}

// fetchWeather requests ground conditions under the station. At most one
// request is in flight; updates arriving meanwhile are skipped, the next
// position refreshes the weather anyway.
func (mc *MainController) fetchWeather(pos models.Position) {
	if !mc.weatherBusy.CompareAndSwap(false, true) {
		return
	}

	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		defer mc.weatherBusy.Store(false)

		report, err := mc.weather.Fetch(mc.ctx, pos)
		if err != nil {
			if mc.ctx.Err() == nil {
				mc.log.Warning("controller", "weather fetch failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
			return
		}
		if mc.closed.Load() {
			return
		}
		mc.mainView.StatusPanel().SetWeather(report)
	}()
}

// Shutdown stops all background work. No widget is mutated after it begins.
func (mc *MainController) Shutdown() {
	if mc.closed.Swap(true) {
		return
	}
	mc.cancel()
	mc.wg.Wait()
	mc.log.Info("controller", "controller stopped", nil)
}

var _ services.Sink = (*MainController)(nil)
