package services

import (
	"context"
	"sync"
	"time"

	"iss-tracker/internal/config"
	"iss-tracker/internal/logger"
	"iss-tracker/internal/models"
)

// Sink receives the poller's outcomes. The controller implements it and
// marshals the calls onto the UI thread. Implementations must be safe for
// concurrent calls: overlapping requests complete on their own goroutines.
type Sink interface {
	ApplyTelemetry(t models.Telemetry)
	ReportFetchError(err error)
}

// Poller drives the fetch loop: an immediate fetch on start, then one per
// interval tick. Each request is tagged with a sequence number; a completion
// older than the newest applied one is discarded, so a slow stale response
// can never overwrite fresher data. Errors are recorded and reported but
// never stop the loop.
type Poller struct {
	fetcher PositionFetcher
	repo    *models.TrackRepository
	sink    Sink
	log     logger.Logger

	mu       sync.Mutex
	interval time.Duration
	issued   uint64
	applied  uint64

	intervalCh chan time.Duration
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	startOnce  sync.Once
}

func NewPoller(fetcher PositionFetcher, repo *models.TrackRepository, sink Sink, interval time.Duration, log logger.Logger) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		fetcher:    fetcher,
		repo:       repo,
		sink:       sink,
		log:        log,
		interval:   clampInterval(interval),
		intervalCh: make(chan time.Duration, 1),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start launches the polling loop. Subsequent calls are no-ops.
func (p *Poller) Start() {
	p.startOnce.Do(func() {
		p.wg.Add(1)
		go p.run()
	})
}

func (p *Poller) run() {
	defer p.wg.Done()

	p.launchFetch()

	timer := time.NewTimer(p.Interval())
	defer timer.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case d := <-p.intervalCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(d)
		case <-timer.C:
			p.launchFetch()
			timer.Reset(p.Interval())
		}
	}
}

// launchFetch issues one tagged request in the background. Requests may
// overlap when the service is slower than the interval.
func (p *Poller) launchFetch() {
	p.mu.Lock()
	p.issued++
	seq := p.issued
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		t, err := p.fetcher.FetchPosition(p.ctx)
		p.complete(seq, t, err)
	}()
}

func (p *Poller) complete(seq uint64, t models.Telemetry, err error) {
	// Teardown in progress: no state mutation, no sink calls.
	if p.ctx.Err() != nil {
		return
	}

	if err != nil {
		p.repo.RecordFailure()
		p.log.Error("poller", err, map[string]interface{}{
			"seq": seq,
		})
		p.sink.ReportFetchError(err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq <= p.applied {
		p.log.Debug("poller", "stale completion discarded", map[string]interface{}{
			"seq":     seq,
			"applied": p.applied,
		})
		return
	}
	p.applied = seq

	p.repo.Apply(t)
	p.log.Debug("poller", "position applied", map[string]interface{}{
		"seq":      seq,
		"position": t.Position.String(),
	})
	p.sink.ApplyTelemetry(t)
}

// SetInterval changes the period for subsequent ticks, clamped to the
// configured bounds. The currently pending tick is rescheduled.
func (p *Poller) SetInterval(d time.Duration) {
	d = clampInterval(d)

	p.mu.Lock()
	p.interval = d
	p.mu.Unlock()

	select {
	case p.intervalCh <- d:
	default:
		// loop is mid-reschedule; it picks up the new interval next tick
	}
}

// Interval returns the current polling period.
func (p *Poller) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Shutdown stops the loop and waits for in-flight requests to unwind. After
// it returns no sink call will ever be made again.
func (p *Poller) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func clampInterval(d time.Duration) time.Duration {
	if d < config.MinPollInterval {
		return config.MinPollInterval
	}
	if d > config.MaxPollInterval {
		return config.MaxPollInterval
	}
	return d
}
