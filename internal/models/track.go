package models

import (
	"sync"
)

// TrackStats summarizes the polling history for the status panel.
type TrackStats struct {
	FetchCount          int
	FailureCount        int
	ConsecutiveFailures int
}

// TrackRepository holds the most recently applied telemetry and a bounded
// trail of past positions, oldest first. All methods are safe for concurrent
// use; the poller writes and the UI reads.
type TrackRepository struct {
	mu       sync.RWMutex
	current  Telemetry
	hasFix   bool
	trail    []Position
	trailMax int
	stats    TrackStats
}

// NewTrackRepository creates a repository retaining at most trailMax trail
// points. A non-positive trailMax disables the trail.
func NewTrackRepository(trailMax int) *TrackRepository {
	if trailMax < 0 {
		trailMax = 0
	}
	return &TrackRepository{trailMax: trailMax}
}

// Apply records a successful fetch: the telemetry becomes current and its
// position is appended to the trail, evicting the oldest point when full.
func (r *TrackRepository) Apply(t Telemetry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = t
	r.hasFix = true
	r.stats.FetchCount++
	r.stats.ConsecutiveFailures = 0

	if r.trailMax == 0 {
		return
	}
	r.trail = append(r.trail, t.Position)
	if len(r.trail) > r.trailMax {
		// shift in place so the backing array does not grow unbounded
		copy(r.trail, r.trail[1:])
		r.trail = r.trail[:r.trailMax]
	}
}

// RecordFailure notes a failed fetch. The current telemetry and trail are
// retained untouched.
func (r *TrackRepository) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.FailureCount++
	r.stats.ConsecutiveFailures++
}

// Current returns the last applied telemetry and whether any fetch has
// succeeded yet.
func (r *TrackRepository) Current() (Telemetry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, r.hasFix
}

// Trail returns a copy of the retained positions, oldest first.
func (r *TrackRepository) Trail() []Position {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Position, len(r.trail))
	copy(out, r.trail)
	return out
}

// Stats returns a snapshot of the polling counters.
func (r *TrackRepository) Stats() TrackStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}
