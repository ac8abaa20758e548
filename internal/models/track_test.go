package models

import (
	"testing"
)

func TestTrackRepositoryApply(t *testing.T) {
	repo := NewTrackRepository(10)

	if _, ok := repo.Current(); ok {
		t.Fatal("fresh repository should not report a fix")
	}

	tel := Telemetry{Position: Position{Latitude: 51.5, Longitude: -0.12}}
	repo.Apply(tel)

	got, ok := repo.Current()
	if !ok {
		t.Fatal("Current() should report a fix after Apply")
	}
	if got.Position != tel.Position {
		t.Errorf("Current() position = %v, want %v", got.Position, tel.Position)
	}
	if stats := repo.Stats(); stats.FetchCount != 1 {
		t.Errorf("FetchCount = %d, want 1", stats.FetchCount)
	}
}

func TestTrackRepositoryFailureRetainsState(t *testing.T) {
	repo := NewTrackRepository(10)

	tel := Telemetry{Position: Position{Latitude: 51.5, Longitude: -0.12}}
	repo.Apply(tel)
	repo.RecordFailure()
	repo.RecordFailure()

	got, ok := repo.Current()
	if !ok || got.Position != tel.Position {
		t.Errorf("position after failures = %v (ok=%v), want %v retained", got.Position, ok, tel.Position)
	}

	stats := repo.Stats()
	if stats.FailureCount != 2 || stats.ConsecutiveFailures != 2 {
		t.Errorf("stats = %+v, want 2 failures, 2 consecutive", stats)
	}

	// A success resets the consecutive counter but not the total.
	repo.Apply(Telemetry{Position: Position{Latitude: 51.6, Longitude: -0.10}})
	stats = repo.Stats()
	if stats.ConsecutiveFailures != 0 {
		t.Errorf("ConsecutiveFailures after success = %d, want 0", stats.ConsecutiveFailures)
	}
	if stats.FailureCount != 2 {
		t.Errorf("FailureCount after success = %d, want 2", stats.FailureCount)
	}
}

func TestTrackRepositoryTrailBounded(t *testing.T) {
	const max = 5
	repo := NewTrackRepository(max)

	for i := 0; i < 12; i++ {
		repo.Apply(Telemetry{Position: Position{Latitude: float64(i), Longitude: 0}})
	}

	trail := repo.Trail()
	if len(trail) != max {
		t.Fatalf("trail length = %d, want %d", len(trail), max)
	}

	// Oldest first: applies 7..11 survive.
	for i, pos := range trail {
		want := float64(7 + i)
		if pos.Latitude != want {
			t.Errorf("trail[%d].Latitude = %v, want %v", i, pos.Latitude, want)
		}
	}
}

func TestTrackRepositoryTrailDisabled(t *testing.T) {
	repo := NewTrackRepository(0)
	repo.Apply(Telemetry{Position: Position{Latitude: 1, Longitude: 2}})

	if trail := repo.Trail(); len(trail) != 0 {
		t.Errorf("trail with max 0 should stay empty, got %d points", len(trail))
	}
}
