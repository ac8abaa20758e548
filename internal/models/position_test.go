package models

import (
	"math"
	"testing"
)

func TestPositionValidate(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		wantErr bool
	}{
		{"origin", Position{0, 0}, false},
		{"london", Position{51.5074, -0.1278}, false},
		{"north pole", Position{90, 0}, false},
		{"south pole", Position{-90, 0}, false},
		{"antimeridian", Position{0, 180}, false},
		{"latitude too high", Position{90.01, 0}, true},
		{"latitude too low", Position{-91, 0}, true},
		{"longitude too high", Position{0, 180.5}, true},
		{"longitude too low", Position{0, -181}, true},
		{"nan latitude", Position{math.NaN(), 0}, true},
		{"nan longitude", Position{0, math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pos.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWrapLongitude(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{179.9, 179.9},
		{180, 180},
		{180.5, -179.5},
		{-180, 180},
		{-179.9, -179.9},
		{360, 0},
		{540, 180},
		{-540, 180},
		{725, 5},
	}

	for _, tt := range tests {
		got := WrapLongitude(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapLongitude(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
