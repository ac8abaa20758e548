package geo

import (
	"math"
	"testing"
)

func TestProjectKnownPoints(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		zoom     int
		wantX    float64
		wantY    float64
	}{
		{"origin zoom 0", 0, 0, 0, 0.5, 0.5},
		{"origin zoom 1", 0, 0, 1, 1, 1},
		{"date line east zoom 1", 0, 180, 1, 2, 1},
		{"west edge zoom 1", 0, -180, 1, 0, 1},
		{"origin zoom 4", 0, 0, 4, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.lat, tt.lon, tt.zoom)
			if math.Abs(p.X-tt.wantX) > 1e-9 || math.Abs(p.Y-tt.wantY) > 1e-9 {
				t.Errorf("Project(%v, %v, %d) = (%v, %v), want (%v, %v)",
					tt.lat, tt.lon, tt.zoom, p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProjectClampsLatitude(t *testing.T) {
	north := Project(89.9, 0, 3)
	clamped := Project(maxLatitude, 0, 3)
	if north.Y != clamped.Y {
		t.Errorf("latitude beyond Mercator domain not clamped: %v vs %v", north.Y, clamped.Y)
	}
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	points := []struct {
		lat, lon float64
	}{
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{0, 0},
		{64.13, -21.82},
		{-54.8, -68.3},
	}

	for _, pt := range points {
		for _, zoom := range []int{1, 4, 10, 16} {
			p := Project(pt.lat, pt.lon, zoom)
			lat, lon := Unproject(p, zoom)
			if math.Abs(lat-pt.lat) > 1e-6 || math.Abs(lon-pt.lon) > 1e-6 {
				t.Errorf("round trip (%v, %v) zoom %d = (%v, %v)", pt.lat, pt.lon, zoom, lat, lon)
			}
		}
	}
}

func TestTileWrapsAndClamps(t *testing.T) {
	tests := []struct {
		name  string
		point TilePoint
		zoom  int
		wantX int
		wantY int
	}{
		{"interior", TilePoint{X: 1.5, Y: 1.5}, 1, 1, 1},
		{"wrap west", TilePoint{X: -0.5, Y: 0.5}, 1, 1, 0},
		{"wrap east", TilePoint{X: 2.5, Y: 0.5}, 1, 0, 0},
		{"clamp north", TilePoint{X: 0.5, Y: -0.3}, 1, 0, 0},
		{"clamp south", TilePoint{X: 0.5, Y: 2.7}, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.point.Tile(tt.zoom)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Tile() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWrapTileX(t *testing.T) {
	tests := []struct {
		x, zoom, want int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 0},
		{-1, 1, 1},
		{-5, 2, 3},
		{17, 4, 1},
	}

	for _, tt := range tests {
		if got := WrapTileX(tt.x, tt.zoom); got != tt.want {
			t.Errorf("WrapTileX(%d, %d) = %d, want %d", tt.x, tt.zoom, got, tt.want)
		}
	}
}

func TestPixelDeltaShortWay(t *testing.T) {
	// Points straddling the antimeridian should use the short crossing.
	a := TilePoint{X: 0.1, Y: 1}
	b := TilePoint{X: 1.9, Y: 1}

	dx, dy := PixelDelta(a, b, 1)
	if math.Abs(dx-(-0.2*TileSize)) > 1e-9 {
		t.Errorf("dx = %v, want %v", dx, -0.2*TileSize)
	}
	if dy != 0 {
		t.Errorf("dy = %v, want 0", dy)
	}

	// Same direction without wrapping.
	dx, _ = PixelDelta(TilePoint{X: 0.5, Y: 1}, TilePoint{X: 1.0, Y: 1}, 1)
	if math.Abs(dx-0.5*TileSize) > 1e-9 {
		t.Errorf("dx = %v, want %v", dx, 0.5*TileSize)
	}
}
