package models

import (
	"fmt"
	"math"
	"time"
)

// Position is a geographic coordinate in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Telemetry is the full state reported by the location service for one fetch.
// Position is the only required part; the remaining fields are zero when the
// service omits them.
type Telemetry struct {
	Position   Position
	AltitudeKm float64
	VelocityKm float64 // km/h
	Visibility string  // "daylight" or "eclipsed"
	Timestamp  time.Time
}

// Validate checks that the coordinate lies within geographic bounds.
func (p Position) Validate() error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return fmt.Errorf("coordinate is NaN: %v", p)
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %.6f out of range [-90, 90]", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %.6f out of range [-180, 180]", p.Longitude)
	}
	return nil
}

// WrapLongitude normalizes a longitude in degrees into (-180, 180].
func WrapLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon <= -180 {
		lon += 360
	}
	return lon
}

func (p Position) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.Latitude, p.Longitude)
}
