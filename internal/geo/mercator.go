// Package geo implements the Web Mercator projection used by slippy-map tile
// servers: conversion between geographic coordinates and fractional tile
// coordinates at a given zoom level.
package geo

import (
	"math"
)

// TileSize is the edge length of a map tile in pixels.
const TileSize = 256

// Web Mercator is undefined at the poles; tile servers clip at ~±85.05°.
const maxLatitude = 85.05112878

// TilePoint is a fractional tile coordinate at a fixed zoom level. The
// integer parts select the tile, the fractional parts the position inside it.
type TilePoint struct {
	X float64
	Y float64
}

// Project converts latitude/longitude (degrees) to fractional tile
// coordinates at the given zoom. Latitude is clamped to the Mercator domain.
func Project(lat, lon float64, zoom int) TilePoint {
	if lat > maxLatitude {
		lat = maxLatitude
	} else if lat < -maxLatitude {
		lat = -maxLatitude
	}

	n := float64(int64(1) << uint(zoom))
	latRad := lat * math.Pi / 180

	x := (lon + 180) / 360 * n
	y := (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n

	return TilePoint{X: x, Y: y}
}

// Unproject converts fractional tile coordinates back to latitude/longitude
// in degrees.
func Unproject(p TilePoint, zoom int) (lat, lon float64) {
	n := float64(int64(1) << uint(zoom))

	lon = p.X/n*360 - 180
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*p.Y/n)))
	lat = latRad * 180 / math.Pi

	return lat, lon
}

// Tile returns the integer tile containing p, with the X index wrapped around
// the antimeridian and the Y index clamped to the valid range.
func (p TilePoint) Tile(zoom int) (x, y int) {
	n := 1 << uint(zoom)

	x = int(math.Floor(p.X))
	x = ((x % n) + n) % n

	y = int(math.Floor(p.Y))
	if y < 0 {
		y = 0
	} else if y >= n {
		y = n - 1
	}
	return x, y
}

// WrapTileX wraps a tile X index around the antimeridian at the given zoom.
func WrapTileX(x, zoom int) int {
	n := 1 << uint(zoom)
	return ((x % n) + n) % n
}

// PixelDelta returns the pixel offset of b relative to a, taking the shorter
// way around the antimeridian on the X axis.
func PixelDelta(a, b TilePoint, zoom int) (dx, dy float64) {
	n := float64(int64(1) << uint(zoom))

	dx = b.X - a.X
	if dx > n/2 {
		dx -= n
	} else if dx < -n/2 {
		dx += n
	}

	return dx * TileSize, (b.Y - a.Y) * TileSize
}
