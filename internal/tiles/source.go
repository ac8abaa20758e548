// Package tiles provides slippy-map tile sources and a caching HTTP fetcher.
package tiles

import (
	"fmt"
	"strings"
)

// Source describes one tile server. URLTemplate uses {x}, {y} and {z}
// placeholders.
type Source struct {
	Name        string
	URLTemplate string
	MaxZoom     int
}

// Built-in sources, mirroring the servers the tracker offers in its
// tile-source selector.
var (
	OpenStreetMap = Source{
		Name:        "OpenStreetMap",
		URLTemplate: "https://a.tile.openstreetmap.org/{z}/{x}/{y}.png",
		MaxZoom:     19,
	}
	GoogleNormal = Source{
		Name:        "Google Normal",
		URLTemplate: "https://mt0.google.com/vt/lyrs=m&hl=en&x={x}&y={y}&z={z}&s=Ga",
		MaxZoom:     22,
	}
	GoogleSatellite = Source{
		Name:        "Google Satellite",
		URLTemplate: "https://mt0.google.com/vt/lyrs=s&hl=en&x={x}&y={y}&z={z}&s=Ga",
		MaxZoom:     22,
	}
)

// Sources lists the selectable tile servers in display order.
var Sources = []Source{OpenStreetMap, GoogleNormal, GoogleSatellite}

// SourceNames returns the display names of all built-in sources.
func SourceNames() []string {
	names := make([]string, len(Sources))
	for i, s := range Sources {
		names[i] = s.Name
	}
	return names
}

// SourceByName resolves a display name to its source. Unknown names fall back
// to OpenStreetMap.
func SourceByName(name string) Source {
	for _, s := range Sources {
		if s.Name == name {
			return s
		}
	}
	return OpenStreetMap
}

// URL expands the source's template for one tile.
func (s Source) URL(zoom, x, y int) string {
	r := strings.NewReplacer(
		"{z}", fmt.Sprintf("%d", zoom),
		"{x}", fmt.Sprintf("%d", x),
		"{y}", fmt.Sprintf("%d", y),
	)
	return r.Replace(s.URLTemplate)
}
