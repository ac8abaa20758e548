// Package render composes map frames: visible tiles, the position trail and
// the station marker, drawn into a plain RGBA image the view can display.
package render

import (
	"context"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"iss-tracker/internal/geo"
	"iss-tracker/internal/logger"
	"iss-tracker/internal/models"
	"iss-tracker/internal/tiles"
)

// TileProvider supplies tile images. *tiles.Fetcher satisfies it; tests use
// a fake.
type TileProvider interface {
	Get(ctx context.Context, src tiles.Source, zoom, x, y int) (image.Image, error)
}

var (
	placeholderColor = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	trailColor       = color.RGBA{R: 40, G: 90, B: 220, A: 255}
	markerFillColor  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	markerRingColor  = color.RGBA{R: 25, G: 35, B: 90, A: 255}
)

const (
	trailWidth   = 3
	markerRadius = 9
	ringWidth    = 3

	// Trail segments longer than this many pixels are wrap artifacts from
	// the antimeridian and are not drawn.
	maxSegmentPx = 4096
)

// Frame describes one map viewport to render.
type Frame struct {
	Center    models.Position
	Zoom      int
	Width     int
	Height    int
	Source    tiles.Source
	Trail     []models.Position
	Marker    models.Position
	HasMarker bool
}

// Compositor renders frames using a tile provider. Stateless apart from the
// provider's cache, so overlapping render passes are safe.
type Compositor struct {
	provider TileProvider
	log      logger.Logger
}

func NewCompositor(provider TileProvider, log logger.Logger) *Compositor {
	return &Compositor{provider: provider, log: log}
}

// Render draws the frame. Individual tile failures leave a placeholder and
// are logged; the frame as a whole only fails on context cancellation.
func (c *Compositor) Render(ctx context.Context, f Frame) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))

	center := geo.Project(f.Center.Latitude, f.Center.Longitude, f.Zoom)

	// Pixel position of the viewport's top-left corner in world space.
	originX := center.X*geo.TileSize - float64(f.Width)/2
	originY := center.Y*geo.TileSize - float64(f.Height)/2

	firstTileX := int(math.Floor(originX / geo.TileSize))
	firstTileY := int(math.Floor(originY / geo.TileSize))
	lastTileX := int(math.Floor((originX + float64(f.Width)) / geo.TileSize))
	lastTileY := int(math.Floor((originY + float64(f.Height)) / geo.TileSize))

	maxTile := 1 << uint(f.Zoom)

	for ty := firstTileY; ty <= lastTileY; ty++ {
		for tx := firstTileX; tx <= lastTileX; tx++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			px := tx*geo.TileSize - int(math.Round(originX))
			py := ty*geo.TileSize - int(math.Round(originY))
			rect := image.Rect(px, py, px+geo.TileSize, py+geo.TileSize)

			// No tiles above the north or below the south edge.
			if ty < 0 || ty >= maxTile {
				xdraw.Draw(dst, rect, image.NewUniform(placeholderColor), image.Point{}, xdraw.Src)
				continue
			}

			tile, err := c.provider.Get(ctx, f.Source, f.Zoom, geo.WrapTileX(tx, f.Zoom), ty)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				c.log.Warning("render", "tile unavailable", map[string]interface{}{
					"zoom":  f.Zoom,
					"x":     tx,
					"y":     ty,
					"error": err.Error(),
				})
				xdraw.Draw(dst, rect, image.NewUniform(placeholderColor), image.Point{}, xdraw.Src)
				continue
			}

			drawTile(dst, rect, tile)
		}
	}

	c.drawTrail(dst, f, center)

	if f.HasMarker {
		x, y := screenPoint(f, center, f.Marker)
		drawMarker(dst, x, y)
	}

	return dst, nil
}

// drawTile copies the tile into place, scaling when the server's tile size
// differs from the canonical 256.
func drawTile(dst *image.RGBA, rect image.Rectangle, tile image.Image) {
	b := tile.Bounds()
	if b.Dx() == geo.TileSize && b.Dy() == geo.TileSize {
		xdraw.Draw(dst, rect, tile, b.Min, xdraw.Src)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, rect, tile, b, xdraw.Src, nil)
}

func (c *Compositor) drawTrail(dst *image.RGBA, f Frame, center geo.TilePoint) {
	if len(f.Trail) < 2 {
		return
	}

	prevX, prevY := screenPoint(f, center, f.Trail[0])
	for _, pos := range f.Trail[1:] {
		x, y := screenPoint(f, center, pos)
		if abs(x-prevX) < maxSegmentPx && abs(y-prevY) < maxSegmentPx {
			drawLine(dst, prevX, prevY, x, y, trailWidth, trailColor)
		}
		prevX, prevY = x, y
	}
}

// screenPoint maps a position to viewport pixel coordinates relative to the
// frame center, wrapping across the antimeridian the short way.
func screenPoint(f Frame, center geo.TilePoint, pos models.Position) (int, int) {
	p := geo.Project(pos.Latitude, pos.Longitude, f.Zoom)
	dx, dy := geo.PixelDelta(center, p, f.Zoom)
	return f.Width/2 + int(math.Round(dx)), f.Height/2 + int(math.Round(dy))
}

// drawLine paints a stroked segment by stepping along the dominant axis and
// stamping a square dot of the given width.
func drawLine(dst *image.RGBA, x0, y0, x1, y1, width int, col color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		stampDot(dst, x0, y0, width, col)
		return
	}

	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		stampDot(dst, x, y, width, col)
	}
}

func stampDot(dst *image.RGBA, cx, cy, width int, col color.RGBA) {
	half := width / 2
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			if image.Pt(x, y).In(dst.Bounds()) {
				dst.SetRGBA(x, y, col)
			}
		}
	}
}

// drawMarker paints the station marker: a red disc inside a dark ring.
func drawMarker(dst *image.RGBA, cx, cy int) {
	outer := markerRadius
	inner := markerRadius - ringWidth

	for y := cy - outer; y <= cy+outer; y++ {
		for x := cx - outer; x <= cx+outer; x++ {
			if !image.Pt(x, y).In(dst.Bounds()) {
				continue
			}
			ddx := x - cx
			ddy := y - cy
			d2 := ddx*ddx + ddy*ddy
			switch {
			case d2 <= inner*inner:
				dst.SetRGBA(x, y, markerFillColor)
			case d2 <= outer*outer:
				dst.SetRGBA(x, y, markerRingColor)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
