package render

import (
	"math"

	"bedrock/internal/core"
)

const (
	// MinScale is the narrowest view, in tiles across the screen height.
	MinScale = 64
	// MaxScale caps zooming out on very large maps.
	MaxScale = 4096
)

// View is the camera over the map: a centre point in tiles and a scale in
// tiles spanned by the screen height. Scale is 64*2^raw for a raw zoom factor
// clamped so the view never exceeds the map's larger side.
type View struct {
	PanX, PanY int
	Scale      int

	raw        float64
	mapW, mapH int
}

// NewView returns the closest view of a map of the given size, centred on its
// origin.
func NewView(size core.Size) View {
	return View{Scale: MinScale, mapW: size.W, mapH: size.H}
}

// MaxRaw returns the largest raw zoom factor for the map.
func (v View) MaxRaw() float64 {
	largest := min(max(v.mapW, v.mapH), MaxScale)
	if largest <= MinScale {
		return 0
	}
	return math.Log2(float64(largest) / MinScale)
}

// Raw returns the current raw zoom factor.
func (v View) Raw() float64 { return v.raw }

// Zoom applies a wheel delta: positive deltas zoom in by half a power of two
// per notch. A change that would leave the allowed range is ignored so zoom
// steps stay on the same grid. It reports whether the scale changed.
func (v *View) Zoom(delta float64) bool {
	raw := v.raw - delta/2
	if raw < 0 || raw > v.MaxRaw() {
		return false
	}
	v.raw = raw
	v.Scale = int(MinScale * math.Exp2(raw))
	return true
}

// PanHorizontal moves the centre by one pan step in the direction of delta.
func (v *View) PanHorizontal(delta float64) {
	v.PanX = panned(v.PanX, delta, v.Scale, v.mapW)
}

// PanVertical moves the centre by one pan step in the direction of delta.
func (v *View) PanVertical(delta float64) {
	v.PanY = panned(v.PanY, delta, v.Scale, v.mapH)
}

// Step is the pan distance in tiles.
func (v View) Step() int { return v.Scale / 16 }

func panned(base int, delta float64, scale, limit int) int {
	dir := int(math.Ceil(delta))
	dir = min(max(dir, -1), 1)
	return min(max(base+(scale/16)*dir, 0), max(limit-1, 0))
}

// CenterOn moves the centre to (x, y), clamped to the map.
func (v *View) CenterOn(x, y int) {
	v.PanX = min(max(x, 0), max(v.mapW-1, 0))
	v.PanY = min(max(y, 0), max(v.mapH-1, 0))
}

// SetMapSize adapts the view to a resized map, keeping the zoom if it still fits.
func (v *View) SetMapSize(size core.Size) {
	v.mapW, v.mapH = size.W, size.H
	if v.raw > v.MaxRaw() {
		v.raw = v.MaxRaw()
		v.Scale = int(MinScale * math.Exp2(v.raw))
	}
	v.CenterOn(v.PanX, v.PanY)
}

// TileAt maps a screen pixel to a map coordinate. Screen y grows downwards
// while map y grows upwards.
func (v View) TileAt(px, py, sw, sh int) (x, y float64) {
	if sh <= 0 {
		return math.NaN(), math.NaN()
	}
	unit := float64(v.Scale) / float64(sh)
	x = float64(v.PanX) - unit*float64(sw)/2 + float64(px)*unit
	y = float64(v.PanY) - float64(v.Scale)/2 + float64(sh-py)*unit
	return x, y
}

// ScreenAt is the inverse of TileAt: it maps a map coordinate to a pixel.
func (v View) ScreenAt(x, y float64, sw, sh int) (px, py float64) {
	if v.Scale <= 0 {
		return math.NaN(), math.NaN()
	}
	unit := float64(v.Scale) / float64(sh)
	px = (x - float64(v.PanX) + unit*float64(sw)/2) / unit
	py = float64(sh) - (y-float64(v.PanY)+float64(v.Scale)/2)/unit
	return px, py
}
