package render

import (
	"image/color"
	"math"
	"testing"

	"bedrock/internal/core"
	"bedrock/internal/tile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomStaysOnGrid(t *testing.T) {
	v := NewView(core.MustSize(384, 256))
	assert.Equal(t, MinScale, v.Scale)
	assert.InDelta(t, math.Log2(384.0/64), v.MaxRaw(), 1e-9)

	assert.False(t, v.Zoom(1), "already fully zoomed in")
	require.True(t, v.Zoom(-1))
	assert.Equal(t, 90, v.Scale) // 64 * 2^0.5
	require.True(t, v.Zoom(-3))
	assert.Equal(t, 256, v.Scale)
	assert.False(t, v.Zoom(-2), "384 tiles is the widest view")
	assert.InDelta(t, 2.0, v.Raw(), 1e-9)
	require.True(t, v.Zoom(2))
	assert.Equal(t, 128, v.Scale)
}

func TestZoomIsCappedOnHugeMaps(t *testing.T) {
	v := NewView(core.MustSize(10000, 64))
	assert.InDelta(t, 6.0, v.MaxRaw(), 1e-9)
	assert.Zero(t, NewView(core.MustSize(32, 32)).MaxRaw())
}

func TestPanStepsAndClamps(t *testing.T) {
	v := NewView(core.MustSize(384, 256))
	v.PanHorizontal(1)
	assert.Equal(t, 4, v.PanX)
	v.PanHorizontal(0.2)
	assert.Equal(t, 8, v.PanX, "any positive delta is one step")
	v.PanHorizontal(-0.5)
	assert.Equal(t, 8, v.PanX, "ceil(-0.5) is no step")
	v.PanHorizontal(-3)
	assert.Equal(t, 4, v.PanX)

	v.PanVertical(-1)
	assert.Equal(t, 0, v.PanY)
	v.CenterOn(1000, 1000)
	assert.Equal(t, 383, v.PanX)
	assert.Equal(t, 255, v.PanY)
	v.PanVertical(1)
	assert.Equal(t, 255, v.PanY)
}

func TestSetMapSizeReclamps(t *testing.T) {
	v := NewView(core.MustSize(1024, 1024))
	for v.Zoom(-1) {
	}
	assert.Equal(t, 1024, v.Scale)
	v.CenterOn(900, 900)
	v.SetMapSize(core.MustSize(128, 64))
	assert.Equal(t, 128, v.Scale)
	assert.Equal(t, 127, v.PanX)
	assert.Equal(t, 63, v.PanY)
}

func TestTileAtFlipsY(t *testing.T) {
	v := NewView(core.MustSize(384, 256))
	v.CenterOn(100, 50)
	// 64 tiles over 64 pixels: one tile per pixel, centre at the middle.
	x, y := v.TileAt(32, 32, 64, 64)
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
	x, y = v.TileAt(0, 0, 64, 64)
	assert.InDelta(t, 68.0, x, 1e-9)
	assert.InDelta(t, 82.0, y, 1e-9)

	// A wide screen shows more columns at the same vertical scale.
	x, _ = v.TileAt(0, 32, 128, 64)
	assert.InDelta(t, 36.0, x, 1e-9)
}

func TestFillUsesBackgroundOffMap(t *testing.T) {
	m := core.NewMap(core.MustSize(4, 4))
	m.Set(1, 1, tile.New(tile.Stone, 0))
	m.Set(2, 1, tile.New(tile.Water, 0))
	palette := make([]color.RGBA, 256)
	palette[tile.New(tile.Stone, 0).Byte()] = color.RGBA{R: 0x6D, G: 0x6D, B: 0x6D, A: 0xFF}
	palette[tile.New(tile.Water, 0).Byte()] = color.RGBA{R: 0, G: 0, B: 0xFF, A: 0x80}
	bg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// One pixel per tile with the map's origin at the bottom left.
	v := View{Scale: 64, PanX: 32, PanY: 32, mapW: 4, mapH: 4}
	img := Snapshot(64, 64, v, m, palette, bg)

	pixelFor := func(tx, ty int) color.RGBA {
		for py := 0; py < 64; py++ {
			for px := 0; px < 64; px++ {
				x, y := v.TileAt(px, py, 64, 64)
				if int(x) == tx && int(y) == ty && x > 0 && y > 0 {
					return img.RGBAAt(px, py)
				}
			}
		}
		t.Fatalf("tile (%d, %d) not on screen", tx, ty)
		return color.RGBA{}
	}

	assert.Equal(t, palette[tile.New(tile.Stone, 0).Byte()], pixelFor(1, 1))
	water := pixelFor(2, 1)
	assert.Equal(t, uint8(0xFF), water.B)
	assert.InDelta(t, 0x7F, int(water.R), 1)
	assert.Equal(t, uint8(0xFF), water.A)
	assert.Equal(t, bg, pixelFor(3, 3), "air shows the background")
	assert.Equal(t, bg, img.RGBAAt(63, 0), "off-map pixels show the background")
}

func TestPaletteColorClampsIndex(t *testing.T) {
	short := []color.RGBA{{R: 1}, {R: 2}}
	assert.Equal(t, short[1], paletteColor(short, tile.New(tile.Sand, 3)))
	assert.Equal(t, color.RGBA{}, paletteColor(nil, tile.New(tile.Sand, 0)))
}

func TestScreenAtInvertsTileAt(t *testing.T) {
	v := NewView(core.MustSize(384, 256))
	v.Zoom(-2)
	v.CenterOn(200, 40)
	for _, p := range [][2]int{{0, 0}, {17, 400}, {639, 479}} {
		x, y := v.TileAt(p[0], p[1], 640, 480)
		px, py := v.ScreenAt(x, y, 640, 480)
		assert.InDelta(t, float64(p[0]), px, 1e-6)
		assert.InDelta(t, float64(p[1]), py, 1e-6)
	}
}
