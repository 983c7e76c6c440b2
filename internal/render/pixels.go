// Package render turns the tile map into pixels: the camera maths, an RGBA
// fill shared by every front end and, in ebiten builds, a screen painter.
package render

import (
	"image"
	"image/color"

	"bedrock/internal/tile"
)

// Sampler reads the tile under a floating-point map coordinate.
type Sampler interface {
	Sample(x, y float64) (tile.Block, bool)
}

// Fill paints an sw by sh RGBA buffer (4 bytes per pixel, row-major, top row
// first) with the view of sampler. Tiles are composited over bg; off-map
// pixels show bg.
func Fill(buf []byte, sw, sh int, v View, sampler Sampler, palette []color.RGBA, bg color.RGBA) {
	if len(buf) < sw*sh*4 {
		return
	}
	for py := 0; py < sh; py++ {
		for px := 0; px < sw; px++ {
			x, y := v.TileAt(px, py, sw, sh)
			col := bg
			if b, ok := sampler.Sample(x, y); ok {
				col = over(paletteColor(palette, b), bg)
			}
			base := (py*sw + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// Snapshot renders the view into a new image.
func Snapshot(sw, sh int, v View, sampler Sampler, palette []color.RGBA, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sw, sh))
	Fill(img.Pix, sw, sh, v, sampler, palette, bg)
	return img
}

// paletteColor looks b up in palette. Bytes past the end of a short palette
// use its last entry; an empty palette is transparent.
func paletteColor(palette []color.RGBA, b tile.Block) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := min(int(b.Byte()), len(palette)-1)
	return palette[idx]
}

// over composites non-premultiplied fg onto an opaque or translucent bg.
func over(fg, bg color.RGBA) color.RGBA {
	switch fg.A {
	case 0xff:
		return fg
	case 0:
		return bg
	}
	a := uint32(fg.A)
	inv := 0xff - a
	mix := func(f, b uint8) uint8 { return uint8((uint32(f)*a + uint32(b)*inv + 0x7f) / 0xff) }
	return color.RGBA{
		R: mix(fg.R, bg.R),
		G: mix(fg.G, bg.G),
		B: mix(fg.B, bg.B),
		A: uint8(min(a+uint32(bg.A)*inv/0xff, 0xff)),
	}
}
