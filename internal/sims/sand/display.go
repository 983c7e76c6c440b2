package sand

import (
	"image/color"

	"bedrock/internal/tile"
)

// missingColor marks tile bytes that do not decode to a material.
const missingColor = 0xFF00FFFF

// materialColors holds four 0xRRGGBBAA variants per material, indexed by seed.
var materialColors = [tile.MaterialCount][4]uint32{
	tile.Air:       {0x00000000, 0x00000000, 0x00000000, 0x00000000},
	tile.Bedrock:   {0x252525FF, 0xD7D7D7FF, 0x4B4B4BFF, 0xA2A2A2FF},
	tile.Stone:     {0x6D6D6DFF, 0x797979FF, 0x616161FF, 0x595959FF},
	tile.Dirt:      {0x4F2D11FF, 0x4F341DFF, 0x53361DFF, 0x4C2F16FF},
	tile.Sand:      {0xF5D88FFF, 0xF8E5B4FF, 0xFCEDC5FF, 0xF7D479FF},
	tile.Water:     {0x286DC3BF, 0x2565B8BF, 0x1F69BCBF, 0x2566B4BF},
	tile.Granite:   {0x8C6E64FF, 0x9A7B70FF, 0x7E6259FF, 0xA48A7FFF},
	tile.Magma:     {0xFF4800FF, 0xFF8200FF, 0xFFA000FF, 0xFEB300FF},
	tile.Basalt:    {0x171717FF, 0x3A3A3AFF, 0x2A2A2AFF, 0x1F1F1FFF},
	tile.Clay:      {0xA35A3CFF, 0xAE6545FF, 0x9A5236FF, 0xB46E4EFF},
	tile.Gravel:    {0x8A8580FF, 0x77726DFF, 0x9B968FFF, 0x6B6661FF},
	tile.Marble:    {0xEDEBE6FF, 0xE2DFD8FF, 0xF5F3EFFF, 0xD9D5CCFF},
	tile.Limestone: {0xCFC6A8FF, 0xC4BB9BFF, 0xD8D0B4FF, 0xBDB393FF},
	tile.Grass:     {0x9AB34EFF, 0x6D913FFF, 0x98AA39FF, 0xB3CC60FF},
	tile.Ice:       {0xBFE6F2CF, 0xB0DCEBCF, 0xCDEEF7CF, 0xA6D4E6CF},
	tile.Wood:      {0x7A5230FF, 0x6E4A2BFF, 0x855A35FF, 0x634226FF},
	tile.Glass:     {0xDDEEF444, 0xD2E6EE44, 0xE6F4F844, 0xCADFE844},
	tile.Fire:      {0xFF5A1EEF, 0xFF7A22EF, 0xFFB02EEF, 0xE8401AEF},
}

var sandPalette = buildPalette()

// Palette maps every tile byte to its colour. Undefined materials are magenta.
func (w *World) Palette() []color.RGBA { return sandPalette }

// TileColor returns the colour of b.
func TileColor(b tile.Block) color.RGBA { return sandPalette[b.Byte()] }

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		b := tile.Block(i)
		v := uint32(missingColor)
		if m := b.Material(); m.Valid() {
			v = materialColors[m][b.Seed()]
		}
		palette[i] = rgba(v)
	}
	return palette
}

func rgba(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
