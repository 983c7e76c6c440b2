//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"bedrock/internal/level"
	"bedrock/internal/render"
	"bedrock/internal/sims/sand"
	"bedrock/internal/tile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type spanProvider interface {
	Spans() []sand.Span
	Level() level.Level
}

// Overlay draws optional debugging visuals over the map view. Key 1 toggles
// the chunk spans and key 2 the readout of the tile under the cursor.
type Overlay struct {
	world     spanProvider
	sampler   render.Sampler
	showSpans bool
	showTile  bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a world that can both report its
// chunk spans and sample tiles.
func NewOverlay(world interface {
	spanProvider
	render.Sampler
}) *Overlay {
	o := &Overlay{world: world, sampler: world}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSpans = !o.showSpans
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showTile = !o.showTile
	}
}

// Draw renders the enabled overlays onto the sw by sh map area.
func (o *Overlay) Draw(screen *ebiten.Image, v render.View, sw, sh int) {
	if sw <= 0 || sh <= 0 {
		return
	}
	if o.showSpans {
		o.drawSpans(screen, v, sw, sh)
	}
	if o.showTile {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && mx < sw && my >= 0 && my < sh {
			o.drawReadout(screen, v, mx, my, sw, sh)
		}
	}
}

func (o *Overlay) drawSpans(screen *ebiten.Image, v render.View, sw, sh int) {
	const band = 18
	chunks := o.world.Level().Chunks
	face := basicfont.Face7x13
	for _, s := range o.world.Spans() {
		x0, _ := v.ScreenAt(float64(s.Start), 0, sw, sh)
		x1, _ := v.ScreenAt(float64(s.End), 0, sw, sh)
		if x1 < 0 || x0 > float64(sw) {
			continue
		}
		x0, x1 = clamp(x0, 0, float64(sw)), clamp(x1, 0, float64(sw))

		tint := color.RGBA{R: 110, G: 110, B: 120, A: 110}
		if s.Chunk < len(chunks) && chunks[s.Chunk].Spawnable {
			tint = color.RGBA{R: 60, G: 200, B: 90, A: 140}
		}
		o.drawRect(screen, x0, 0, x1-x0, band, tint)
		o.drawLine(screen, x0, 0, x0, float64(sh), 1, color.RGBA{R: 240, G: 240, B: 240, A: 160})
		if x1-x0 > 20 {
			text.Draw(screen, fmt.Sprint(s.Chunk), face, int(x0)+4, 13, color.White)
		}
	}
}

func (o *Overlay) drawReadout(screen *ebiten.Image, v render.View, mx, my, sw, sh int) {
	x, y := v.TileAt(mx, my, sw, sh)
	line := fmt.Sprintf("(%d, %d) off map", int(math.Floor(x)), int(math.Floor(y)))
	if b, ok := o.sampler.Sample(x, y); ok {
		line = fmt.Sprintf("(%d, %d) %s", int(x), int(y), describe(b))
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	px, py := float64(mx+12), float64(my+12)
	if px+float64(bounds.Dx())+8 > float64(sw) {
		px = float64(mx - bounds.Dx() - 12)
	}
	o.drawRect(screen, px-4, py-4, float64(bounds.Dx()+8), float64(bounds.Dy()+8), color.RGBA{R: 10, G: 10, B: 14, A: 200})
	text.Draw(screen, line, face, int(px), int(py)+bounds.Dy()-2, color.White)
}

func describe(b tile.Block) string {
	return fmt.Sprintf("%s seed %d [%s]", b.Material(), b.Seed(), b.Tags())
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func clamp(v, lo, hi float64) float64 { return math.Min(math.Max(v, lo), hi) }
