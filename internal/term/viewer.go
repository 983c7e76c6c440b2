// Package term is a terminal front end: the map drawn with half blocks, two
// tiles per character cell, plus a one-line status bar.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"bedrock/internal/core"
	"bedrock/internal/logging"
	"bedrock/internal/render"
	"bedrock/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	frameInterval = time.Second / 30
	halfBlock     = '▀'
)

// Viewer drives a world on a tcell screen.
type Viewer struct {
	screen  tcell.Screen
	world   *sand.World
	view    render.View
	stepper *core.FixedStep
	paused  bool
	buf     []byte
}

// New returns a viewer centred on the world's spawn point. The screen must
// already be initialised.
func New(screen tcell.Screen, world *sand.World) *Viewer {
	v := &Viewer{
		screen:  screen,
		world:   world,
		view:    render.NewView(world.Size()),
		stepper: core.NewFixedStep(world.TPS()),
	}
	v.recenter()
	return v
}

func (v *Viewer) recenter() {
	x, y, err := v.world.SpawnPoint()
	if err != nil {
		logging.Debugf("spawn point: %v", err)
	}
	v.view.CenterOn(x, y)
}

// Paused reports whether ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// View returns the current camera.
func (v *Viewer) View() render.View { return v.view }

// HandleEvent applies a key or resize event and reports whether the viewer
// should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

func (v *Viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.view.PanHorizontal(-1)
	case tcell.KeyRight:
		v.view.PanHorizontal(1)
	case tcell.KeyUp:
		v.view.PanVertical(1)
	case tcell.KeyDown:
		v.view.PanVertical(-1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case '+', '=':
			v.view.Zoom(1)
		case '-':
			v.view.Zoom(-1)
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.world.Step()
		case 'r':
			v.world.Reset(v.world.Seed())
			v.stepper.Reset()
			v.recenter()
		}
	}
	return false
}

// Tick advances the world by however many ticks are due.
func (v *Viewer) Tick() {
	v.stepper.SetTPS(v.world.TPS())
	n := v.stepper.Steps()
	if v.paused {
		return
	}
	for range n {
		v.world.Step()
	}
}

// Draw renders the map and the status line and shows the screen.
func (v *Viewer) Draw() {
	cols, rows := v.screen.Size()
	v.screen.Clear()
	if cols <= 0 || rows <= 1 {
		v.screen.Show()
		return
	}
	mapRows := rows - 1
	sw, sh := cols, mapRows*2
	if need := sw * sh * 4; len(v.buf) < need {
		v.buf = make([]byte, need)
	}
	bg := v.world.Background()
	render.Fill(v.buf, sw, sh, v.view, v.world, v.world.Palette(), bg)
	for row := range mapRows {
		for col := range cols {
			top := pixel(v.buf, sw, col, row*2)
			bottom := pixel(v.buf, sw, col, row*2+1)
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			v.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	v.drawStatus(rows-1, cols)
	v.screen.Show()
}

func (v *Viewer) drawStatus(row, cols int) {
	state := "running"
	if v.paused {
		state = "paused"
	}
	// State and the quit hint come first so narrow terminals keep them.
	line := fmt.Sprintf(" %s | q quits | %s | seed %d | tick %d | %d tps",
		state, v.world.Level().Name, v.world.Seed(), v.world.Ticks(), v.world.TPS())
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > cols {
			break
		}
		v.screen.SetContent(x, row, r, nil, style)
		x += w
	}
	for ; x < cols; x++ {
		v.screen.SetContent(x, row, ' ', nil, style)
	}
}

// Run polls input and redraws until ctx is cancelled or the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}

func pixel(buf []byte, sw, x, y int) color.RGBA {
	i := (y*sw + x) * 4
	return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
