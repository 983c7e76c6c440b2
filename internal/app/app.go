//go:build ebiten

package app

import (
	"errors"
	"time"

	"bedrock/internal/core"
	"bedrock/internal/level"
	"bedrock/internal/logging"
	"bedrock/internal/render"
	"bedrock/internal/sims/sand"
	"bedrock/internal/tile"
	"bedrock/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// censusEvery is how many frames pass between census pushes.
const censusEvery = 60

// CensusSink receives periodic per-material tile counts.
type CensusSink interface {
	SetCensus(counts [tile.MaterialCount]int)
}

// Options tunes the optional parts of the game.
type Options struct {
	// HUDWidth is the width of the parameter panel; zero hides it.
	HUDWidth int
	Census   CensusSink
	// SwitchLevel loads a level by name; L cycles the builtins when set.
	SwitchLevel func(name string) error
}

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.Painter
	view    render.View
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep
	opts    Options

	paused   bool
	tickOnce bool
	frames   int
	levelIdx int

	screenW, screenH int
}

// New constructs a Game for world with the view centred on its spawn point.
func New(world *sand.World, opts Options) *Game {
	g := &Game{
		world:   world,
		painter: render.NewPainter(),
		view:    render.NewView(world.Size()),
		hud:     ui.NewHUD(world, opts.HUDWidth),
		overlay: ui.NewOverlay(world),
		stepper: core.NewFixedStep(world.TPS()),
		opts:    opts,
	}
	g.centerOnSpawn()
	return g
}

// Reset regenerates the world with seed and recentres the view.
func (g *Game) Reset(seed int64) {
	g.world.Reset(seed)
	g.tickOnce = false
	g.stepper.Reset()
	g.view.SetMapSize(g.world.Size())
	g.centerOnSpawn()
}

func (g *Game) centerOnSpawn() {
	x, y, err := g.world.SpawnPoint()
	if err != nil && !errors.Is(err, sand.ErrSpawnBlocked) {
		logging.Warnf("no spawn point: %v", err)
		return
	}
	g.view.CenterOn(x, y)
}

// Update handles input and advances the simulation at the world's tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		logging.Debugf("paused: %v", g.paused)
	}
	if g.paused && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.world.SetTPS(g.world.TPS() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.world.SetTPS(g.world.TPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.world.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if g.opts.SwitchLevel != nil && inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.nextLevel()
	}
	g.handleWheel()

	g.hud.Update(g.mapWidth())
	g.overlay.Update()

	if g.stepper.TPS() != g.world.TPS() {
		g.stepper.SetTPS(g.world.TPS())
	}
	steps := g.stepper.Steps()
	switch {
	case g.tickOnce:
		g.world.Step()
		g.tickOnce = false
	case !g.paused:
		for range steps {
			g.world.Step()
		}
	}

	g.frames++
	if g.opts.Census != nil && g.frames%censusEvery == 0 {
		g.opts.Census.SetCensus(g.world.Census())
	}
	return nil
}

func (g *Game) handleWheel() {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case ctrl:
		if g.view.Zoom(dy) {
			logging.Debugf("view scale %d", g.view.Scale)
		}
	case shift:
		g.view.PanVertical(dy)
	default:
		if dy != 0 {
			g.view.PanHorizontal(dy)
		}
		if dx != 0 {
			g.view.PanVertical(dx)
		}
	}
}

func (g *Game) nextLevel() {
	names := level.BuiltinNames()
	g.levelIdx = (g.levelIdx + 1) % len(names)
	if err := g.opts.SwitchLevel(names[g.levelIdx]); err != nil {
		logging.Errorf("switch level: %v", err)
		return
	}
	g.view.SetMapSize(g.world.Size())
	g.centerOnSpawn()
}

func (g *Game) mapWidth() int { return max(g.screenW-g.hud.Width(), 0) }

// Draw renders the map, the overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.world.Background())
	mw := g.mapWidth()
	g.painter.Draw(screen, mw, g.screenH, g.view, g.world, g.world.Palette(), g.world.Background())
	g.overlay.Draw(screen, g.view, mw, g.screenH)
	g.hud.Draw(screen, mw, g.screenH)
}

// Layout uses the window's size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
