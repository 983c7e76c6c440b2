package sand

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"bedrock/internal/core"
	"bedrock/internal/level"
	"bedrock/internal/logging"
	"bedrock/internal/tile"
)

var (
	// ErrNoSpawnChunk is returned when the level has no spawnable chunk that
	// owns any column.
	ErrNoSpawnChunk = errors.New("there are no spawn chunks in the level")
	// ErrSpawnBlocked is returned when the chosen spawn column is full to the top.
	ErrSpawnBlocked = errors.New("spawn column has no room")
)

// Observer receives timings from the world. Implementations must be cheap;
// they run on the simulation goroutine.
type Observer interface {
	TickDone(d time.Duration)
	Generated(level string, d time.Duration)
}

var _ core.Sim = (*World)(nil)

// World is the falling-sand simulation: a tile map generated from a level and
// advanced by the tick rules.
type World struct {
	cfg Config
	lvl level.Level
	m   *core.Map
	rng *core.RNG

	seed   int64
	ticks  uint64
	spawns uint64

	observer Observer
}

// NewWorld validates cfg and lvl and generates the initial map.
func NewWorld(cfg Config, lvl level.Level) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sand config: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	w := &World{cfg: cfg, lvl: lvl, m: &core.Map{}}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.m.Size() }

// SetObserver installs o; nil removes it.
func (w *World) SetObserver(o Observer) { w.observer = o }

// Reset regenerates the map from the current level. A zero seed keeps the
// configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.rng = core.NewRNG(seed)
	w.ticks = 0
	w.spawns = 0

	start := time.Now()
	logging.Debugf("generating level %q", w.lvl.Name)
	Generator{Partition: w.cfg.Partition}.Regenerate(w.m, w.lvl, w.cfg.Size, w.rng)
	elapsed := time.Since(start)
	logging.Notef("generated %q at %s with seed %d in %s", w.lvl.Name, w.cfg.Size, seed, elapsed)
	if w.observer != nil {
		w.observer.Generated(w.lvl.Name, elapsed)
	}
}

// Step advances the map by one tick.
func (w *World) Step() {
	start := time.Now()
	if w.cfg.Workers == 0 {
		Tick(w.m, w.rng)
	} else if err := TickParallel(context.Background(), w.m, w.rng, w.cfg.Workers); err != nil {
		logging.Warnf("tick %d: %v", w.ticks, err)
	}
	w.ticks++
	if w.observer != nil {
		w.observer.TickDone(time.Since(start))
	}
}

// LoadLevel validates lvl, makes it current and regenerates with the current seed.
func (w *World) LoadLevel(lvl level.Level) error {
	if err := lvl.Validate(); err != nil {
		return err
	}
	w.lvl = lvl
	w.Reset(w.seed)
	return nil
}

// Resize changes the map size and regenerates.
func (w *World) Resize(size core.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	w.cfg.Size = size
	w.Reset(w.seed)
	return nil
}

// Level returns the current level.
func (w *World) Level() level.Level { return w.lvl }

// Map exposes the tile map. Callers must not hold it across Reset.
func (w *World) Map() *core.Map { return w.m }

// Sample reads the tile under a floating-point map coordinate.
func (w *World) Sample(x, y float64) (tile.Block, bool) { return w.m.Sample(x, y) }

// Background is the colour shown behind empty and off-map tiles.
func (w *World) Background() color.RGBA { return w.lvl.Background.ToRGBA() }

// Seed returns the seed the current map was generated with.
func (w *World) Seed() int64 { return w.seed }

// Ticks counts steps since the last Reset.
func (w *World) Ticks() uint64 { return w.ticks }

// TPS returns the target tick rate.
func (w *World) TPS() int { return w.cfg.TPS }

// SetTPS changes the target tick rate, clamped to [MinTPS, MaxTPS].
func (w *World) SetTPS(tps int) {
	w.cfg.TPS = min(max(tps, MinTPS), MaxTPS)
}

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Census counts tiles per material.
func (w *World) Census() [tile.MaterialCount]int { return w.m.Census() }

// Spans returns the columns owned by each chunk of the current level.
func (w *World) Spans() []Span { return ChunkSpans(w.lvl, w.m.Width(), w.cfg.Partition) }

// SpawnPoint picks a random spawnable chunk, a random column in it and the
// first empty row above that column's highest non-empty tile. Successive
// calls draw from their own streams so the tick sequence is unaffected.
func (w *World) SpawnPoint() (x, y int, err error) {
	spans := SpawnSpans(w.lvl, w.m.Width(), w.cfg.Partition)
	logging.Notef("there are %d spawn chunk(s) in level %q", len(spans), w.lvl.Name)
	if len(spans) == 0 {
		return 0, 0, ErrNoSpawnChunk
	}
	rng := core.NewStreamRNG(uint64(w.seed), w.spawns)
	w.spawns++
	s := spans[rng.IntN(len(spans))]
	x = s.Start + rng.IntN(s.Width())

	col := w.m.Column(x)
	top := len(col) - 1
	for top >= 0 && col[top].IsEmpty() {
		top--
	}
	if top+1 >= len(col) {
		return x, 0, ErrSpawnBlocked
	}
	return x, top + 1, nil
}
