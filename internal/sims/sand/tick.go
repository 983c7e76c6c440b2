package sand

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"bedrock/internal/core"
	"bedrock/internal/tile"
)

// MinSeed converts a num/den chance into the smallest 32-bit roll that fires
// it. It panics if den is zero or num exceeds den.
func MinSeed(num, den uint32) uint32 {
	if den == 0 || num > den {
		panic(fmt.Sprintf("sand: invalid chance %d/%d", num, den))
	}
	return math.MaxUint32 - uint32(uint64(math.MaxUint32)*uint64(num)/uint64(den))
}

// Roller supplies one uniform 32-bit roll per tile pair.
type Roller interface {
	Uint32() uint32
}

// rule is one probabilistic local update of a (lower, upper) tile pair.
type rule struct {
	name      string
	threshold uint32
	lhs       func(tile.Block) bool
	rhs       func(tile.Block) bool
	apply     func(lo, hi *tile.Block, w *core.ColumnWindows)
}

func swap(lo, hi *tile.Block, _ *core.ColumnWindows) { *lo, *hi = *hi, *lo }

func always(tile.Block) bool { return true }

func isMaterial(m tile.Material) func(tile.Block) bool {
	return func(b tile.Block) bool { return b.Material() == m }
}

func becomes(m tile.Material) func(lo, hi *tile.Block, w *core.ColumnWindows) {
	return func(lo, _ *tile.Block, _ *core.ColumnWindows) { lo.SetMaterial(m) }
}

// rules run in order on every pair; later rules see earlier rules' changes.
var rules = [...]rule{
	{
		name:      "gravity",
		threshold: MinSeed(31, 32),
		lhs:       func(b tile.Block) bool { return b.IsEmpty() || b.IsLiquid() },
		rhs:       func(b tile.Block) bool { return !b.IsStatic() && !b.IsLiquid() },
		apply:     swap,
	},
	{
		name:      "settle",
		threshold: MinSeed(1, 8),
		lhs:       tile.Block.IsLiquid,
		rhs:       func(b tile.Block) bool { return !b.IsStatic() && b.IsLiquid() },
		apply: func(lo, hi *tile.Block, w *core.ColumnWindows) {
			swap(lo, hi, w)
			w.Skip()
		},
	},
	{
		name:      "grow",
		threshold: MinSeed(1, 64),
		lhs:       isMaterial(tile.Dirt),
		rhs:       tile.Block.IsEmpty,
		apply:     becomes(tile.Grass),
	},
	{
		name:      "smother",
		threshold: MinSeed(1, 128),
		lhs:       isMaterial(tile.Grass),
		rhs:       func(b tile.Block) bool { return !b.IsEmpty() },
		apply:     becomes(tile.Dirt),
	},
	{
		name:      "burn out",
		threshold: MinSeed(1, 32),
		lhs:       isMaterial(tile.Fire),
		rhs:       always,
		apply:     becomes(tile.Air),
	},
}

// TickColumn advances one column by walking its pairs in increasing y.
func TickColumn(col []tile.Block, rng Roller) {
	w := core.NewColumnWindows(col)
	for {
		lo, hi, ok := w.Next()
		if !ok {
			return
		}
		roll := rng.Uint32()
		for i := range rules {
			r := &rules[i]
			if roll >= r.threshold && r.lhs(*lo) && r.rhs(*hi) {
				r.apply(lo, hi, &w)
			}
		}
	}
}

// Tick advances every column of m once, left to right, drawing rolls from rng.
func Tick(m *core.Map, rng Roller) {
	for _, col := range m.Columns() {
		TickColumn(col, rng)
	}
}

// TickParallel advances every column of m once using up to workers goroutines.
// A single base seed is drawn from rng and column x rolls from its own stream
// (base, x), so the outcome depends on the seed but not on workers. If ctx is
// cancelled part way the map may be partially ticked.
func TickParallel(ctx context.Context, m *core.Map, rng *core.RNG, workers int) error {
	base := rng.Uint64()
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for x, col := range m.Columns() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			TickColumn(col, core.NewStreamRNG(base, uint64(x)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
