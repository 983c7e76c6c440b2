package sand

import (
	"fmt"

	"bedrock/internal/core"
	"bedrock/internal/level"
	"bedrock/internal/tile"
)

// Generator stamps a level's chunks and layers into a map.
type Generator struct {
	Partition Partition
}

// Generate builds a new map of the given size from lvl with the default
// partition policy. A nil rng leaves every tile seed at zero.
func Generate(lvl level.Level, size core.Size, rng *core.RNG) *core.Map {
	m := &core.Map{}
	Generator{}.Regenerate(m, lvl, size, rng)
	return m
}

// Regenerate resizes m (discarding its contents), rolls tile seeds when rng is
// non-nil, fills each column from its chunk's layers bottom up and finally
// forces row 0 to Bedrock. It panics if the level has no chunks or more than
// level.MaxChunks, or if size is invalid.
func (g Generator) Regenerate(m *core.Map, lvl level.Level, size core.Size, rng *core.RNG) {
	if n := len(lvl.Chunks); n == 0 || n > level.MaxChunks {
		panic(fmt.Sprintf("sand: level %q has %d chunks, want 1..%d", lvl.Name, n, level.MaxChunks))
	}
	m.Resize(size)

	if rng != nil {
		for i := range m.Cells() {
			m.Cells()[i].SetSeed(rng.Seed2())
		}
	}

	chunks := newTracker(lvl.Weights(), size.W, g.Partition == PartitionEqual)
	for x, col := range m.Columns() {
		ci, ok := chunks.at(x)
		if !ok {
			break
		}
		fillColumn(col, lvl.Chunks[ci])
	}

	for _, col := range m.Columns() {
		col[0].SetMaterial(tile.Bedrock)
	}
}

func fillColumn(col []tile.Block, c level.Chunk) {
	layers := newTracker(c.Weights(), len(col), false)
	for y := range col {
		li, ok := layers.at(y)
		if !ok {
			return
		}
		col[y].SetMaterial(c.Layers[li].Material)
	}
}

// Span is a half-open column range [Start, End) owned by one chunk.
type Span struct {
	Chunk int
	Start int
	End   int
}

// Width returns End-Start.
func (s Span) Width() int { return s.End - s.Start }

// ChunkSpans returns the columns each chunk owns under policy, in chunk order.
// Chunks that own no column are omitted.
func ChunkSpans(lvl level.Level, width int, policy Partition) []Span {
	var spans []Span
	chunks := newTracker(lvl.Weights(), width, policy == PartitionEqual)
	for x := 0; x < width; x++ {
		ci, ok := chunks.at(x)
		if !ok {
			break
		}
		if n := len(spans); n > 0 && spans[n-1].Chunk == ci {
			spans[n-1].End = x + 1
			continue
		}
		spans = append(spans, Span{Chunk: ci, Start: x, End: x + 1})
	}
	return spans
}

// SpawnSpans returns the spans of spawnable chunks.
func SpawnSpans(lvl level.Level, width int, policy Partition) []Span {
	var out []Span
	for _, s := range ChunkSpans(lvl, width, policy) {
		if lvl.Chunks[s.Chunk].Spawnable {
			out = append(out, s)
		}
	}
	return out
}
