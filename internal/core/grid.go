package core

import (
	"iter"

	"bedrock/internal/tile"
)

// Map stores the tile grid column-major: data[x*height+y], so every column is a
// contiguous slice. y grows upwards; row 0 is the floor.
type Map struct {
	height int
	data   []tile.Block
}

// NewMap allocates an all-Air map. It panics if size is invalid.
func NewMap(size Size) *Map {
	m := &Map{}
	m.Resize(size)
	return m
}

// Resize replaces the buffer with a cleared one of the new size. Old contents are
// lost. It panics if size is invalid.
func (m *Map) Resize(size Size) {
	if err := size.Validate(); err != nil {
		panic(err)
	}
	n := size.Area()
	if cap(m.data) >= n {
		m.data = m.data[:n]
		clear(m.data)
	} else {
		m.data = make([]tile.Block, n)
	}
	m.height = size.H
}

// Width returns the number of columns.
func (m *Map) Width() int {
	if m.height == 0 {
		return 0
	}
	return len(m.data) / m.height
}

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Size returns the map dimensions.
func (m *Map) Size() Size { return Size{W: m.Width(), H: m.height} }

// Cells exposes the backing buffer in column-major order.
func (m *Map) Cells() []tile.Block { return m.data }

func (m *Map) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || y >= m.height || x >= m.Width() {
		return 0, false
	}
	return x*m.height + y, true
}

// At returns the tile at (x, y) and whether the coordinate is on the map.
func (m *Map) At(x, y int) (tile.Block, bool) {
	i, ok := m.index(x, y)
	if !ok {
		return 0, false
	}
	return m.data[i], true
}

// Ptr returns a pointer to the tile at (x, y), or nil off the map.
func (m *Map) Ptr(x, y int) *tile.Block {
	i, ok := m.index(x, y)
	if !ok {
		return nil
	}
	return &m.data[i]
}

// Set overwrites the tile at (x, y). It reports false off the map.
func (m *Map) Set(x, y int, b tile.Block) bool {
	i, ok := m.index(x, y)
	if ok {
		m.data[i] = b
	}
	return ok
}

// Sample reads the tile under a floating-point coordinate. Coordinates on the
// zero or far edge are treated as off the map, matching how the renderer clips.
func (m *Map) Sample(x, y float64) (tile.Block, bool) {
	if x <= 0 || x >= float64(m.Width()) {
		return 0, false
	}
	if y <= 0 || y >= float64(m.height) {
		return 0, false
	}
	return m.At(int(x), int(y))
}

// Column returns column x as a slice aliasing the map, or nil off the map.
func (m *Map) Column(x int) []tile.Block {
	if x < 0 || x >= m.Width() {
		return nil
	}
	start := x * m.height
	return m.data[start : start+m.height : start+m.height]
}

// Columns yields every column left to right. The slices never overlap, so they
// may be handed to separate goroutines.
func (m *Map) Columns() iter.Seq2[int, []tile.Block] {
	return func(yield func(int, []tile.Block) bool) {
		w := m.Width()
		for x := 0; x < w; x++ {
			if !yield(x, m.Column(x)) {
				return
			}
		}
	}
}

// Census counts tiles per material.
func (m *Map) Census() [tile.MaterialCount]int {
	var counts [tile.MaterialCount]int
	for _, b := range m.data {
		counts[b.Material()]++
	}
	return counts
}
