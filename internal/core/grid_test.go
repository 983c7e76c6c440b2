package core

import (
	"errors"
	"math"
	"testing"

	"bedrock/internal/tile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSizeInvariants(t *testing.T) {
	for _, tc := range []struct {
		w, h int
		ok   bool
	}{
		{4, 4, true},
		{384, 256, true},
		{0, 4, false},
		{4, 0, false},
		{3, 4, false},
		{4, 5, false},
		{-2, 4, false},
		{1 << 17, 1 << 16, false},
	} {
		s, err := NewSize(tc.w, tc.h)
		if !tc.ok {
			require.Error(t, err, "%dx%d", tc.w, tc.h)
			assert.True(t, errors.Is(err, ErrInvalidSize))
			continue
		}
		require.NoError(t, err, "%dx%d", tc.w, tc.h)
		assert.Zero(t, s.W%2)
		assert.Zero(t, s.H%2)
		m := NewMap(s)
		assert.Len(t, m.Cells(), tc.w*tc.h)
		assert.Equal(t, s, m.Size())
	}
	assert.LessOrEqual(t, uint64(DefaultSize.Area()), uint64(math.MaxUint32))
}

func TestNewMapPanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewMap(Size{W: 3, H: 4}) })
	assert.Panics(t, func() { MustSize(0, 0) })
}

func TestColumnMajorAddressing(t *testing.T) {
	m := NewMap(MustSize(4, 6))
	require.True(t, m.Set(2, 3, tile.New(tile.Stone, 1)))

	assert.Equal(t, tile.New(tile.Stone, 1), m.Cells()[2*6+3])
	b, ok := m.At(2, 3)
	require.True(t, ok)
	assert.Equal(t, tile.Stone, b.Material())
	assert.Equal(t, tile.Stone, m.Column(2)[3].Material())
}

func TestOutOfBoundsAccessMisses(t *testing.T) {
	m := NewMap(MustSize(4, 4))
	for _, p := range [][2]int{{4, 0}, {0, 4}, {-1, 0}, {0, -1}, {100, 100}} {
		_, ok := m.At(p[0], p[1])
		assert.False(t, ok, "%v", p)
		assert.Nil(t, m.Ptr(p[0], p[1]), "%v", p)
		assert.False(t, m.Set(p[0], p[1], tile.New(tile.Dirt, 0)), "%v", p)
	}
	assert.Nil(t, m.Column(4))
	assert.Nil(t, m.Column(-1))
}

func TestSampleUsesOpenInterval(t *testing.T) {
	m := NewMap(MustSize(4, 4))
	m.Set(1, 2, tile.New(tile.Sand, 0))

	b, ok := m.Sample(1.5, 2.9)
	require.True(t, ok)
	assert.Equal(t, tile.Sand, b.Material())

	for _, p := range [][2]float64{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {-0.5, 1}, {1, 4.5}} {
		_, ok := m.Sample(p[0], p[1])
		assert.False(t, ok, "%v", p)
	}
	_, ok = m.Sample(0.0001, 0.0001)
	assert.True(t, ok)
}

func TestResizeClears(t *testing.T) {
	m := NewMap(MustSize(4, 4))
	m.Set(0, 0, tile.New(tile.Granite, 3))
	m.Resize(MustSize(2, 2))
	assert.Equal(t, MustSize(2, 2), m.Size())
	for _, b := range m.Cells() {
		assert.Equal(t, tile.Block(0), b)
	}
	m.Resize(MustSize(8, 2))
	assert.Equal(t, 8, m.Width())
	assert.Equal(t, 2, m.Height())
}

func TestColumnsAreDisjoint(t *testing.T) {
	m := NewMap(MustSize(6, 4))
	seen := 0
	for x, col := range m.Columns() {
		require.Len(t, col, 4)
		for y := range col {
			col[y] = tile.New(tile.Material(x+1), 0)
		}
		seen++
	}
	assert.Equal(t, 6, seen)
	for x := 0; x < 6; x++ {
		for y := 0; y < 4; y++ {
			b, _ := m.At(x, y)
			assert.Equal(t, tile.Material(x+1), b.Material())
		}
	}
	// Appending to one column must not spill into the next.
	col := m.Column(0)
	_ = append(col, tile.New(tile.Fire, 0))
	b, _ := m.At(1, 0)
	assert.Equal(t, tile.Material(2), b.Material())
}

func TestColumnWindowsPairsAndSkip(t *testing.T) {
	col := make([]tile.Block, 6)
	for y := range col {
		col[y] = tile.New(tile.Material(y), 0)
	}

	w := NewColumnWindows(col)
	var lows []tile.Material
	for {
		lo, hi, ok := w.Next()
		if !ok {
			break
		}
		assert.Equal(t, lo.Material()+1, hi.Material())
		lows = append(lows, lo.Material())
	}
	assert.Equal(t, []tile.Material{0, 1, 2, 3, 4}, lows)

	w = NewColumnWindows(col)
	lo, _, _ := w.Next()
	assert.Equal(t, tile.Material(0), lo.Material())
	w.Skip()
	lo, _, _ = w.Next()
	assert.Equal(t, tile.Material(2), lo.Material())
	assert.Equal(t, 2, w.Remaining())

	short := NewColumnWindows(col[:1])
	_, _, ok := short.Next()
	assert.False(t, ok)
}

func TestCensus(t *testing.T) {
	m := NewMap(MustSize(2, 2))
	m.Set(0, 0, tile.New(tile.Bedrock, 0))
	m.Set(1, 0, tile.New(tile.Bedrock, 2))
	c := m.Census()
	assert.Equal(t, 2, c[tile.Bedrock])
	assert.Equal(t, 2, c[tile.Air])
}
