package core

import "bedrock/internal/tile"

// ColumnWindows walks a column as overlapping pairs of vertically adjacent
// tiles: (0,1), (1,2), ... in increasing y.
type ColumnWindows struct {
	col []tile.Block
	y   int
}

// NewColumnWindows starts a pair walk over col.
func NewColumnWindows(col []tile.Block) ColumnWindows {
	return ColumnWindows{col: col}
}

// Next returns the lower and upper tile of the next pair.
func (w *ColumnWindows) Next() (lo, hi *tile.Block, ok bool) {
	if w.y+1 >= len(w.col) {
		return nil, nil, false
	}
	lo, hi = &w.col[w.y], &w.col[w.y+1]
	w.y++
	return lo, hi, true
}

// Skip drops the next pair, so the upper tile of the current pair is not
// revisited as a lower tile.
func (w *ColumnWindows) Skip() {
	if w.y+1 < len(w.col) {
		w.y++
	}
}

// Y returns the row of the lower tile of the pair Next would return.
func (w *ColumnWindows) Y() int { return w.y }

// Remaining reports how many pairs are left.
func (w *ColumnWindows) Remaining() int {
	if n := len(w.col) - 1 - w.y; n > 0 {
		return n
	}
	return 0
}
