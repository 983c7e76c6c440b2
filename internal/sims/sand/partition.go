package sand

import (
	"fmt"
	"strings"
)

// Partition selects how map columns are divided among a level's chunks.
type Partition uint8

const (
	// PartitionEqual gives every chunk width/count columns using cumulative
	// floor division, so the chunks exactly cover the map in order.
	PartitionEqual Partition = iota
	// PartitionWeighted gives each chunk floor(width*chunk.Width) columns
	// starting where the previous chunk stopped. Columns past the last chunk
	// stay empty.
	PartitionWeighted
)

var partitionNames = [...]string{
	PartitionEqual:    "equal",
	PartitionWeighted: "weighted",
}

// ParsePartition maps "equal" or "weighted" to a policy.
func ParsePartition(s string) (Partition, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range partitionNames {
		if n == name {
			return Partition(p), nil
		}
	}
	return 0, fmt.Errorf("unknown partition policy %q (want equal or weighted)", s)
}

// Valid reports whether p names a known policy.
func (p Partition) Valid() bool { return int(p) < len(partitionNames) }

func (p Partition) String() string {
	if !p.Valid() {
		return fmt.Sprintf("partition(%d)", uint8(p))
	}
	return partitionNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Partition) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Partition) UnmarshalText(text []byte) error {
	parsed, err := ParsePartition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// tracker walks coordinates 0..total in increasing order and reports which
// segment owns each one. Segments that would own no coordinate are skipped.
type tracker struct {
	weights []float64
	total   int
	equal   bool

	next int // index of the segment entered on the next boundary
	cur  int
	stop int
}

func newTracker(weights []float64, total int, equal bool) tracker {
	return tracker{weights: weights, total: total, equal: equal, cur: -1}
}

// at returns the segment owning coord, or false once segments are exhausted.
func (t *tracker) at(coord int) (int, bool) {
	for coord >= t.stop {
		if t.next >= len(t.weights) {
			return -1, false
		}
		t.cur = t.next
		t.next++
		if t.equal {
			t.stop = int(uint64(t.total) * uint64(t.next) / uint64(len(t.weights)))
		} else {
			t.stop = coord + span(t.total, t.weights[t.cur])
		}
	}
	return t.cur, true
}

// span is floor(total*weight) clamped to [0, total].
func span(total int, weight float64) int {
	switch {
	case weight <= 0:
		return 0
	case weight >= 1:
		return total
	}
	return int(float64(total) * weight)
}
