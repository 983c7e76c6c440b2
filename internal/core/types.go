package core

import (
	"errors"
	"fmt"
	"math"
)

// Size describes the dimensions of a simulation grid. A valid Size has even,
// non-zero sides whose product fits in 32 bits.
type Size struct {
	W int
	H int
}

// DefaultSize is the startup map size.
var DefaultSize = Size{W: 384, H: 256}

// ErrInvalidSize is wrapped by every size validation failure.
var ErrInvalidSize = errors.New("invalid map size")

// NewSize validates and returns a Size.
func NewSize(w, h int) (Size, error) {
	s := Size{W: w, H: h}
	if err := s.Validate(); err != nil {
		return Size{}, err
	}
	return s, nil
}

// MustSize is NewSize that panics on invalid dimensions.
func MustSize(w, h int) Size {
	s, err := NewSize(w, h)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks the grid invariants.
func (s Size) Validate() error {
	switch {
	case s.W <= 0 || s.H <= 0:
		return fmt.Errorf("%w: %dx%d must be positive", ErrInvalidSize, s.W, s.H)
	case s.W%2 != 0 || s.H%2 != 0:
		return fmt.Errorf("%w: %dx%d must be even", ErrInvalidSize, s.W, s.H)
	case uint64(s.W)*uint64(s.H) > math.MaxUint32:
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, s.W, s.H)
	}
	return nil
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Sim defines the minimal contract the front ends drive.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}
