// Package level describes terrain recipes: ordered chunks (vertical strips of the
// map) each made of ordered layers (horizontal bands within the strip).
package level

import (
	"errors"
	"fmt"
	"math"

	"bedrock/internal/tile"
)

// MaxChunks is the largest chunk count a level may have.
const MaxChunks = 255

// Level is an immutable terrain recipe plus display metadata.
type Level struct {
	Name        string
	Author      string
	Description string
	Background  Color

	Chunks []Chunk
}

// Chunk is a vertical strip of the map. Width is a relative weight used by the
// weighted partition policy.
type Chunk struct {
	Width     float64
	Spawnable bool
	Layers    []Layer
}

// Layer is a band of one material. Height is a fraction of the map height.
type Layer struct {
	Height   float64
	Material tile.Material
}

var (
	errNoChunks      = errors.New("level has no chunks")
	errTooManyChunks = fmt.Errorf("level has more than %d chunks", MaxChunks)
	errNoLayers      = errors.New("chunk has no layers")
	errNegative      = errors.New("weight is negative")
	errAboveOne      = errors.New("height is greater than 1")
	errNotFinite     = errors.New("weight is not a finite number")
	errBadMaterial   = errors.New("material is undefined")
)

// InvalidLevelError reports the field that failed validation or decoding.
type InvalidLevelError struct {
	Section string
	Field   string
	Err     error
}

func (e *InvalidLevelError) Error() string {
	field := e.Field
	if e.Section != "" {
		field = e.Section + "." + e.Field
	}
	return fmt.Sprintf("invalid level field `%s`: %v", field, e.Err)
}

func (e *InvalidLevelError) Unwrap() error { return e.Err }

// Validate checks the structural invariants the generator relies on.
func (l Level) Validate() error {
	if len(l.Chunks) == 0 {
		return &InvalidLevelError{Field: "chunks", Err: errNoChunks}
	}
	if len(l.Chunks) > MaxChunks {
		return &InvalidLevelError{Field: "chunks", Err: errTooManyChunks}
	}
	for i, c := range l.Chunks {
		section := fmt.Sprintf("chunks[%d]", i)
		if math.IsNaN(c.Width) || math.IsInf(c.Width, 0) {
			return &InvalidLevelError{Section: section, Field: "width", Err: errNotFinite}
		}
		if c.Width < 0 {
			return &InvalidLevelError{Section: section, Field: "width", Err: errNegative}
		}
		if len(c.Layers) == 0 {
			return &InvalidLevelError{Section: section, Field: "layers", Err: errNoLayers}
		}
		for j, layer := range c.Layers {
			ls := fmt.Sprintf("%s.layers[%d]", section, j)
			switch {
			case math.IsNaN(layer.Height) || math.IsInf(layer.Height, 0):
				return &InvalidLevelError{Section: ls, Field: "height", Err: errNotFinite}
			case layer.Height < 0:
				return &InvalidLevelError{Section: ls, Field: "height", Err: errNegative}
			case layer.Height > 1:
				return &InvalidLevelError{Section: ls, Field: "height", Err: errAboveOne}
			case !layer.Material.Valid():
				return &InvalidLevelError{Section: ls, Field: "material", Err: errBadMaterial}
			}
		}
	}
	return nil
}

// SpawnChunks returns the indices of chunks players may spawn in.
func (l Level) SpawnChunks() []int {
	var out []int
	for i, c := range l.Chunks {
		if c.Spawnable {
			out = append(out, i)
		}
	}
	return out
}

// Weights returns the chunk width weights in order.
func (l Level) Weights() []float64 {
	out := make([]float64, len(l.Chunks))
	for i, c := range l.Chunks {
		out[i] = c.Width
	}
	return out
}

// Weights returns the layer height weights in order.
func (c Chunk) Weights() []float64 {
	out := make([]float64, len(c.Layers))
	for i, l := range c.Layers {
		out[i] = l.Height
	}
	return out
}
