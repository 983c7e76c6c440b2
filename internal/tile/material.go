package tile

import "fmt"

// Material identifies the substance a tile is made of. Values fit in the low six
// bits of a Block.
type Material uint8

const (
	Air Material = iota
	Bedrock
	Stone
	Dirt
	Sand
	Water
	Granite
	Magma
	Basalt
	Clay
	Gravel
	Marble
	Limestone
	Grass
	Ice
	Wood
	Glass
	Fire

	// MaterialCount is the number of defined materials.
	MaterialCount = int(Fire) + 1
)

var materialNames = [MaterialCount]string{
	Air:       "air",
	Bedrock:   "bedrock",
	Stone:     "stone",
	Dirt:      "dirt",
	Sand:      "sand",
	Water:     "water",
	Granite:   "granite",
	Magma:     "magma",
	Basalt:    "basalt",
	Clay:      "clay",
	Gravel:    "gravel",
	Marble:    "marble",
	Limestone: "limestone",
	Grass:     "grass",
	Ice:       "ice",
	Wood:      "wood",
	Glass:     "glass",
	Fire:      "fire",
}

// "rock" is what older level files call stone.
var materialAliases = map[string]Material{
	"rock": Stone,
}

// UnknownMaterialError reports a material name that does not map to any Material.
type UnknownMaterialError struct {
	Name string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q", e.Name)
}

// InvalidMaterialError reports raw bits outside the material range.
type InvalidMaterialError struct {
	Value uint8
}

func (e *InvalidMaterialError) Error() string {
	return fmt.Sprintf("invalid material value %#02x", e.Value)
}

// String returns the canonical lower-case name.
func (m Material) String() string {
	if m.Valid() {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// Valid reports whether m is a defined material.
func (m Material) Valid() bool { return int(m) < MaterialCount }

// ParseMaterial resolves a lower-case material name.
func ParseMaterial(name string) (Material, error) {
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	if m, ok := materialAliases[name]; ok {
		return m, nil
	}
	return Air, &UnknownMaterialError{Name: name}
}

// MaterialFromByte is the checked conversion from raw bits.
func MaterialFromByte(v uint8) (Material, error) {
	m := Material(v)
	if !m.Valid() {
		return Air, &InvalidMaterialError{Value: v}
	}
	return m, nil
}

// Materials lists every defined material in ordinal order.
func Materials() []Material {
	out := make([]Material, MaterialCount)
	for i := range out {
		out[i] = Material(i)
	}
	return out
}
