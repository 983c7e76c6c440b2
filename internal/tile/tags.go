package tile

import (
	"fmt"
	"strings"
)

// Tags is a bitset of capabilities derived from a tile's material.
type Tags uint32

const (
	// Static tiles are not affected by gravity.
	Static Tags = 1 << iota
	// Liquid tiles flow and settle among other liquids.
	Liquid
	// Hot tiles may affect their neighbours.
	Hot
	// Cold tiles may affect their neighbours.
	Cold
	// Empty tiles do not take part in collisions.
	Empty
	// Divine tiles cannot be destroyed.
	Divine
	// Sticky tiles hold together when touching the same material.
	Sticky
	// Burnable tiles are burnt by hot tiles.
	Burnable
	// Volatile tiles are evaporated by hot tiles.
	Volatile

	// NoTags is the empty set.
	NoTags Tags = 0
)

var tagNames = []struct {
	tag  Tags
	name string
}{
	{Static, "static"},
	{Liquid, "liquid"},
	{Hot, "hot"},
	{Cold, "cold"},
	{Empty, "empty"},
	{Divine, "divine"},
	{Sticky, "sticky"},
	{Burnable, "burnable"},
	{Volatile, "volatile"},
}

// Has reports whether every tag in other is also in t.
func (t Tags) Has(other Tags) bool { return t&other == other }

// Union returns t ∪ other.
func (t Tags) Union(other Tags) Tags { return t | other }

// Intersect returns t ∩ other.
func (t Tags) Intersect(other Tags) Tags { return t & other }

// Without returns t with the tags in other cleared.
func (t Tags) Without(other Tags) Tags { return t &^ other }

func (t Tags) String() string {
	if t == NoTags {
		return "none"
	}
	var parts []string
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}

// TagsOf returns the capability tags of a material. Every defined material has
// an entry; an undefined one is a programming error and panics.
func TagsOf(m Material) Tags {
	switch m {
	case Air:
		return Empty
	case Bedrock:
		return Static | Divine
	case Stone, Granite, Basalt, Marble, Limestone, Glass:
		return Static
	case Dirt, Sand, Gravel:
		return NoTags
	case Grass:
		return Burnable
	case Clay:
		return Sticky
	case Water:
		return Liquid
	case Magma:
		return Liquid | Hot
	case Ice:
		return Static | Cold
	case Wood:
		return Static | Burnable
	case Fire:
		return Empty | Hot
	}
	panic(fmt.Sprintf("tile: no tags for %v", m))
}
