package level

import (
	"sort"

	"bedrock/internal/tile"
)

// DefaultName is the level loaded when none is requested.
const DefaultName = "lava_lake"

const builtinAuthor = "Achernar"

var builtins = map[string]func() Level{
	"field": func() Level {
		return Level{
			Name:        "Field",
			Author:      builtinAuthor,
			Description: "A flat field.",
			Background:  ColorFromUint32(0x9DD8FEFF),
			Chunks: []Chunk{
				{Width: 1, Spawnable: true, Layers: []Layer{
					{Height: 0.2, Material: tile.Stone},
					{Height: 2.0 / 15.0, Material: tile.Dirt},
				}},
			},
		}
	},

	"mountain": func() Level {
		return Level{
			Name:        "Mountain",
			Author:      builtinAuthor,
			Description: "A simple mountain.",
			Background:  ColorFromUint32(0xD0D0D0FF),
			Chunks: []Chunk{
				{Width: 0.5, Spawnable: true, Layers: []Layer{
					{Height: 0.25, Material: tile.Stone},
					{Height: 1.0 / 12.0, Material: tile.Dirt},
				}},
				{Width: 0.5, Layers: []Layer{
					{Height: 0.45, Material: tile.Stone},
					{Height: 0.05, Material: tile.Gravel},
				}},
			},
		}
	},

	"valley": func() Level {
		return Level{
			Name:        "Valley",
			Author:      builtinAuthor,
			Description: "A simple valley.",
			Background:  ColorFromUint32(0x017DA9FF),
			Chunks: []Chunk{
				{Width: 0.3, Layers: []Layer{
					{Height: 0.5, Material: tile.Stone},
				}},
				{Width: 0.4, Spawnable: true, Layers: []Layer{
					{Height: 0.15, Material: tile.Stone},
					{Height: 0.1, Material: tile.Dirt},
				}},
				{Width: 0.3, Layers: []Layer{
					{Height: 0.5, Material: tile.Stone},
				}},
			},
		}
	},

	"lake": func() Level {
		return Level{
			Name:        "Lake",
			Author:      builtinAuthor,
			Description: "A nice lake.",
			Background:  ColorFromUint32(0xD84F01FF),
			Chunks: []Chunk{
				{Width: 1.0 / 3.0, Spawnable: true, Layers: []Layer{
					{Height: 0.15, Material: tile.Stone},
					{Height: 0.1, Material: tile.Dirt},
				}},
				{Width: 1.0 / 3.0, Layers: []Layer{
					{Height: 0.1, Material: tile.Stone},
					{Height: 0.025, Material: tile.Sand},
					{Height: 0.125, Material: tile.Water},
				}},
				{Width: 1.0 / 3.0, Spawnable: true, Layers: []Layer{
					{Height: 0.15, Material: tile.Stone},
					{Height: 0.1, Material: tile.Dirt},
				}},
			},
		}
	},

	"lava_lake": func() Level {
		return Level{
			Name:        "Lava Lake",
			Author:      builtinAuthor,
			Description: "A lake of magma between two basalt shores.",
			Background:  ColorFromUint32(0x2B1B17FF),
			Chunks: []Chunk{
				{Width: 1.0 / 3.0, Spawnable: true, Layers: []Layer{
					{Height: 0.2, Material: tile.Basalt},
					{Height: 0.05, Material: tile.Stone},
					{Height: 0.05, Material: tile.Gravel},
				}},
				{Width: 1.0 / 3.0, Layers: []Layer{
					{Height: 0.1, Material: tile.Basalt},
					{Height: 0.15, Material: tile.Magma},
				}},
				{Width: 1.0 / 3.0, Spawnable: true, Layers: []Layer{
					{Height: 0.2, Material: tile.Basalt},
					{Height: 0.05, Material: tile.Stone},
					{Height: 0.05, Material: tile.Gravel},
				}},
			},
		}
	},
}

// Builtin returns the named preset. Unknown names report false so callers can
// fall back to loading a file.
func Builtin(name string) (Level, bool) {
	f, ok := builtins[name]
	if !ok {
		return Level{}, false
	}
	return f(), true
}

// BuiltinNames lists the preset names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the default preset.
func Default() Level {
	l, _ := Builtin(DefaultName)
	return l
}
