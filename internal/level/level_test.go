package level

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bedrock/internal/tile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsAreValid(t *testing.T) {
	names := BuiltinNames()
	assert.Equal(t, []string{"field", "lake", "lava_lake", "mountain", "valley"}, names)
	for _, name := range names {
		l, ok := Builtin(name)
		require.True(t, ok, name)
		assert.NoError(t, l.Validate(), name)
		assert.NotEmpty(t, l.Name, name)
		assert.NotEmpty(t, l.SpawnChunks(), "%s should have somewhere to spawn", name)
	}
}

func TestBuiltinUnknownName(t *testing.T) {
	_, ok := Builtin("atlantis")
	assert.False(t, ok)
}

func TestBuiltinReturnsFreshCopies(t *testing.T) {
	a, _ := Builtin("field")
	a.Chunks[0].Layers[0].Material = tile.Fire
	b, _ := Builtin("field")
	assert.Equal(t, tile.Stone, b.Chunks[0].Layers[0].Material)
}

func TestDefaultIsLavaLake(t *testing.T) {
	assert.Equal(t, "Lava Lake", Default().Name)
}

func TestValidate(t *testing.T) {
	layer := []Layer{{Height: 0.5, Material: tile.Stone}}
	cases := map[string]struct {
		level Level
		field string
	}{
		"no chunks":    {Level{}, "chunks"},
		"no layers":    {Level{Chunks: []Chunk{{Width: 1}}}, "layers"},
		"neg width":    {Level{Chunks: []Chunk{{Width: -1, Layers: layer}}}, "width"},
		"tall layer":   {Level{Chunks: []Chunk{{Layers: []Layer{{Height: 1.5}}}}}, "height"},
		"neg height":   {Level{Chunks: []Chunk{{Layers: []Layer{{Height: -0.1}}}}}, "height"},
		"bad material": {Level{Chunks: []Chunk{{Layers: []Layer{{Height: 0.1, Material: 63}}}}}, "material"},
		"too many":     {Level{Chunks: make([]Chunk, MaxChunks+1)}, "chunks"},
		"nan width":    {Level{Chunks: []Chunk{{Width: math.NaN(), Layers: layer}}}, "width"},
		"inf width":    {Level{Chunks: []Chunk{{Width: math.Inf(1), Layers: layer}}}, "width"},
		"nan height":   {Level{Chunks: []Chunk{{Layers: []Layer{{Height: math.NaN()}}}}}, "height"},
	}
	for name, tc := range cases {
		err := tc.level.Validate()
		var invalid *InvalidLevelError
		require.True(t, errors.As(err, &invalid), name)
		assert.Equal(t, tc.field, invalid.Field, name)
	}

	ok := Level{Chunks: make([]Chunk, MaxChunks)}
	for i := range ok.Chunks {
		ok.Chunks[i].Layers = layer
	}
	assert.NoError(t, ok.Validate())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#9DD8FE")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x9D, G: 0xD8, B: 0xFE, A: 0xFF}, c)

	c, err = ParseColor("#28C3BF80")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x28, G: 0xC3, B: 0xBF, A: 0x80}, c)

	c, err = ParseColor("#f0a")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xFF, G: 0x00, B: 0xAA, A: 0xFF}, c)

	assert.Equal(t, "#9DD8FEFF", ColorFromUint32(0x9DD8FEFF).String())

	for code, kind := range map[string]ColorErrorKind{
		"#12345":    ColorInvalidLength,
		"":          ColorInvalidLength,
		"1234567":   ColorMissingHash,
		"#GGGGGG":   ColorUnknownFormat,
		"#-1234567": ColorUnknownFormat,
	} {
		_, err := ParseColor(code)
		var ce *ColorError
		require.True(t, errors.As(err, &ce), code)
		assert.Equal(t, kind, ce.Kind, code)
	}
}

func TestDecodeSample(t *testing.T) {
	l, err := Decode(bytes.NewReader(SampleTOML))
	require.NoError(t, err)
	assert.Equal(t, "Test", l.Name)
	require.Len(t, l.Chunks, 2)
	assert.True(t, l.Chunks[0].Spawnable)
	assert.Equal(t, 0.5, l.Chunks[1].Width)
	assert.Equal(t, []Layer{
		{Height: 0.1, Material: tile.Granite},
		{Height: 0.05, Material: tile.Air},
		{Height: 0.2, Material: tile.Sand},
	}, l.Chunks[1].Layers)
	assert.Equal(t, ColorFromUint32(0x9DD8FEFF), l.Background)
}

func TestDecodeDefaultsWidthToEvenShare(t *testing.T) {
	doc := `
name = "even"
[[chunks]]
[[chunks.layers]]
height = 0.5
material = "dirt"
[[chunks]]
[[chunks.layers]]
height = 0.5
material = "rock"
`
	l, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 0.5, l.Chunks[0].Width)
	assert.Equal(t, tile.Stone, l.Chunks[1].Layers[0].Material)
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":      "name = \"x\"\ncolour = \"#fff\"\n",
		"unknown material": "[[chunks]]\n[[chunks.layers]]\nheight = 0.1\nmaterial = \"cheese\"\n",
		"bad background":   "background = \"fff\"\n[[chunks]]\n[[chunks.layers]]\nheight = 0.1\nmaterial = \"dirt\"\n",
		"no chunks":        "name = \"empty\"\n",
		"syntax":           "name = \n",
		"nan width":        "[[chunks]]\nwidth = nan\n[[chunks.layers]]\nheight = 0.1\nmaterial = \"stone\"\n",
		"inf height":       "[[chunks]]\n[[chunks.layers]]\nheight = inf\nmaterial = \"stone\"\n",
	} {
		_, err := Decode(strings.NewReader(doc))
		var invalid *InvalidLevelError
		assert.True(t, errors.As(err, &invalid), "%s: %v", name, err)
	}
}

func TestLoadPrefersBuiltinsThenFiles(t *testing.T) {
	dir := t.TempDir()

	l, err := Load(dir, "valley")
	require.NoError(t, err)
	assert.Equal(t, "Valley", l.Name)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "level"), 0o755))
	require.NoError(t, os.WriteFile(Path(dir, "test"), SampleTOML, 0o644))
	l, err = Load(dir, "test")
	require.NoError(t, err)
	assert.Equal(t, "Test", l.Name)

	_, err = Load(dir, "missing")
	var unknown *UnknownLevelError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, Path(dir, "missing"), unknown.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
