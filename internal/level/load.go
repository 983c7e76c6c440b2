package level

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bedrock/internal/tile"

	"github.com/pelletier/go-toml/v2"
)

// SampleTOML is a small level file written into fresh data directories.
//
//go:embed test_level.toml
var SampleTOML []byte

// UnknownLevelError reports a level that is neither builtin nor readable from disk.
type UnknownLevelError struct {
	Name string
	Path string
	Err  error
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("unable to load level %q at %q: %v", e.Name, e.Path, e.Err)
}

func (e *UnknownLevelError) Unwrap() error { return e.Err }

type levelDoc struct {
	Name        string     `toml:"name"`
	Author      string     `toml:"author"`
	Description string     `toml:"description"`
	Background  string     `toml:"background"`
	Chunks      []chunkDoc `toml:"chunks"`
}

type chunkDoc struct {
	Width     *float64   `toml:"width"`
	Spawnable bool       `toml:"spawnable"`
	Layers    []layerDoc `toml:"layers"`
}

type layerDoc struct {
	Height   float64 `toml:"height"`
	Material string  `toml:"material"`
}

// Path returns where a named level file lives under dataDir.
func Path(dataDir, name string) string {
	return filepath.Join(dataDir, "level", name+".toml")
}

// Load resolves a level by name: builtin presets first, then
// <dataDir>/level/<name>.toml.
func Load(dataDir, name string) (Level, error) {
	if l, ok := Builtin(name); ok {
		return l, nil
	}
	path := Path(dataDir, name)
	f, err := os.Open(path)
	if err != nil {
		return Level{}, &UnknownLevelError{Name: name, Path: path, Err: err}
	}
	defer f.Close()
	l, err := Decode(f)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode reads and validates a TOML level description. Unknown keys are rejected.
func Decode(r io.Reader) (Level, error) {
	var doc levelDoc
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Level{}, &InvalidLevelError{Field: "document", Err: errors.New(strict.String())}
		}
		return Level{}, &InvalidLevelError{Field: "document", Err: err}
	}
	return doc.level()
}

func (d levelDoc) level() (Level, error) {
	l := Level{
		Name:        d.Name,
		Author:      d.Author,
		Description: d.Description,
		Background:  ColorFromUint32(0x000000FF),
	}
	if d.Background != "" {
		bg, err := ParseColor(d.Background)
		if err != nil {
			return Level{}, &InvalidLevelError{Field: "background", Err: err}
		}
		l.Background = bg
	}
	for i, cd := range d.Chunks {
		// Chunks without an explicit width share the map evenly.
		c := Chunk{Spawnable: cd.Spawnable, Width: 1 / float64(len(d.Chunks))}
		if cd.Width != nil {
			c.Width = *cd.Width
		}
		for j, ld := range cd.Layers {
			m, err := tile.ParseMaterial(ld.Material)
			if err != nil {
				section := fmt.Sprintf("chunks[%d].layers[%d]", i, j)
				return Level{}, &InvalidLevelError{Section: section, Field: "material", Err: err}
			}
			c.Layers = append(c.Layers, Layer{Height: ld.Height, Material: m})
		}
		l.Chunks = append(l.Chunks, c)
	}
	if err := l.Validate(); err != nil {
		return Level{}, err
	}
	return l, nil
}
