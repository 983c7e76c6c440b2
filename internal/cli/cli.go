// Package cli holds the process plumbing shared by the bedrock commands:
// flags layered over the config file, the data directory, the welcome banner
// and exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"bedrock/internal/config"
	"bedrock/internal/level"
	"bedrock/internal/sims/sand"
)

// Version is the program version printed in the welcome banner.
const Version = "0.5.0"

// ErrMissingDataDir is returned when no data directory can be located.
var ErrMissingDataDir = errors.New("could not find data directory")

// UnknownArgError reports an unexpected positional argument.
type UnknownArgError struct {
	Arg string
}

func (e *UnknownArgError) Error() string {
	return fmt.Sprintf("unknown command line argument %q", e.Arg)
}

// UsageError wraps a flag parsing failure.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Flags are the command-line overrides for the config file. Only flags that
// were actually given replace file values.
type Flags struct {
	ConfigPath string

	level       string
	dataDir     string
	width       int
	height      int
	seed        int64
	tps         int
	workers     int
	partition   string
	logLevel    string
	logFile     string
	metricsAddr string
}

// Bind registers the flags on fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	def := config.Default()
	fs.StringVar(&f.ConfigPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	fs.StringVar(&f.level, "level", def.Level.Name, "builtin level name or file under <data>/level")
	fs.StringVar(&f.dataDir, "data", "", "data directory (default platform data dir)")
	fs.IntVar(&f.width, "w", def.Map.Width, "map width in tiles (even)")
	fs.IntVar(&f.height, "h", def.Map.Height, "map height in tiles (even)")
	fs.Int64Var(&f.seed, "seed", def.Sim.Seed, "generation and tick seed")
	fs.IntVar(&f.tps, "tps", def.Sim.TPS, "ticks per second")
	fs.IntVar(&f.workers, "workers", def.Sim.Workers, "tick worker goroutines (0 = sequential)")
	fs.StringVar(&f.partition, "partition", def.Sim.Partition, "chunk partition policy: equal or weighted")
	fs.StringVar(&f.logLevel, "log", def.Log.Level, "log level: debug, note, info, warn, error")
	fs.StringVar(&f.logFile, "logfile", "", "also write every log message to this file")
	fs.StringVar(&f.metricsAddr, "metrics", "", "serve Prometheus /metrics on this address")
}

// Apply copies every flag set on fs into cfg.
func (f *Flags) Apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "level":
			cfg.Level.Name = f.level
		case "data":
			cfg.Level.DataDir = f.dataDir
		case "w":
			cfg.Map.Width = f.width
		case "h":
			cfg.Map.Height = f.height
		case "seed":
			cfg.Sim.Seed = f.seed
		case "tps":
			cfg.Sim.TPS = f.tps
		case "workers":
			cfg.Sim.Workers = f.workers
		case "partition":
			cfg.Sim.Partition = f.partition
		case "log":
			cfg.Log.Level = f.logLevel
		case "logfile":
			cfg.Log.File = f.logFile
		case "metrics":
			cfg.Metrics.Addr = f.metricsAddr
		}
	})
}

// Parse binds flags on fs, parses args and returns the merged configuration.
// A single positional argument names the level, as -level does.
func Parse(fs *flag.FlagSet, args []string) (*config.Config, error) {
	var f Flags
	f.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Err: err}
	}
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	f.Apply(fs, cfg)
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.Level.Name = rest[0]
	default:
		return nil, &UnknownArgError{Arg: rest[1]}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &UsageError{Err: err}
	}
	return cfg, nil
}

// DataDir returns the platform data directory: %AppData%\Bedrock on Windows,
// $XDG_DATA_HOME/bedrock or ~/.local/share/bedrock elsewhere.
func DataDir() (string, error) {
	if runtime.GOOS == "windows" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMissingDataDir, err)
		}
		return filepath.Join(dir, "Bedrock"), nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "bedrock"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingDataDir, err)
	}
	return filepath.Join(home, ".local", "share", "bedrock"), nil
}

// EnsureDataDir creates dir/level and writes the sample level there if it is
// not present yet.
func EnsureDataDir(dir string) error {
	levels := filepath.Join(dir, "level")
	if err := os.MkdirAll(levels, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingDataDir, err)
	}
	sample := level.Path(dir, "test")
	if _, err := os.Stat(sample); err == nil {
		return nil
	}
	if err := os.WriteFile(sample, level.SampleTOML, 0o644); err != nil {
		return fmt.Errorf("write sample level: %w", err)
	}
	return nil
}

// Welcome prints the startup banner.
func Welcome(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "YOU HAVE NOW HIT BEDROCK!")
	fmt.Fprintf(w, "bedrock-%s\n", version)
	fmt.Fprintln(w)
}

// ExitCode maps an error to the process exit status: 0 for nil, 2 for usage
// and lookup failures, 3 for unusable levels, 1 for anything else.
func ExitCode(err error) int {
	var (
		unknownArg   *UnknownArgError
		usage        *UsageError
		unknownLevel *level.UnknownLevelError
		invalidLevel *level.InvalidLevelError
	)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrMissingDataDir),
		errors.As(err, &unknownArg),
		errors.As(err, &usage),
		errors.As(err, &unknownLevel):
		return 2
	case errors.As(err, &invalidLevel),
		errors.Is(err, sand.ErrNoSpawnChunk):
		return 3
	default:
		return 1
	}
}
