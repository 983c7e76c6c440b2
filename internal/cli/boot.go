package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"bedrock/internal/config"
	"bedrock/internal/level"
	"bedrock/internal/logging"
	"bedrock/internal/metrics"
	"bedrock/internal/sims/sand"
)

// Session is a ready-to-run world plus the settings it was built from.
type Session struct {
	Config   *config.Config
	DataDir  string
	World    *sand.World
	Recorder *metrics.Recorder
	Registry *prometheus.Registry
}

// Boot configures logging, prepares the data directory, loads the configured
// level and generates the world. When a metrics address is configured the
// exporter runs until ctx is cancelled.
func Boot(ctx context.Context, cfg *config.Config, stderr io.Writer) (*Session, error) {
	if cfg.Log.File != "" {
		if err := logging.InitFile(cfg.Log.File, cfg.LogLevel()); err != nil {
			return nil, err
		}
	} else {
		logging.Init(stderr, cfg.LogLevel())
	}

	dir := cfg.Level.DataDir
	if dir == "" {
		var err error
		if dir, err = DataDir(); err != nil {
			return nil, err
		}
	}
	logging.Debugf("data directory is %s", dir)
	if err := EnsureDataDir(dir); err != nil {
		return nil, err
	}

	lvl, err := level.Load(dir, cfg.Level.Name)
	if err != nil {
		return nil, err
	}
	logging.Infof("loaded level %q by %s", lvl.Name, lvl.Author)

	sc, err := cfg.SandConfig()
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	s := &Session{Config: cfg, DataDir: dir, Registry: prometheus.NewRegistry()}
	if s.Recorder, err = metrics.New(s.Registry); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	if s.World, err = sand.NewWorld(sc, lvl); err != nil {
		return nil, err
	}
	s.World.SetObserver(s.Recorder)
	s.Recorder.SetCensus(s.World.Census())

	x, y, err := s.World.SpawnPoint()
	switch {
	case errors.Is(err, sand.ErrNoSpawnChunk):
		return nil, err
	case err != nil:
		logging.Warnf("spawn at column %d: %v", x, err)
	default:
		logging.Debugf("spawn point is (%d, %d)", x, y)
	}

	if addr := cfg.Metrics.GetAddr(); addr != "" {
		metrics.Start(ctx, addr, s.Registry)
	}
	return s, nil
}

// SwitchLevel loads name from the builtins or the data directory and makes
// it the world's level.
func (s *Session) SwitchLevel(name string) error {
	lvl, err := level.Load(s.DataDir, name)
	if err != nil {
		return err
	}
	if err := s.World.LoadLevel(lvl); err != nil {
		return err
	}
	s.Recorder.SetCensus(s.World.Census())
	return nil
}
