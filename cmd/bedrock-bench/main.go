// Command bedrock-bench generates levels headlessly, ticks them and reports
// how the material census and the tick rate come out.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bedrock/internal/cli"
	"bedrock/internal/core"
	"bedrock/internal/level"
	"bedrock/internal/logging"
	"bedrock/internal/metrics"
	"bedrock/internal/render"
	"bedrock/internal/sims/sand"
	"bedrock/internal/tile"
)

func main() {
	levels := flag.String("levels", strings.Join(level.BuiltinNames(), ","), "comma separated level names")
	ticks := flag.Int("ticks", 1000, "ticks to run per level")
	seed := flag.Int64("seed", sand.DefaultConfig().Seed, "world seed")
	w := flag.Int("w", core.DefaultSize.W, "map width in tiles")
	h := flag.Int("h", core.DefaultSize.H, "map height in tiles")
	workers := flag.Int("workers", 0, "tick workers; 0 ticks sequentially")
	partition := flag.String("partition", sand.PartitionEqual.String(), "chunk partition policy (equal, weighted)")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address while running")
	pngDir := flag.String("png", "", "write a snapshot of each level to this directory")
	dataDir := flag.String("data", "", "data directory for user levels")
	flag.Parse()

	if err := run(*levels, *ticks, *seed, *w, *h, *workers, *partition, *metricsAddr, *pngDir, *dataDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

func run(levels string, ticks int, seed int64, w, h, workers int, partition, metricsAddr, pngDir, dataDir string) error {
	logging.Init(os.Stderr, logging.LevelWarn)

	size, err := core.NewSize(w, h)
	if err != nil {
		return &cli.UsageError{Err: err}
	}
	policy, err := sand.ParsePartition(partition)
	if err != nil {
		return &cli.UsageError{Err: err}
	}
	cfg := sand.DefaultConfig()
	cfg.Size, cfg.Seed, cfg.Workers, cfg.Partition = size, seed, workers, policy
	if err := cfg.Validate(); err != nil {
		return &cli.UsageError{Err: err}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	if err != nil {
		return err
	}
	if metricsAddr != "" {
		metrics.Start(ctx, metricsAddr, reg)
	}

	fmt.Printf("Benchmarking %s at %s, seed %d, %d ticks, %d workers, %s partition\n",
		levels, size, seed, ticks, workers, policy)
	for _, name := range strings.Split(levels, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		lvl, err := level.Load(dataDir, name)
		if err != nil {
			return err
		}
		world, err := sand.NewWorld(cfg, lvl)
		if err != nil {
			return err
		}
		world.SetObserver(rec)

		before := world.Census()
		start := time.Now()
		for range ticks {
			world.Step()
		}
		elapsed := time.Since(start)
		after := world.Census()
		rec.SetCensus(after)

		report(lvl.Name, before, after, ticks, elapsed)
		if pngDir != "" {
			if err := snapshot(pngDir, name, world); err != nil {
				return err
			}
		}
	}
	return nil
}

func report(name string, before, after [tile.MaterialCount]int, ticks int, elapsed time.Duration) {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(ticks) / elapsed.Seconds()
	}
	fmt.Printf("\n%s: %d ticks in %s (%.1f ticks/s)\n", name, ticks, elapsed.Round(time.Millisecond), rate)
	fmt.Printf("  %-10s %10s %10s %8s\n", "material", "before", "after", "delta")
	for i := range tile.MaterialCount {
		if before[i] == 0 && after[i] == 0 {
			continue
		}
		fmt.Printf("  %-10s %10d %10d %+8d\n", tile.Material(i), before[i], after[i], after[i]-before[i])
	}
}

func snapshot(dir, name string, world *sand.World) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	size := world.Size()
	// One pixel per tile.
	v := render.NewView(size)
	v.Scale = size.H
	v.CenterOn(size.W/2, size.H/2)
	img := render.Snapshot(size.W, size.H, v, world, world.Palette(), world.Background())

	path := filepath.Join(dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	fmt.Printf("  snapshot written to %s\n", path)
	return f.Close()
}
