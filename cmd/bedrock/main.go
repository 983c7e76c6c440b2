//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"bedrock/internal/app"
	"bedrock/internal/cli"
	"bedrock/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	os.Exit(cli.ExitCode(run(os.Args[1:])))
}

func run(args []string) error {
	cfg, err := cli.Parse(flag.CommandLine, args)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}
	cli.Welcome(os.Stdout, cli.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := cli.Boot(ctx, cfg, os.Stderr)
	if err != nil {
		logging.Errorf("%v", err)
		return err
	}
	defer logging.Close()

	game := app.New(s.World, app.Options{
		HUDWidth:    cfg.Window.HUDWidth,
		Census:      s.Recorder,
		SwitchLevel: s.SwitchLevel,
	})
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, s.World.Level().Name))
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logging.Errorf("%v", err)
		return err
	}
	logging.Infof("bye after %d ticks", s.World.Ticks())
	return nil
}
