package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"bedrock/internal/cli"
	"bedrock/internal/logging"
	"bedrock/internal/term"

	"github.com/gdamore/tcell/v2"
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
	// The screen owns the terminal, so logs go to a file or nowhere.
	if cfg.Log.File == "" {
		cfg.Log.Level = "error"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := cli.Boot(ctx, cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer logging.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	err = term.New(screen, s.World).Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}
