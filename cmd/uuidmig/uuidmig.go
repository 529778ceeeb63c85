package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func uuidmigMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "err", err)
		}
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// worldDir checks that world is an existing directory.
func worldDir(fs afero.Fs, world string) error {
	ok, err := afero.DirExists(fs, world)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("world directory %q not found", world)
	}
	return nil
}

// fatal logs err and returns the error for exit status 1.
func fatal(msg string, err error) error {
	theLog.Error(msg, "err", err)
	return cli.ExitCodeErr(1)
}
