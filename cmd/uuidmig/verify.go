package main

import (
	"fmt"

	"github.com/Lagufka/minecraft-UUID-replacer/config"
	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/verify"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func verifyRun(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: verify requires one argument, the world directory", cli.ErrUsage)
	}
	world := args[0]
	fs := afero.NewOsFs()
	if err := worldDir(fs, world); err != nil {
		return fatal("cannot verify", err)
	}
	var f ident.Forms
	if cfg.UUID != "" {
		f, err = ident.Parse(cfg.UUID)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	} else {
		m, err := config.LoadMigration(fs, cfg.ConfigFile)
		if err != nil {
			return fatal("cannot load configuration", err)
		}
		f = m.Old
	}
	r, err := verify.New(fs, theLog).Scan(world, f)
	if err != nil {
		return fatal("cannot scan world", err)
	}
	if err := writeReport(cc.Out, cfg.useColor(cc.Out, false), r, f.Dashed); err != nil {
		return err
	}
	if !r.OK() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
