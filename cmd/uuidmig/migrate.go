package main

import (
	"fmt"

	"github.com/Lagufka/minecraft-UUID-replacer/config"
	"github.com/Lagufka/minecraft-UUID-replacer/migrate"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func migrateRun(cfg *MigrateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Migrate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: migrate requires one argument, the world directory", cli.ErrUsage)
	}
	if cfg.Diff && !cfg.DryRun {
		return fmt.Errorf("%w: -diff requires -dry-run", cli.ErrUsage)
	}
	world := args[0]
	fs := afero.NewOsFs()
	if err := worldDir(fs, world); err != nil {
		return fatal("cannot migrate", err)
	}
	m, err := config.LoadMigration(fs, cfg.ConfigFile)
	if err != nil {
		return fatal("cannot load configuration", err)
	}

	mg := migrate.New(fs, m, theLog)
	mg.DryRun = cfg.DryRun
	if cfg.Where != "" {
		f, err := migrate.NewFilter(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		mg.Filter = f
	}
	if cfg.Diff {
		mg.Preview = cc.Out
	}
	theLog.Info("migrating", "world", world, "from", m.Old.Dashed, "to", m.New.Dashed, "dry-run", cfg.DryRun)
	stats, err := mg.Run(world)
	if err != nil {
		return fatal("cannot scan world", err)
	}
	return writeSummary(cc.Out, cfg.useColor(cc.Out, false), stats, cfg.DryRun)
}
