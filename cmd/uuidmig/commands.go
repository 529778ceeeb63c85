package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "uuidmig").
		WithSynopsis("uuidmig [opts] command [opts]").
		WithDescription("uuidmig moves a player's identity to a new UUID across a world save.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uuidmigMain(cfg, cc, args)
		}).
		WithSubs(
			MigrateCommand(cfg),
			VerifyCommand(cfg),
			FindCommand(cfg),
			InspectCommand(cfg))
}

func MigrateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := newMigrateConfig(mainCfg)
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Migrate, "migrate").
		WithAliases("m", "mig").
		WithSynopsis("migrate [-config file] [-dry-run] [-diff] [-where expr] <world>").
		WithDescription(migrateDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return migrateRun(cfg, cc, args)
		})
}

const migrateDescription = `migrate replaces one player UUID with another in every file of a world.

The identifiers are read from a YAML config file:

  from: 3f1aa5b9-3c2b-4e44-99ad-f6284e9f2e91
  to: 11111111-2222-3333-4444-555555555555

NBT files (.dat, .dat_old) are decoded and the UUID is replaced wherever it
is stored as an int array, as a string or as a UUIDMost/UUIDLeast pair.
JSON and text files (.json, .txt, .properties, .yml, .yaml, .mcmeta) have the
dashed and undashed forms replaced. Files named after the old UUID are
renamed, also during a dry run.

Every file is backed up before it is written and restored if the write fails.

-where restricts the files considered, for example

  -where 'Dir startsWith "playerdata" || Kind == "json"'`

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := newVerifyConfig(mainCfg)
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithAliases("v", "ver").
		WithSynopsis("verify [-config file | -uuid id] <world>").
		WithDescription("verify reports files which still refer to the old UUID and exits 1 if there are any. Paths containing backup are skipped.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return verifyRun(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-backups] <world> <uuid>").
		WithDescription("find lists every file, NBT path and encoding holding a UUID").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return findRun(cfg, cc, args)
		})
}

func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InspectConfig{MainConfig: mainCfg, Notes: true, Indent: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Inspect, "inspect").
		WithAliases("i", "dump").
		WithSynopsis("inspect [-c] [-indent n] <file>...").
		WithDescription("inspect dumps NBT files as text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return inspect(cfg, cc, args)
		})
}
