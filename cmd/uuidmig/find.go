package main

import (
	"fmt"
	"strings"

	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/verify"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func findRun(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: find requires two arguments, the world directory and a uuid", cli.ErrUsage)
	}
	world := args[0]
	f, err := ident.Parse(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	fs := afero.NewOsFs()
	if err := worldDir(fs, world); err != nil {
		return fatal("cannot search", err)
	}
	s := verify.New(fs, theLog)
	s.KeepBackups = cfg.Backups
	r, err := s.Scan(world, f)
	if err != nil {
		return fatal("cannot scan world", err)
	}
	b := &strings.Builder{}
	for _, p := range r.Problems {
		for _, reason := range p.Reasons {
			fmt.Fprintf(b, "%s\t%s\n", p.Path, reason)
		}
	}
	_, err = cc.Out.Write([]byte(b.String()))
	return err
}
