package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Lagufka/minecraft-UUID-replacer/migrate"
	"github.com/Lagufka/minecraft-UUID-replacer/verify"

	"github.com/fatih/color"
)

type palette struct {
	head, good, bad *color.Color
}

func newPalette(on bool) *palette {
	p := &palette{
		head: color.New(color.Bold),
		good: color.New(color.FgGreen),
		bad:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.head, p.good, p.bad} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) count(n int, badIfPositive bool) string {
	s := fmt.Sprint(n)
	switch {
	case n > 0 && badIfPositive:
		return p.bad.Sprint(s)
	case n > 0:
		return p.good.Sprint(s)
	}
	return s
}

func writeSummary(w io.Writer, colored bool, stats *migrate.Stats, dryRun bool) error {
	p := newPalette(colored)
	b := &strings.Builder{}
	title := "Summary"
	if dryRun {
		title += " (dry run, no content written)"
	}
	fmt.Fprintf(b, "%s\n", p.head.Sprint(title))
	fmt.Fprintf(b, "  NBT replacements:   %s\n", p.count(stats.NBT, false))
	fmt.Fprintf(b, "  JSON files:         %s\n", p.count(stats.JSON, false))
	fmt.Fprintf(b, "  text files:         %s\n", p.count(stats.Text, false))
	fmt.Fprintf(b, "  files changed:      %s\n", p.count(stats.Files, false))
	fmt.Fprintf(b, "  files renamed:      %s\n", p.count(stats.Renamed, false))
	fmt.Fprintf(b, "  errors:             %s\n", p.count(stats.Errors, true))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeReport(w io.Writer, colored bool, r *verify.Report, id string) error {
	p := newPalette(colored)
	b := &strings.Builder{}
	for _, prob := range r.Problems {
		fmt.Fprintf(b, "%s\n", p.bad.Sprint(prob.Path))
		for _, reason := range prob.Reasons {
			fmt.Fprintf(b, "  %s\n", reason)
		}
	}
	if r.OK() {
		fmt.Fprintf(b, "%s: no references to %s in %d files (%d skipped)\n",
			p.good.Sprint("ok"), id, r.Scanned, r.Skipped)
	} else {
		fmt.Fprintf(b, "%s: %d of %d files refer to %s (%d skipped)\n",
			p.bad.Sprint("fail"), len(r.Problems), r.Scanned, id, r.Skipped)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
