package main

import (
	"fmt"
	"io"

	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/nbt"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func inspect(cfg *InspectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inspect.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: inspect requires at least one file", cli.ErrUsage)
	}
	fs := afero.NewReadOnlyFs(afero.NewOsFs())
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	opts := []nbt.DumpOption{nbt.DumpIndent(cfg.Indent)}
	if c := cfg.colors(cc.Out, cfg.C); c != nil {
		opts = append(opts, nbt.DumpColors(c))
	}
	if cfg.Notes {
		opts = append(opts, nbt.DumpNotes(uuidNote))
	}
	for i, file := range args {
		if err := inspectFile(fs, cc.Out, file, opts); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func inspectFile(fs afero.Fs, w io.Writer, file string, opts []nbt.DumpOption) error {
	d, err := afero.ReadFile(fs, file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	doc, err := nbt.Decode(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	fmt.Fprintf(w, "# %s (%s, root %q)\n", file, doc.Compression, doc.Name)
	if err := nbt.Dump(doc.Root, w, opts...); err != nil {
		return fmt.Errorf("error writing %s: %w", file, err)
	}
	return nil
}

// uuidNote shows the identifier encoded by a 4 element int array.
func uuidNote(n *nbt.Node) string {
	if n.Type != nbt.IntArrayType || len(n.Ints) != 4 {
		return ""
	}
	return ident.Dashed(ident.FromInts([4]int32(n.Ints)))
}
