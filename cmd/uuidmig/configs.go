package main

import (
	"io"
	"os"

	"github.com/Lagufka/minecraft-UUID-replacer/config"
	"github.com/Lagufka/minecraft-UUID-replacer/nbt"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Color   bool `cli:"name=color desc='output with color'"`

	Main *cli.Command
}

// useColor reports whether output to w is colored: always with -color,
// never when -color=false was given, otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer, force bool) bool {
	if cfg.Color || force {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) colors(w io.Writer, force bool) *nbt.Colors {
	if !cfg.useColor(w, force) {
		return nil
	}
	return nbt.NewColors()
}

type MigrateConfig struct {
	*MainConfig
	ConfigFile string `cli:"name=config desc='migration config file' default=uuid_config.yml"`
	DryRun     bool   `cli:"name=dry-run aliases=n desc='report what would change without writing file content'"`
	Diff       bool   `cli:"name=diff desc='with -dry-run, show the text changes'"`
	Where      string `cli:"name=where desc='only consider files matching this expression over Path, Name, Ext, Dir, Kind and Size'"`

	Migrate *cli.Command
}

type VerifyConfig struct {
	*MainConfig
	ConfigFile string `cli:"name=config desc='migration config file, its from identifier is checked' default=uuid_config.yml"`
	UUID       string `cli:"name=uuid desc='identifier to check instead of the config file'"`

	Verify *cli.Command
}

type FindConfig struct {
	*MainConfig
	Backups bool `cli:"name=backups desc='also search paths containing backup'"`

	Find *cli.Command
}

type InspectConfig struct {
	*MainConfig
	C      bool `cli:"name=c desc='dump with color'"`
	Notes  bool `cli:"name=notes desc='annotate int arrays which encode an identifier' default=true"`
	Indent int  `cli:"name=indent desc='spaces per nesting level' default=2"`

	Inspect *cli.Command
}

func newMigrateConfig(mainCfg *MainConfig) *MigrateConfig {
	return &MigrateConfig{MainConfig: mainCfg, ConfigFile: config.DefaultFile}
}

func newVerifyConfig(mainCfg *MainConfig) *VerifyConfig {
	return &VerifyConfig{MainConfig: mainCfg, ConfigFile: config.DefaultFile}
}
