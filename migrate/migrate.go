// Package migrate applies an identifier migration to every file of a
// save tree.
//
// Files are processed one at a time: the file name is migrated first,
// then the content by kind (NBT documents, JSON, other text). Content is
// only ever replaced through Commit, so a failed write leaves the
// original content and its backup on disk. Per-file failures are logged,
// counted in Stats and never stop the run.
package migrate

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lagufka/minecraft-UUID-replacer/debug"
	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/nbt"
	"github.com/Lagufka/minecraft-UUID-replacer/rewrite"

	"github.com/spf13/afero"
)

type Migrator struct {
	Fs        afero.Fs
	Migration *ident.Migration

	// DryRun computes and reports changes without writing content.
	// Renames still happen.
	DryRun bool
	Filter *Filter
	// Preview receives diffs of text changes during a dry run.
	Preview io.Writer
	Log     *slog.Logger
}

// New returns a Migrator on fs. If logger is nil, slog.Default() is used.
func New(fs afero.Fs, m *ident.Migration, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{Fs: fs, Migration: m, Log: logger}
}

// Run migrates every regular file under root. The returned error is only
// set when root cannot be scanned at all; per-file errors are in Stats.
func (mg *Migrator) Run(root string) (*Stats, error) {
	if _, err := mg.Fs.Stat(root); err != nil {
		return nil, err
	}
	stats := &Stats{}
	files, err := ListFiles(mg.Fs, root, mg.Log, stats)
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		mg.MigrateFile(root, path, stats)
	}
	return stats, nil
}

// ListFiles returns the regular files under root in lexical order.
// Unreadable entries are logged and recorded in stats when it is non-nil.
func ListFiles(fs afero.Fs, root string, logger *slog.Logger, stats *Stats) ([]string, error) {
	var files []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Error("cannot read", "path", path, "err", err)
			if stats != nil {
				stats.fail(fmt.Errorf("%w: %s: %w", ErrRead, path, err))
			}
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// MigrateFile processes a single file found under root.
func (mg *Migrator) MigrateFile(root, path string, stats *Stats) {
	rel := relPath(root, path)
	k := Classify(path)
	if debug.Walk() {
		debug.Logf("walk %s (%s)\n", rel, k)
	}
	if mg.Filter != nil {
		ok, err := mg.selected(rel, path, k)
		if err != nil {
			mg.fail(stats, rel, err)
			return
		}
		if !ok {
			return
		}
	}
	newPath, err := mg.renameIfNeeded(path)
	if err != nil {
		mg.fail(stats, rel, err)
	} else if newPath != path {
		stats.Renamed++
		path = newPath
		rel = relPath(root, path)
	}
	switch k {
	case KindNBT:
		mg.migrateNBT(rel, path, stats)
	case KindJSON, KindText:
		mg.migrateText(rel, path, k, stats)
	}
}

func (mg *Migrator) selected(rel, path string, k Kind) (bool, error) {
	env := FileEnv{
		Path: rel,
		Name: filepath.Base(path),
		Ext:  strings.ToLower(filepath.Ext(path)),
		Dir:  filepath.ToSlash(filepath.Dir(filepath.FromSlash(rel))),
		Kind: k.String(),
	}
	if info, err := mg.Fs.Stat(path); err == nil {
		env.Size = info.Size()
	}
	ok, err := mg.Filter.Match(env)
	if debug.Filter() {
		debug.Logf("filter %q on %s: %v %v\n", mg.Filter, rel, ok, err)
	}
	return ok, err
}

// renameIfNeeded migrates the identifier in the base name of path. An
// existing file at the destination is removed first.
func (mg *Migrator) renameIfNeeded(path string) (string, error) {
	dir, name := filepath.Split(path)
	newName := mg.Migration.ReplaceText(name)
	if newName == name {
		return path, nil
	}
	newPath := filepath.Join(dir, newName)
	if _, err := mg.Fs.Stat(newPath); err == nil {
		mg.Log.Warn("removing stale rename target", "path", newPath)
		if err := mg.Fs.Remove(newPath); err != nil {
			return path, fmt.Errorf("%w: removing %s: %w", ErrRename, newPath, err)
		}
	}
	if err := mg.Fs.Rename(path, newPath); err != nil {
		return path, fmt.Errorf("%w: %s: %w", ErrRename, path, err)
	}
	mg.Log.Info("renamed", "from", name, "to", newName)
	return newPath, nil
}

func (mg *Migrator) migrateNBT(rel, path string, stats *Stats) {
	if skipLevel(filepath.Base(path)) {
		mg.Log.Debug("skipping world level file", "file", rel)
		return
	}
	d, err := afero.ReadFile(mg.Fs, path)
	if err != nil {
		mg.fail(stats, rel, fmt.Errorf("%w: %w", ErrRead, err))
		return
	}
	doc, err := nbt.Decode(d)
	if err != nil {
		mg.fail(stats, rel, err)
		return
	}
	n := rewrite.Rewrite(doc.Root, mg.Migration)
	if n == 0 {
		return
	}
	if mg.DryRun {
		mg.Log.Info("would replace", "file", rel, "kind", KindNBT, "count", n)
		stats.add(KindNBT, n)
		return
	}
	out, err := nbt.Marshal(doc)
	if err != nil {
		mg.fail(stats, rel, err)
		return
	}
	if !mg.commit(rel, path, out, stats) {
		return
	}
	mg.Log.Info("replaced", "file", rel, "kind", KindNBT, "count", n)
	stats.add(KindNBT, n)
}

func (mg *Migrator) migrateText(rel, path string, k Kind, stats *Stats) {
	d, err := afero.ReadFile(mg.Fs, path)
	if err != nil {
		mg.fail(stats, rel, fmt.Errorf("%w: %w", ErrRead, err))
		return
	}
	out, n := mg.Migration.ReplaceBytes(d)
	if n == 0 {
		return
	}
	if mg.DryRun {
		mg.Log.Info("would replace", "file", rel, "kind", k, "count", n)
		if mg.Preview != nil {
			if err := WritePreview(mg.Preview, rel, k, d, out); err != nil {
				mg.Log.Warn("preview failed", "file", rel, "err", err)
			}
		}
		stats.add(k, 1)
		return
	}
	if !mg.commit(rel, path, out, stats) {
		return
	}
	mg.Log.Info("replaced", "file", rel, "kind", k, "count", n)
	// text kinds count files, not occurrences
	stats.add(k, 1)
}

func (mg *Migrator) commit(rel, path string, d []byte, stats *Stats) bool {
	kept, err := Commit(mg.Fs, path, d)
	if err != nil {
		mg.fail(stats, rel, err)
		return false
	}
	if kept != "" {
		mg.Log.Warn("could not remove backup", "file", rel, "backup", kept)
	}
	return true
}

func (mg *Migrator) fail(stats *Stats, rel string, err error) {
	mg.Log.Error("failed", "file", rel, "err", err)
	stats.fail(fmt.Errorf("%s: %w", rel, err))
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
