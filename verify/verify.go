// Package verify scans a save tree for leftovers of an identifier.
package verify

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/migrate"
	"github.com/Lagufka/minecraft-UUID-replacer/nbt"
	"github.com/Lagufka/minecraft-UUID-replacer/rewrite"

	"github.com/spf13/afero"
)

// Problem is a file still referring to the identifier.
type Problem struct {
	Path    string
	Reasons []string
}

type Report struct {
	Scanned  int
	Skipped  int
	Problems []Problem
}

func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Scanner reads a tree without modifying it.
type Scanner struct {
	Fs  afero.Fs
	Log *slog.Logger

	// KeepBackups includes paths containing "backup" in the scan.
	KeepBackups bool
}

// New returns a Scanner over a read-only view of fs. If logger is nil,
// slog.Default() is used.
func New(fs afero.Fs, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{Fs: afero.NewReadOnlyFs(fs), Log: logger}
}

// Scan is New(fs, nil).Scan(root, f).
func Scan(fs afero.Fs, root string, f ident.Forms) (*Report, error) {
	return New(fs, nil).Scan(root, f)
}

// Scan reports every file under root whose name or content still holds
// f. Paths containing "backup" in any case are skipped unless
// KeepBackups is set. Files that
// cannot be read or decoded are logged and otherwise ignored.
func (s *Scanner) Scan(root string, f ident.Forms) (*Report, error) {
	if _, err := s.Fs.Stat(root); err != nil {
		return nil, err
	}
	files, err := migrate.ListFiles(s.Fs, root, s.Log, nil)
	if err != nil {
		return nil, err
	}
	r := &Report{}
	for _, path := range files {
		rel := path
		if p, err := filepath.Rel(root, path); err == nil {
			rel = filepath.ToSlash(p)
		}
		if !s.KeepBackups && strings.Contains(strings.ToLower(rel), "backup") {
			r.Skipped++
			continue
		}
		r.Scanned++
		if reasons := s.check(rel, path, f); len(reasons) != 0 {
			r.Problems = append(r.Problems, Problem{Path: rel, Reasons: reasons})
		}
	}
	return r, nil
}

func (s *Scanner) check(rel, path string, f ident.Forms) []string {
	var reasons []string
	if f.InText(filepath.Base(path)) {
		reasons = append(reasons, "file name")
	}
	d, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		s.Log.Error("cannot read", "file", rel, "err", err)
		return reasons
	}
	if migrate.Classify(path) != migrate.KindNBT {
		if f.InText(string(d)) {
			reasons = append(reasons, "text")
		}
		return reasons
	}
	doc, err := nbt.Decode(d)
	if err != nil {
		s.Log.Warn("cannot decode", "file", rel, "err", err)
		return reasons
	}
	for _, m := range rewrite.Find(doc.Root, f) {
		at := m.Path
		if at == "" {
			at = "root"
		}
		reasons = append(reasons, fmt.Sprintf("%s at %s", m.Encoding, at))
	}
	return reasons
}
