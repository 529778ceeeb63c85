package ident

import (
	"bytes"
	"fmt"
	"strings"
)

// Migration is a request to replace Old with New everywhere. It is built
// once per run and never modified afterwards.
type Migration struct {
	Old Forms
	New Forms
}

// NewMigration parses both identifiers. Identical identifiers are
// rejected: the int array rewrite would then match on every pass.
func NewMigration(oldID, newID string) (*Migration, error) {
	o, err := Parse(oldID)
	if err != nil {
		return nil, fmt.Errorf("old identifier: %w", err)
	}
	n, err := Parse(newID)
	if err != nil {
		return nil, fmt.Errorf("new identifier: %w", err)
	}
	if o.UUID == n.UUID {
		return nil, fmt.Errorf("%w: %s", ErrSameIdentifier, o.Dashed)
	}
	return &Migration{Old: o, New: n}, nil
}

func (m *Migration) String() string {
	return m.Old.Dashed + " -> " + m.New.Dashed
}

// ReplaceText replaces the dashed form, then the undashed form, in the
// result of the first pass.
func (m *Migration) ReplaceText(s string) string {
	s = strings.ReplaceAll(s, m.Old.Dashed, m.New.Dashed)
	return strings.ReplaceAll(s, m.Old.Undashed, m.New.Undashed)
}

// ReplaceBytes is ReplaceText on raw bytes. It also returns the number of
// occurrences replaced. Bytes outside the matches are preserved exactly.
func (m *Migration) ReplaceBytes(d []byte) ([]byte, int) {
	od, ou := []byte(m.Old.Dashed), []byte(m.Old.Undashed)
	n := bytes.Count(d, od)
	if n > 0 {
		d = bytes.ReplaceAll(d, od, []byte(m.New.Dashed))
	}
	nu := bytes.Count(d, ou)
	if nu > 0 {
		d = bytes.ReplaceAll(d, ou, []byte(m.New.Undashed))
	}
	return d, n + nu
}
