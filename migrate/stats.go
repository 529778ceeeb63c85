package migrate

import (
	"github.com/hashicorp/go-multierror"
)

// Stats accumulates the outcome of one run. NBT counts tree replacements;
// JSON and Text count changed files. Errors counts recovered
// per-file failures, which are also collected in Errs.
type Stats struct {
	NBT    int
	JSON   int
	Text   int
	Errors int

	Renamed int
	Files   int
	Errs    *multierror.Error
}

func (s *Stats) add(k Kind, n int) {
	switch k {
	case KindNBT:
		s.NBT += n
	case KindJSON:
		s.JSON += n
	case KindText:
		s.Text += n
	}
	s.Files++
}

func (s *Stats) fail(err error) {
	s.Errors++
	s.Errs = multierror.Append(s.Errs, err)
}

// Err returns the recovered errors, or nil.
func (s *Stats) Err() error {
	return s.Errs.ErrorOrNil()
}

// Replacements is the sum of all replacement counters.
func (s *Stats) Replacements() int {
	return s.NBT + s.JSON + s.Text
}
