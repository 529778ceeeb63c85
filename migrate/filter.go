package migrate

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FileEnv is the environment of a filter expression.
type FileEnv struct {
	// Path is slash separated and relative to the scanned root.
	Path string
	Name string
	Ext  string
	Dir  string
	Kind string
	Size int64
}

// Filter selects the files a run considers, using an expr-lang boolean
// expression over FileEnv, e.g.
//
//	Dir startsWith "playerdata" || Kind == "json"
//
// A nil Filter selects everything.
type Filter struct {
	src  string
	prog *vm.Program
}

func NewFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.Env(FileEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	if f == nil {
		return "true"
	}
	return f.src
}

func (f *Filter) Match(env FileEnv) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrFilter, env.Path, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrFilter, f.src, out)
	}
	return b, nil
}
