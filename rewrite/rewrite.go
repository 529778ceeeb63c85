// Package rewrite replaces a player identifier inside NBT trees.
//
// The identifier is recognized in three encodings:
//
//   - an IntArray of exactly four elements equal to the identifier's int form,
//   - a dashed or undashed hex substring of any String,
//   - a compound holding both MostKey and LeastKey as Longs equal to the
//     identifier's halves.
//
// Rewrite mutates payloads only; node types, list element types and list
// lengths never change.
package rewrite

import (
	"slices"

	"github.com/Lagufka/minecraft-UUID-replacer/debug"
	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/nbt"
)

// Sibling keys of the legacy split encoding.
const (
	MostKey  = "UUIDMost"
	LeastKey = "UUIDLeast"
)

// Rewrite replaces every occurrence of m.Old under n with m.New and
// returns the number of replacements. A second call on the same tree
// returns 0.
func Rewrite(n *nbt.Node, m *ident.Migration) int {
	if n == nil {
		return 0
	}
	switch n.Type {
	case nbt.IntArrayType:
		if !matchInts(n, m.Old) {
			return 0
		}
		copy(n.Ints, m.New.Ints[:])
		logRewrite("int array", n)
		return 1
	case nbt.StringType:
		s := m.ReplaceText(n.String)
		if s == n.String {
			return 0
		}
		n.String = s
		logRewrite("string", n)
		return 1
	case nbt.CompoundType:
		count := 0
		if most, least := pair(n); matchPair(most, least, m.Old) {
			most.Int64, least.Int64 = m.New.Most, m.New.Least
			logRewrite("most/least", n)
			count++
		}
		for _, v := range n.Values {
			count += Rewrite(v, m)
		}
		return count
	case nbt.ListType:
		count := 0
		for _, v := range n.Values {
			count += Rewrite(v, m)
		}
		return count
	}
	return 0
}

func matchInts(n *nbt.Node, f ident.Forms) bool {
	return len(n.Ints) == 4 && slices.Equal(n.Ints, f.Ints[:])
}

// pair returns the Long values of MostKey and LeastKey, or nils when
// either is absent or not a Long.
func pair(n *nbt.Node) (most, least *nbt.Node) {
	most, least = nbt.Get(n, MostKey), nbt.Get(n, LeastKey)
	if most == nil || least == nil || most.Type != nbt.LongType || least.Type != nbt.LongType {
		return nil, nil
	}
	return most, least
}

func matchPair(most, least *nbt.Node, f ident.Forms) bool {
	return most != nil && most.Int64 == f.Most && least.Int64 == f.Least
}

func logRewrite(what string, n *nbt.Node) {
	if debug.Rewrite() {
		debug.Logf("rewrite %s -> %v\n", what, n)
	}
}
