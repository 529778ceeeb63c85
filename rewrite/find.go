package rewrite

import (
	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/nbt"
)

// Encoding says how an identifier was stored.
type Encoding int

const (
	IntArrayEncoding Encoding = iota
	StringEncoding
	MostLeastEncoding
)

func (e Encoding) String() string {
	switch e {
	case IntArrayEncoding:
		return "int array"
	case StringEncoding:
		return "string"
	case MostLeastEncoding:
		return "most/least"
	}
	return "<unknown encoding>"
}

// Match is one occurrence of an identifier in a tree.
type Match struct {
	Path     string
	Encoding Encoding
	Node     *nbt.Node
}

// Find reports every occurrence of f under n without modifying anything.
// It recognizes exactly what Rewrite replaces. Path is relative to n; a
// most/least match is reported at the compound holding the pair.
func Find(n *nbt.Node, f ident.Forms) []Match {
	var res []Match
	find(n, f, "", &res)
	return res
}

// Contains reports whether Find would return any match.
func Contains(n *nbt.Node, f ident.Forms) bool {
	return len(Find(n, f)) > 0
}

func find(n *nbt.Node, f ident.Forms, path string, res *[]Match) {
	if n == nil {
		return
	}
	switch n.Type {
	case nbt.IntArrayType:
		if matchInts(n, f) {
			*res = append(*res, Match{Path: path, Encoding: IntArrayEncoding, Node: n})
		}
	case nbt.StringType:
		if f.InText(n.String) {
			*res = append(*res, Match{Path: path, Encoding: StringEncoding, Node: n})
		}
	case nbt.CompoundType:
		if most, least := pair(n); matchPair(most, least, f) {
			*res = append(*res, Match{Path: path, Encoding: MostLeastEncoding, Node: n})
		}
		for i, v := range n.Values {
			find(v, f, nbt.FieldPath(path, n.Fields[i]), res)
		}
	case nbt.ListType:
		for i, v := range n.Values {
			find(v, f, nbt.IndexPath(path, i), res)
		}
	}
}
