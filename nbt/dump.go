package nbt

import (
	"io"
	"strconv"
	"strings"
)

type dumpState struct {
	indent int
	colors *Colors
	note   func(*Node) string
}

type DumpOption func(*dumpState)

func DumpColors(c *Colors) DumpOption {
	return func(ds *dumpState) { ds.colors = c }
}

func DumpIndent(n int) DumpOption {
	return func(ds *dumpState) { ds.indent = n }
}

// DumpNotes attaches a trailing comment to nodes for which f returns a
// non-empty string.
func DumpNotes(f func(*Node) string) DumpOption {
	return func(ds *dumpState) { ds.note = f }
}

// Dump writes n in SNBT-like text, one compound field or list element per
// line.
func Dump(n *Node, w io.Writer, opts ...DumpOption) error {
	ds := &dumpState{indent: 2}
	for _, opt := range opts {
		opt(ds)
	}
	b := &strings.Builder{}
	ds.dump(b, n, 0)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// Sprint is Dump into a string without colors.
func Sprint(n *Node) string {
	b := &strings.Builder{}
	_ = Dump(n, b)
	return strings.TrimSuffix(b.String(), "\n")
}

func (ds *dumpState) color(t Type, attr ColorAttr, s string) string {
	if ds.colors == nil {
		return s
	}
	return ds.colors.Color(t, attr, s)
}

func (ds *dumpState) nl(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", ds.indent*depth))
}

func (ds *dumpState) writeNote(b *strings.Builder, n *Node) {
	if ds.note == nil {
		return
	}
	if s := ds.note(n); s != "" {
		b.WriteString(ds.color(n.Type, NoteColor, " # "+s))
	}
}

func (ds *dumpState) dump(b *strings.Builder, n *Node, depth int) {
	switch n.Type {
	case CompoundType:
		if len(n.Values) == 0 {
			b.WriteString(ds.color(n.Type, SepColor, "{}"))
			return
		}
		b.WriteString(ds.color(n.Type, SepColor, "{"))
		for i, v := range n.Values {
			ds.nl(b, depth+1)
			b.WriteString(ds.color(v.Type, FieldColor, dumpKey(n.Fields[i])))
			b.WriteString(ds.color(v.Type, SepColor, ": "))
			ds.dump(b, v, depth+1)
			if i < len(n.Values)-1 {
				b.WriteString(ds.color(n.Type, SepColor, ","))
			}
			if v.Type.IsLeaf() {
				ds.writeNote(b, v)
			}
		}
		ds.nl(b, depth)
		b.WriteString(ds.color(n.Type, SepColor, "}"))
	case ListType:
		if len(n.Values) == 0 {
			b.WriteString(ds.color(n.Type, SepColor, "[]"))
			return
		}
		b.WriteString(ds.color(n.Type, SepColor, "["))
		for i, v := range n.Values {
			ds.nl(b, depth+1)
			ds.dump(b, v, depth+1)
			if i < len(n.Values)-1 {
				b.WriteString(ds.color(n.Type, SepColor, ","))
			}
			if v.Type.IsLeaf() {
				ds.writeNote(b, v)
			}
		}
		ds.nl(b, depth)
		b.WriteString(ds.color(n.Type, SepColor, "]"))
	case ByteArrayType:
		elems := make([]string, len(n.Bytes))
		for i, v := range n.Bytes {
			elems[i] = strconv.Itoa(int(int8(v))) + "b"
		}
		ds.array(b, n.Type, "B", elems)
	case IntArrayType:
		elems := make([]string, len(n.Ints))
		for i, v := range n.Ints {
			elems[i] = strconv.FormatInt(int64(v), 10)
		}
		ds.array(b, n.Type, "I", elems)
	case LongArrayType:
		elems := make([]string, len(n.Longs))
		for i, v := range n.Longs {
			elems[i] = strconv.FormatInt(v, 10) + "L"
		}
		ds.array(b, n.Type, "L", elems)
	case StringType:
		b.WriteString(ds.color(n.Type, ValueColor, strconv.Quote(n.String)))
	default:
		v, suffix := scalarText(n)
		b.WriteString(ds.color(n.Type, ValueColor, v))
		if suffix != "" {
			b.WriteString(ds.color(n.Type, SuffixColor, suffix))
		}
	}
}

func (ds *dumpState) array(b *strings.Builder, t Type, prefix string, elems []string) {
	b.WriteString(ds.color(t, SepColor, "["+prefix+";"))
	for i, e := range elems {
		if i > 0 {
			b.WriteString(ds.color(t, SepColor, ","))
		}
		b.WriteString(" ")
		b.WriteString(ds.color(t, ValueColor, e))
	}
	b.WriteString(ds.color(t, SepColor, "]"))
}

func scalarText(n *Node) (string, string) {
	switch n.Type {
	case ByteType:
		return strconv.FormatInt(n.Int64, 10), "b"
	case ShortType:
		return strconv.FormatInt(n.Int64, 10), "s"
	case IntType:
		return strconv.FormatInt(n.Int64, 10), ""
	case LongType:
		return strconv.FormatInt(n.Int64, 10), "L"
	case FloatType:
		return strconv.FormatFloat(n.Float64, 'g', -1, 32), "f"
	case DoubleType:
		return strconv.FormatFloat(n.Float64, 'g', -1, 64), "d"
	}
	return "<" + n.Type.String() + ">", ""
}

func dumpKey(k string) string {
	if k == "" {
		return `""`
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.', r == '+':
		default:
			return strconv.Quote(k)
		}
	}
	return k
}
