package nbt

import (
	"fmt"
	"maps"
	"slices"
)

// Node is one tag of an NBT tree. Which fields are meaningful depends on
// Type:
//
//   - Byte, Short, Int, Long: Int64
//   - Float, Double: Float64
//   - String: String, holding the raw modified UTF-8 bytes from disk
//   - ByteArray: Bytes
//   - IntArray: Ints
//   - LongArray: Longs
//   - List: Elem and Values
//   - Compound: Fields and Values, Fields[i] naming Values[i]
type Node struct {
	Type Type

	Fields []string
	Values []*Node
	Elem   Type

	Int64   int64
	Float64 float64
	String  string
	Bytes   []byte
	Ints    []int32
	Longs   []int64
}

func FromByte(v int8) *Node {
	return &Node{Type: ByteType, Int64: int64(v)}
}

func FromShort(v int16) *Node {
	return &Node{Type: ShortType, Int64: int64(v)}
}

func FromInt(v int32) *Node {
	return &Node{Type: IntType, Int64: int64(v)}
}

func FromLong(v int64) *Node {
	return &Node{Type: LongType, Int64: v}
}

func FromFloat(v float32) *Node {
	return &Node{Type: FloatType, Float64: float64(v)}
}

func FromDouble(v float64) *Node {
	return &Node{Type: DoubleType, Float64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromByteArray(v []byte) *Node {
	return &Node{Type: ByteArrayType, Bytes: v}
}

func FromIntArray(v ...int32) *Node {
	return &Node{Type: IntArrayType, Ints: v}
}

func FromLongArray(v ...int64) *Node {
	return &Node{Type: LongArrayType, Longs: v}
}

// FromSlice makes a list of elem. An empty list keeps elem as its
// element type.
func FromSlice(elem Type, values []*Node) *Node {
	return &Node{Type: ListType, Elem: elem, Values: values}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals makes a compound preserving the order of kvs.
func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{
		Type:   CompoundType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i, kv := range kvs {
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap makes a compound with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(kvs...)
}

// Get returns the value of field in compound n, or nil.
func Get(n *Node, field string) *Node {
	if n == nil || n.Type != CompoundType {
		return nil
	}
	for i, f := range n.Fields {
		if f == field {
			return n.Values[i]
		}
	}
	return nil
}

// Set replaces the value of field in compound n, appending it if absent.
func (n *Node) Set(field string, v *Node) {
	for i, f := range n.Fields {
		if f == field {
			n.Values[i] = v
			return
		}
	}
	n.Fields = append(n.Fields, field)
	n.Values = append(n.Values, v)
}

// Len is the number of elements of a container or array node.
func (n *Node) Len() int {
	switch n.Type {
	case ListType, CompoundType:
		return len(n.Values)
	case ByteArrayType:
		return len(n.Bytes)
	case IntArrayType:
		return len(n.Ints)
	case LongArrayType:
		return len(n.Longs)
	}
	return 0
}

func (n *Node) Clone() *Node {
	res := *n
	res.Fields = slices.Clone(n.Fields)
	res.Bytes = slices.Clone(n.Bytes)
	res.Ints = slices.Clone(n.Ints)
	res.Longs = slices.Clone(n.Longs)
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return &res
}

// Visit calls f before (isPost false) and after (isPost true) visiting the
// children of n. Children are only visited when the pre call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Check verifies the structural constraints of the format: compound keys
// are unique, list elements all have the list's element type and no value
// is nil.
func (n *Node) Check() error {
	return n.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if !y.Type.Valid() || y.Type == EndType {
			return false, fmt.Errorf("invalid node type %s", y.Type)
		}
		switch y.Type {
		case CompoundType:
			if len(y.Fields) != len(y.Values) {
				return false, fmt.Errorf("compound has %d fields and %d values", len(y.Fields), len(y.Values))
			}
			seen := make(map[string]struct{}, len(y.Fields))
			for i, f := range y.Fields {
				if _, dup := seen[f]; dup {
					return false, fmt.Errorf("duplicate compound key %q", f)
				}
				seen[f] = struct{}{}
				if y.Values[i] == nil {
					return false, fmt.Errorf("nil value for key %q", f)
				}
			}
		case ListType:
			for i, v := range y.Values {
				if v == nil {
					return false, fmt.Errorf("nil list element %d", i)
				}
				if v.Type != y.Elem {
					return false, fmt.Errorf("list of %s has %s element at %d", y.Elem, v.Type, i)
				}
			}
		}
		return true, nil
	})
}
