package nbt

import "fmt"

// Type is an NBT tag id. The numeric values are the ones used on disk.
type Type byte

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
	LongArrayType
)

var typeNames = map[Type]string{
	EndType:       "End",
	ByteType:      "Byte",
	ShortType:     "Short",
	IntType:       "Int",
	LongType:      "Long",
	FloatType:     "Float",
	DoubleType:    "Double",
	ByteArrayType: "ByteArray",
	StringType:    "String",
	ListType:      "List",
	CompoundType:  "Compound",
	IntArrayType:  "IntArray",
	LongArrayType: "LongArray",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown type %d>", byte(t))
}

func Types() []Type {
	return []Type{
		EndType,
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		ByteArrayType,
		StringType,
		ListType,
		CompoundType,
		IntArrayType,
		LongArrayType,
	}
}

func (t Type) Valid() bool {
	return t <= LongArrayType
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, CompoundType:
		return false
	default:
		return true
	}
}
