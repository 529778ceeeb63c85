package nbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Document is a decoded NBT file: a named root compound plus the
// container it was stored in.
type Document struct {
	Name        string
	Root        *Node
	Compression Compression
}

// Decode decodes a complete NBT file. The compression is detected from
// the leading bytes.
func Decode(d []byte, opts ...DecodeOption) (*Document, error) {
	ds := &decState{maxDepth: DefaultMaxDepth, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(ds)
	}
	c := Sniff(d)
	raw, err := decompress(d, c, ds.maxSize)
	if err != nil {
		return nil, err
	}
	name, root, err := DecodeRaw(raw, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Root: root, Compression: c}, nil
}

// Sniff guesses the container of d.
func Sniff(d []byte) Compression {
	switch {
	case len(d) >= 2 && d[0] == 0x1f && d[1] == 0x8b:
		return CompressGzip
	case len(d) >= 2 && d[0] == 0x78 && (uint16(d[0])<<8|uint16(d[1]))%31 == 0:
		return CompressZlib
	}
	return CompressNone
}

func decompress(d []byte, c Compression, max int64) ([]byte, error) {
	var (
		r   io.ReadCloser
		err error
	)
	switch c {
	case CompressNone:
		return d, nil
	case CompressGzip:
		r, err = gzip.NewReader(bytes.NewReader(d))
	case CompressZlib:
		r, err = zlib.NewReader(bytes.NewReader(d))
	default:
		return nil, fmt.Errorf("%w: unknown compression %s", ErrDecoding, c)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s header: %w", ErrDecoding, c, err)
	}
	defer r.Close()
	res, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s stream: %w", ErrDecoding, c, err)
	}
	if int64(len(res)) > max {
		return nil, fmt.Errorf("%w: document larger than %d bytes", ErrDecoding, max)
	}
	return res, nil
}

// DecodeRaw decodes an uncompressed tag stream whose root must be a
// compound. Trailing bytes are an error.
func DecodeRaw(d []byte, opts ...DecodeOption) (string, *Node, error) {
	ds := &decState{maxDepth: DefaultMaxDepth, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(ds)
	}
	dec := &decoder{d: d, maxDepth: ds.maxDepth}
	t, err := dec.tagType()
	if err != nil {
		return "", nil, err
	}
	if t != CompoundType {
		return "", nil, fmt.Errorf("%w: root is %s, not Compound", ErrDecoding, t)
	}
	name, err := dec.string()
	if err != nil {
		return "", nil, err
	}
	root, err := dec.payload(t, 0)
	if err != nil {
		return "", nil, err
	}
	if dec.off != len(d) {
		return "", nil, fmt.Errorf("%w: %d trailing bytes", ErrDecoding, len(d)-dec.off)
	}
	return name, root, nil
}

type decoder struct {
	d        []byte
	off      int
	maxDepth int
}

func (dec *decoder) errf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrDecoding, dec.off, fmt.Sprintf(format, args...))
}

func (dec *decoder) take(n int) ([]byte, error) {
	if n < 0 || n > len(dec.d)-dec.off {
		return nil, dec.errf("unexpected end of data reading %d bytes", n)
	}
	res := dec.d[dec.off : dec.off+n]
	dec.off += n
	return res, nil
}

func (dec *decoder) tagType() (Type, error) {
	b, err := dec.take(1)
	if err != nil {
		return 0, err
	}
	t := Type(b[0])
	if !t.Valid() {
		return 0, dec.errf("unknown tag type %d", b[0])
	}
	return t, nil
}

func (dec *decoder) u16() (uint16, error) {
	b, err := dec.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (dec *decoder) u32() (uint32, error) {
	b, err := dec.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (dec *decoder) u64() (uint64, error) {
	b, err := dec.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// length reads an array or list length and checks that at least
// n*elemSize bytes remain, so corrupt lengths cannot force huge
// allocations.
func (dec *decoder) length(elemSize int) (int, error) {
	v, err := dec.u32()
	if err != nil {
		return 0, err
	}
	n := int32(v)
	if n < 0 {
		return 0, dec.errf("negative length %d", n)
	}
	if int64(n)*int64(elemSize) > int64(len(dec.d)-dec.off) {
		return 0, dec.errf("length %d exceeds remaining data", n)
	}
	return int(n), nil
}

func (dec *decoder) string() (string, error) {
	n, err := dec.u16()
	if err != nil {
		return "", err
	}
	b, err := dec.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (dec *decoder) payload(t Type, depth int) (*Node, error) {
	switch t {
	case ByteType:
		b, err := dec.take(1)
		if err != nil {
			return nil, err
		}
		return FromByte(int8(b[0])), nil
	case ShortType:
		v, err := dec.u16()
		if err != nil {
			return nil, err
		}
		return FromShort(int16(v)), nil
	case IntType:
		v, err := dec.u32()
		if err != nil {
			return nil, err
		}
		return FromInt(int32(v)), nil
	case LongType:
		v, err := dec.u64()
		if err != nil {
			return nil, err
		}
		return FromLong(int64(v)), nil
	case FloatType:
		v, err := dec.u32()
		if err != nil {
			return nil, err
		}
		return FromFloat(math.Float32frombits(v)), nil
	case DoubleType:
		v, err := dec.u64()
		if err != nil {
			return nil, err
		}
		return FromDouble(math.Float64frombits(v)), nil
	case ByteArrayType:
		n, err := dec.length(1)
		if err != nil {
			return nil, err
		}
		b, err := dec.take(n)
		if err != nil {
			return nil, err
		}
		return FromByteArray(bytes.Clone(b)), nil
	case StringType:
		s, err := dec.string()
		if err != nil {
			return nil, err
		}
		return FromString(s), nil
	case IntArrayType:
		n, err := dec.length(4)
		if err != nil {
			return nil, err
		}
		ints := make([]int32, n)
		for i := range ints {
			v, err := dec.u32()
			if err != nil {
				return nil, err
			}
			ints[i] = int32(v)
		}
		return FromIntArray(ints...), nil
	case LongArrayType:
		n, err := dec.length(8)
		if err != nil {
			return nil, err
		}
		longs := make([]int64, n)
		for i := range longs {
			v, err := dec.u64()
			if err != nil {
				return nil, err
			}
			longs[i] = int64(v)
		}
		return FromLongArray(longs...), nil
	case ListType:
		return dec.list(depth + 1)
	case CompoundType:
		return dec.compound(depth + 1)
	}
	return nil, dec.errf("unexpected tag type %s", t)
}

func (dec *decoder) list(depth int) (*Node, error) {
	if depth > dec.maxDepth {
		return nil, dec.errf("nesting deeper than %d", dec.maxDepth)
	}
	elem, err := dec.tagType()
	if err != nil {
		return nil, err
	}
	n, err := dec.length(1)
	if err != nil {
		return nil, err
	}
	if elem == EndType && n > 0 {
		return nil, dec.errf("list of End with %d elements", n)
	}
	values := make([]*Node, 0, n)
	for range n {
		v, err := dec.payload(elem, depth)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return FromSlice(elem, values), nil
}

func (dec *decoder) compound(depth int) (*Node, error) {
	if depth > dec.maxDepth {
		return nil, dec.errf("nesting deeper than %d", dec.maxDepth)
	}
	res := &Node{Type: CompoundType}
	seen := map[string]struct{}{}
	for {
		t, err := dec.tagType()
		if err != nil {
			return nil, err
		}
		if t == EndType {
			return res, nil
		}
		name, err := dec.string()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, dec.errf("duplicate compound key %q", name)
		}
		seen[name] = struct{}{}
		v, err := dec.payload(t, depth)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, name)
		res.Values = append(res.Values, v)
	}
}
