package nbt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Encode writes doc to w using the document's compression unless
// overridden by EncodeCompression.
func Encode(doc *Document, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if doc.Root == nil || doc.Root.Type != CompoundType {
		return fmt.Errorf("%w: root must be a Compound", ErrEncoding)
	}
	if err := doc.Root.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	c := doc.Compression
	if es.compression != nil {
		c = *es.compression
	}
	var (
		cw  io.WriteCloser
		err error
	)
	switch c {
	case CompressNone:
	case CompressGzip:
		cw, err = gzip.NewWriterLevel(w, gzip.DefaultCompression)
	case CompressZlib:
		cw, err = zlib.NewWriterLevel(w, zlib.DefaultCompression)
	default:
		return fmt.Errorf("%w: unknown compression %s", ErrEncoding, c)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if cw != nil {
		w = cw
	}
	bw := bufio.NewWriter(w)
	if err := EncodeRaw(doc.Name, doc.Root, bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if cw != nil {
		return cw.Close()
	}
	return nil
}

// Marshal is Encode into a byte slice.
func Marshal(doc *Document, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeRaw writes an uncompressed tag stream for a named root compound.
// No structural check is performed.
func EncodeRaw(name string, root *Node, w io.Writer) error {
	enc := &encoder{w: w}
	enc.byte(byte(CompoundType))
	enc.string(name)
	enc.payload(root)
	return enc.err
}

type encoder struct {
	w       io.Writer
	scratch [8]byte
	err     error
}

func (enc *encoder) write(d []byte) {
	if enc.err != nil {
		return
	}
	_, enc.err = enc.w.Write(d)
}

func (enc *encoder) byte(b byte) {
	enc.scratch[0] = b
	enc.write(enc.scratch[:1])
}

func (enc *encoder) u16(v uint16) {
	binary.BigEndian.PutUint16(enc.scratch[:2], v)
	enc.write(enc.scratch[:2])
}

func (enc *encoder) u32(v uint32) {
	binary.BigEndian.PutUint32(enc.scratch[:4], v)
	enc.write(enc.scratch[:4])
}

func (enc *encoder) u64(v uint64) {
	binary.BigEndian.PutUint64(enc.scratch[:8], v)
	enc.write(enc.scratch[:8])
}

func (enc *encoder) string(s string) {
	if len(s) > math.MaxUint16 {
		if enc.err == nil {
			enc.err = fmt.Errorf("%w: string of %d bytes is too long", ErrEncoding, len(s))
		}
		return
	}
	enc.u16(uint16(len(s)))
	enc.write([]byte(s))
}

func (enc *encoder) payload(n *Node) {
	switch n.Type {
	case ByteType:
		enc.byte(byte(int8(n.Int64)))
	case ShortType:
		enc.u16(uint16(int16(n.Int64)))
	case IntType:
		enc.u32(uint32(int32(n.Int64)))
	case LongType:
		enc.u64(uint64(n.Int64))
	case FloatType:
		enc.u32(math.Float32bits(float32(n.Float64)))
	case DoubleType:
		enc.u64(math.Float64bits(n.Float64))
	case ByteArrayType:
		enc.u32(uint32(len(n.Bytes)))
		enc.write(n.Bytes)
	case StringType:
		enc.string(n.String)
	case IntArrayType:
		enc.u32(uint32(len(n.Ints)))
		for _, v := range n.Ints {
			enc.u32(uint32(v))
		}
	case LongArrayType:
		enc.u32(uint32(len(n.Longs)))
		for _, v := range n.Longs {
			enc.u64(uint64(v))
		}
	case ListType:
		elem := n.Elem
		if len(n.Values) == 0 && !elem.Valid() {
			elem = EndType
		}
		enc.byte(byte(elem))
		enc.u32(uint32(len(n.Values)))
		for _, v := range n.Values {
			enc.payload(v)
		}
	case CompoundType:
		for i, v := range n.Values {
			enc.byte(byte(v.Type))
			enc.string(n.Fields[i])
			enc.payload(v)
		}
		enc.byte(byte(EndType))
	default:
		if enc.err == nil {
			enc.err = fmt.Errorf("%w: cannot encode %s", ErrEncoding, n.Type)
		}
	}
}
