package nbt

import "fmt"

// Compression is the container wrapping the tag stream of a file.
type Compression int

const (
	CompressNone Compression = iota
	CompressGzip
	CompressZlib
)

func (c Compression) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressGzip:
		return "gzip"
	case CompressZlib:
		return "zlib"
	}
	return fmt.Sprintf("<compression %d>", int(c))
}

const (
	// DefaultMaxDepth matches the nesting limit of the game itself.
	DefaultMaxDepth = 512
	DefaultMaxSize  = 256 << 20
)

type decState struct {
	maxDepth int
	maxSize  int64
}

type DecodeOption func(*decState)

// MaxDepth limits compound and list nesting.
func MaxDepth(n int) DecodeOption {
	return func(ds *decState) { ds.maxDepth = n }
}

// MaxSize limits the decompressed size of a document.
func MaxSize(n int64) DecodeOption {
	return func(ds *decState) { ds.maxSize = n }
}

type encState struct {
	compression *Compression
}

type EncodeOption func(*encState)

// EncodeCompression overrides the compression recorded in the document.
func EncodeCompression(c Compression) EncodeOption {
	return func(es *encState) { es.compression = &c }
}
