// Package ident converts player identifiers between the encodings found in
// save data.
//
// A save tree stores the same 128-bit identifier as
//
//   - a dashed or undashed lowercase hex string inside text,
//   - an int array of four big-endian 32-bit groups, and
//   - a pair of int64 values holding the most and least significant halves.
//
// Forms holds all of them, computed once from a parsed UUID.
package ident

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Forms is every persisted encoding of one identifier.
type Forms struct {
	UUID     uuid.UUID
	Dashed   string
	Undashed string
	Ints     [4]int32
	Most     int64
	Least    int64
}

// Parse parses s and derives all encodings. Anything accepted by
// uuid.Parse is allowed; the derived strings are always canonical.
func Parse(s string) (Forms, error) {
	if s == "" {
		return Forms{}, fmt.Errorf("%w: empty identifier", ErrInvalidFormat)
	}
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return Forms{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, err)
	}
	return FromUUID(u), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Forms {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func FromUUID(u uuid.UUID) Forms {
	most, least := ToMostLeast(u)
	return Forms{
		UUID:     u,
		Dashed:   Dashed(u),
		Undashed: Undashed(u),
		Ints:     ToInts(u),
		Most:     most,
		Least:    least,
	}
}

func (f Forms) String() string {
	return f.Dashed
}

// InText reports whether s contains the dashed or undashed form.
func (f Forms) InText(s string) bool {
	return strings.Contains(s, f.Dashed) || strings.Contains(s, f.Undashed)
}

// Dashed is the canonical lowercase 8-4-4-4-12 form.
func Dashed(u uuid.UUID) string {
	return u.String()
}

// Undashed is Dashed without separators.
func Undashed(u uuid.UUID) string {
	return strings.ReplaceAll(u.String(), "-", "")
}

// ToInts splits u into four 32-bit groups, most significant first. Each
// group is reinterpreted as a two's complement int32.
func ToInts(u uuid.UUID) [4]int32 {
	var res [4]int32
	for i := range res {
		res[i] = int32(binary.BigEndian.Uint32(u[i*4:]))
	}
	return res
}

// FromInts reverses ToInts.
func FromInts(ints [4]int32) uuid.UUID {
	var u uuid.UUID
	for i, v := range ints {
		binary.BigEndian.PutUint32(u[i*4:], uint32(v))
	}
	return u
}

// ToMostLeast returns the upper and lower 64 bits of u as int64.
func ToMostLeast(u uuid.UUID) (most, least int64) {
	most = int64(binary.BigEndian.Uint64(u[:8]))
	least = int64(binary.BigEndian.Uint64(u[8:]))
	return most, least
}

// FromMostLeast reverses ToMostLeast.
func FromMostLeast(most, least int64) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], uint64(most))
	binary.BigEndian.PutUint64(u[8:], uint64(least))
	return u
}
