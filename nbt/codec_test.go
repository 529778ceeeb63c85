package nbt

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// hello world test file from the format description.
var helloWorld = []byte{
	0x0a, 0x00, 0x0b, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
	0x08, 0x00, 0x04, 'n', 'a', 'm', 'e',
	0x00, 0x09, 'B', 'a', 'n', 'c', 'r', 'o', 'f', 't', 's',
	0x00,
}

func sampleRoot() *Node {
	return FromKeyVals(
		KeyVal{Key: "DataVersion", Val: FromInt(3465)},
		KeyVal{Key: "UUID", Val: FromIntArray(1058710969, 1009471044, -1716652504, 1319054993)},
		KeyVal{Key: "UUIDMost", Val: FromLong(4547128988780940868)},
		KeyVal{Key: "UUIDLeast", Val: FromLong(-7372966361957454191)},
		KeyVal{Key: "Health", Val: FromFloat(20)},
		KeyVal{Key: "Pos", Val: FromSlice(DoubleType, []*Node{FromDouble(1.5), FromDouble(-64), FromDouble(math.Pi)})},
		KeyVal{Key: "OnGround", Val: FromByte(1)},
		KeyVal{Key: "Air", Val: FromShort(300)},
		KeyVal{Key: "Seed", Val: FromByteArray([]byte{0, 1, 0xff})},
		KeyVal{Key: "Heights", Val: FromLongArray(-1, 0, math.MaxInt64)},
		KeyVal{Key: "Inventory", Val: FromSlice(CompoundType, []*Node{
			FromKeyVals(
				KeyVal{Key: "id", Val: FromString("minecraft:player_head")},
				KeyVal{Key: "tag", Val: FromKeyVals(
					KeyVal{Key: "SkullOwner", Val: FromString("3f1aa5b9-3c2b-4e44-99ad-f6284e9f2e91")},
				)},
			),
		})},
		KeyVal{Key: "Empty", Val: FromSlice(EndType, nil)},
		KeyVal{Key: "Nested", Val: FromSlice(ListType, []*Node{
			FromSlice(IntType, []*Node{FromInt(1), FromInt(2)}),
		})},
		KeyVal{Key: "café é", Val: FromString("\xc0\x80 raw")},
	)
}

var nodeCmp = cmpopts.EquateEmpty()

func TestDecodeHelloWorld(t *testing.T) {
	doc, err := Decode(helloWorld)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "hello world" || doc.Compression != CompressNone {
		t.Errorf("got name %q compression %s", doc.Name, doc.Compression)
	}
	want := FromKeyVals(KeyVal{Key: "name", Val: FromString("Bancrofts")})
	if diff := cmp.Diff(want, doc.Root, nodeCmp); diff != "" {
		t.Errorf("root mismatch (-want +got):\n%s", diff)
	}
	got, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, helloWorld) {
		t.Errorf("re-encoded bytes differ:\n got % x\nwant % x", got, helloWorld)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []Compression{CompressNone, CompressGzip, CompressZlib} {
		t.Run(c.String(), func(t *testing.T) {
			doc := &Document{Name: "", Root: sampleRoot(), Compression: c}
			d, err := Marshal(doc)
			if err != nil {
				t.Fatal(err)
			}
			if got := Sniff(d); got != c {
				t.Errorf("Sniff() = %s, want %s", got, c)
			}
			back, err := Decode(d)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(doc, back, nodeCmp); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			raw1 := bytes.NewBuffer(nil)
			raw2 := bytes.NewBuffer(nil)
			if err := EncodeRaw(doc.Name, doc.Root, raw1); err != nil {
				t.Fatal(err)
			}
			if err := EncodeRaw(back.Name, back.Root, raw2); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(raw1.Bytes(), raw2.Bytes()) {
				t.Error("tag streams differ after round trip")
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	deep := []byte{0x0a, 0x00, 0x00}
	for range 10 {
		deep = append(deep, 0x0a, 0x00, 0x01, 'x')
	}
	tests := []struct {
		name string
		in   []byte
		opts []DecodeOption
	}{
		{"empty", nil, nil},
		{"not compound", []byte{0x08, 0x00, 0x00, 0x00, 0x00}, nil},
		{"truncated", helloWorld[:len(helloWorld)-3], nil},
		{"missing end", helloWorld[:len(helloWorld)-1], nil},
		{"trailing", append(append([]byte{}, helloWorld...), 0x00), nil},
		{"unknown tag", []byte{0x0a, 0x00, 0x00, 0x0d, 0x00, 0x01, 'x', 0x00}, nil},
		{"negative length", []byte{0x0a, 0x00, 0x00, 0x0b, 0x00, 0x01, 'x', 0xff, 0xff, 0xff, 0xff, 0x00}, nil},
		{"length past end", []byte{0x0a, 0x00, 0x00, 0x0b, 0x00, 0x01, 'x', 0x00, 0x00, 0x10, 0x00, 0x00}, nil},
		{"int array short by a value", []byte{0x0a, 0x00, 0x00, 0x0b, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x01, 0x00}, nil},
		{"long array short by a value", []byte{0x0a, 0x00, 0x00, 0x0c, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00}, nil},
		{"end list with elements", []byte{0x0a, 0x00, 0x00, 0x09, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x00, 0x01, 0x00}, nil},
		{"duplicate key", []byte{0x0a, 0x00, 0x00, 0x01, 0x00, 0x01, 'x', 0x01, 0x01, 0x00, 0x01, 'x', 0x02, 0x00}, nil},
		{"too deep", deep, []DecodeOption{MaxDepth(4)}},
		{"bad gzip", []byte{0x1f, 0x8b, 0x00}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in, tt.opts...)
			if !errors.Is(err, ErrDecoding) {
				t.Errorf("Decode() error = %v, want ErrDecoding", err)
			}
		})
	}
}

func TestDecodeMaxSize(t *testing.T) {
	d, err := Marshal(&Document{Root: sampleRoot(), Compression: CompressGzip})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(d, MaxSize(16)); !errors.Is(err, ErrDecoding) {
		t.Errorf("Decode() error = %v, want ErrDecoding", err)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		root *Node
	}{
		{"nil root", nil},
		{"list root", FromSlice(IntType, nil)},
		{"mixed list", FromKeyVals(KeyVal{Key: "l", Val: FromSlice(IntType, []*Node{FromInt(1), FromLong(2)})})},
		{"duplicate key", FromKeyVals(KeyVal{Key: "a", Val: FromInt(1)}, KeyVal{Key: "a", Val: FromInt(2)})},
		{"nil value", FromKeyVals(KeyVal{Key: "a"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(&Document{Root: tt.root})
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("Marshal() error = %v, want ErrEncoding", err)
			}
		})
	}
}

func TestEncodeCompressionOverride(t *testing.T) {
	doc, err := Decode(helloWorld)
	if err != nil {
		t.Fatal(err)
	}
	d, err := Marshal(doc, EncodeCompression(CompressGzip))
	if err != nil {
		t.Fatal(err)
	}
	if Sniff(d) != CompressGzip {
		t.Fatalf("expected gzip output")
	}
	back, err := Decode(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc.Root, back.Root, nodeCmp); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
