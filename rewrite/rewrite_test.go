package rewrite

import (
	"testing"

	"github.com/Lagufka/minecraft-UUID-replacer/ident"
	"github.com/Lagufka/minecraft-UUID-replacer/nbt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const (
	oldID = "3f1aa5b9-3c2b-4e44-99ad-f6284e9f2e91"
	newID = "11111111-2222-3333-4444-555555555555"
)

var (
	oldInts = []int32{1058710969, 1009471044, -1716652504, 1319054993}
	newInts = []int32{286331153, 572666675, 1145328981, 1431655765}
)

func migration(t *testing.T) *ident.Migration {
	t.Helper()
	m, err := ident.NewMigration(oldID, newID)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func kv(k string, v *nbt.Node) nbt.KeyVal {
	return nbt.KeyVal{Key: k, Val: v}
}

func TestRewriteIntArray(t *testing.T) {
	m := migration(t)
	arr := nbt.FromIntArray(oldInts...)
	root := nbt.FromKeyVals(kv("UUID", arr))
	if got := Rewrite(root, m); got != 1 {
		t.Fatalf("Rewrite() = %d, want 1", got)
	}
	if diff := cmp.Diff(newInts, arr.Ints); diff != "" {
		t.Errorf("int array mismatch (-want +got):\n%s", diff)
	}
	if arr.Type != nbt.IntArrayType {
		t.Errorf("type changed to %s", arr.Type)
	}
}

func TestRewriteSingleEncoding(t *testing.T) {
	m := migration(t)
	tests := []struct {
		name string
		in   *nbt.Node
		want *nbt.Node
	}{
		{
			name: "int array only",
			in:   nbt.FromKeyVals(kv("Owner", nbt.FromIntArray(oldInts...))),
			want: nbt.FromKeyVals(kv("Owner", nbt.FromIntArray(newInts...))),
		},
		{
			name: "dashed string only",
			in:   nbt.FromKeyVals(kv("Owner", nbt.FromString(oldID))),
			want: nbt.FromKeyVals(kv("Owner", nbt.FromString(newID))),
		},
		{
			name: "undashed string only",
			in:   nbt.FromKeyVals(kv("Owner", nbt.FromString("3f1aa5b93c2b4e4499adf6284e9f2e91"))),
			want: nbt.FromKeyVals(kv("Owner", nbt.FromString("11111111222233334444555555555555"))),
		},
		{
			name: "most/least only",
			in: nbt.FromKeyVals(
				kv(MostKey, nbt.FromLong(m.Old.Most)),
				kv("Other", nbt.FromInt(7)),
				kv(LeastKey, nbt.FromLong(m.Old.Least)),
			),
			want: nbt.FromKeyVals(
				kv(MostKey, nbt.FromLong(1229782938533638963)),
				kv("Other", nbt.FromInt(7)),
				kv(LeastKey, nbt.FromLong(4919150517987661141)),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rewrite(tt.in, m); got != 1 {
				t.Errorf("Rewrite() = %d, want 1", got)
			}
			if diff := cmp.Diff(tt.want, tt.in, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
			if got := Find(tt.in, m.Old); len(got) != 0 {
				t.Errorf("old identifier still found: %v", got)
			}
		})
	}
}

func TestRewriteLeavesOtherDataAlone(t *testing.T) {
	m := migration(t)
	tests := []struct {
		name string
		in   *nbt.Node
	}{
		{"other 4 array", nbt.FromKeyVals(kv("a", nbt.FromIntArray(1, 2, 3, 4)))},
		{"longer array", nbt.FromKeyVals(kv("a", nbt.FromIntArray(append(append([]int32{}, oldInts...), 0)...)))},
		{"shorter array", nbt.FromKeyVals(kv("a", nbt.FromIntArray(oldInts[:3]...)))},
		{"long array", nbt.FromKeyVals(kv("a", nbt.FromLongArray(4547128988780940868, -7372966361957454191)))},
		{"most only", nbt.FromKeyVals(kv(MostKey, nbt.FromLong(m.Old.Most)))},
		{"least only", nbt.FromKeyVals(kv(LeastKey, nbt.FromLong(m.Old.Least)))},
		{"most/least not longs", nbt.FromKeyVals(
			kv(MostKey, nbt.FromDouble(float64(m.Old.Most))),
			kv(LeastKey, nbt.FromLong(m.Old.Least)),
		)},
		{"most/least other value", nbt.FromKeyVals(
			kv(MostKey, nbt.FromLong(m.Old.Most)),
			kv(LeastKey, nbt.FromLong(m.Old.Least+1)),
		)},
		{"upper case text", nbt.FromKeyVals(kv("a", nbt.FromString("3F1AA5B9-3C2B-4E44-99AD-F6284E9F2E91")))},
		{"ints in a list", nbt.FromKeyVals(kv("a", nbt.FromSlice(nbt.IntType, []*nbt.Node{
			nbt.FromInt(oldInts[0]), nbt.FromInt(oldInts[1]), nbt.FromInt(oldInts[2]), nbt.FromInt(oldInts[3]),
		})))},
		{"byte array of text", nbt.FromKeyVals(kv("a", nbt.FromByteArray([]byte(oldID))))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.Clone()
			if got := Rewrite(tt.in, m); got != 0 {
				t.Errorf("Rewrite() = %d, want 0", got)
			}
			if diff := cmp.Diff(before, tt.in, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tree modified (-before +after):\n%s", diff)
			}
		})
	}
}

func TestRewriteStrings(t *testing.T) {
	m := migration(t)
	tests := []struct {
		in, want string
		count    int
	}{
		{"playerdata/" + oldID + ".dat", "playerdata/" + newID + ".dat", 1},
		{oldID + " and 3f1aa5b93c2b4e4499adf6284e9f2e91", newID + " and 11111111222233334444555555555555", 1},
		{`{"text":"owned by ` + oldID + `"}`, `{"text":"owned by ` + newID + `"}`, 1},
		{"unrelated", "unrelated", 0},
	}
	for _, tt := range tests {
		n := nbt.FromString(tt.in)
		if got := Rewrite(n, m); got != tt.count {
			t.Errorf("Rewrite(%q) = %d, want %d", tt.in, got, tt.count)
		}
		if n.String != tt.want {
			t.Errorf("Rewrite(%q) -> %q, want %q", tt.in, n.String, tt.want)
		}
	}
}

func player(m *ident.Migration) *nbt.Node {
	return nbt.FromKeyVals(
		kv("UUID", nbt.FromIntArray(oldInts...)),
		kv("Inventory", nbt.FromSlice(nbt.CompoundType, []*nbt.Node{
			nbt.FromKeyVals(
				kv("id", nbt.FromString("minecraft:player_head")),
				kv("tag", nbt.FromKeyVals(
					kv("SkullOwner", nbt.FromKeyVals(
						kv("Id", nbt.FromIntArray(oldInts...)),
						kv("Name", nbt.FromString("alex")),
					)),
				)),
			),
			nbt.FromKeyVals(kv("id", nbt.FromString("minecraft:stone"))),
		})),
		kv("Leash", nbt.FromKeyVals(
			kv(MostKey, nbt.FromLong(m.Old.Most)),
			kv(LeastKey, nbt.FromLong(m.Old.Least)),
			kv("Note", nbt.FromString("leashed to 3f1aa5b93c2b4e4499adf6284e9f2e91")),
		)),
		kv("Friends", nbt.FromSlice(nbt.StringType, []*nbt.Node{
			nbt.FromString("someone"),
			nbt.FromString(oldID),
		})),
		kv("Arrays", nbt.FromSlice(nbt.IntArrayType, []*nbt.Node{
			nbt.FromIntArray(oldInts...),
			nbt.FromIntArray(1, 2, 3, 4),
		})),
		kv("Pos", nbt.FromSlice(nbt.DoubleType, []*nbt.Node{nbt.FromDouble(1), nbt.FromDouble(2)})),
	)
}

func TestRewriteNested(t *testing.T) {
	m := migration(t)
	root := player(m)
	var lens []int
	var elems []nbt.Type
	for _, v := range root.Values {
		if v.Type == nbt.ListType {
			lens = append(lens, len(v.Values))
			elems = append(elems, v.Elem)
		}
	}
	// UUID, SkullOwner.Id, Leash pair, Leash.Note, Friends[1], Arrays[0]
	if got := Rewrite(root, m); got != 6 {
		t.Errorf("Rewrite() = %d, want 6", got)
	}
	i := 0
	for _, v := range root.Values {
		if v.Type != nbt.ListType {
			continue
		}
		if len(v.Values) != lens[i] || v.Elem != elems[i] {
			t.Errorf("list changed shape: len %d elem %s", len(v.Values), v.Elem)
		}
		for _, e := range v.Values {
			if e.Type != v.Elem {
				t.Errorf("list element type %s in list of %s", e.Type, v.Elem)
			}
		}
		i++
	}
	if err := root.Check(); err != nil {
		t.Errorf("rewritten tree is invalid: %v", err)
	}
	if got := Find(root, m.Old); len(got) != 0 {
		t.Errorf("old identifier still present: %v", got)
	}
	if got := len(Find(root, m.New)); got != 6 {
		t.Errorf("new identifier found %d times, want 6", got)
	}
}

func TestRewriteIdempotent(t *testing.T) {
	m := migration(t)
	root := player(m)
	if got := Rewrite(root, m); got == 0 {
		t.Fatal("first Rewrite() changed nothing")
	}
	after := root.Clone()
	if got := Rewrite(root, m); got != 0 {
		t.Errorf("second Rewrite() = %d, want 0", got)
	}
	if diff := cmp.Diff(after, root, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("second Rewrite() modified the tree:\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	m := migration(t)
	root := player(m)
	got := Find(root, m.Old)
	type pe struct {
		Path     string
		Encoding Encoding
	}
	var paths []pe
	for _, mt := range got {
		paths = append(paths, pe{mt.Path, mt.Encoding})
	}
	want := []pe{
		{"UUID", IntArrayEncoding},
		{"Inventory[0].tag.SkullOwner.Id", IntArrayEncoding},
		{"Leash", MostLeastEncoding},
		{"Leash.Note", StringEncoding},
		{"Friends[1]", StringEncoding},
		{"Arrays[0]", IntArrayEncoding},
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Find() mismatch (-want +got):\n%s", diff)
	}
	if !Contains(root, m.Old) || Contains(root, m.New) {
		t.Error("Contains() disagrees with Find()")
	}
	if diff := cmp.Diff(player(m), root, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Find() modified the tree:\n%s", diff)
	}
}
