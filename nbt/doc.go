// Package nbt provides the tree model and binary codec for NBT, the
// tagged binary format of game save files.
//
// # Node Structure
//
// A Node is a recursive tagged union keyed by Type. Containers are
// compounds (ordered, uniquely keyed fields) and lists (homogeneous
// elements of type Elem). Leaves are numeric scalars, strings and
// byte/int/long arrays. See Node for which fields each type uses.
//
//	root := nbt.FromKeyVals(
//	    nbt.KeyVal{Key: "UUID", Val: nbt.FromIntArray(1, 2, 3, 4)},
//	    nbt.KeyVal{Key: "Name", Val: nbt.FromString("alex")},
//	)
//
// # Files
//
// Decode reads a whole file, detecting gzip, zlib or raw containers, into
// a Document. Encode writes it back in the same container, so an
// unmodified document round trips to identical tag bytes.
//
//	doc, err := nbt.Decode(data)
//	...
//	err = nbt.Encode(doc, w)
//
// Strings are kept as the raw bytes found on disk (Java modified UTF-8)
// and written back unchanged. ASCII substrings such as identifiers can
// be replaced without re-encoding the rest of the string.
//
// # Related Packages
//
//   - github.com/Lagufka/minecraft-UUID-replacer/rewrite - identifier rewriting over trees
package nbt
