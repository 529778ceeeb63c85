package nbt

import "strconv"

// FieldPath extends a tree path with a compound field, e.g.
// FieldPath("Inventory[3]", "tag") is "Inventory[3].tag". Fields which
// are not plain identifiers are quoted.
func FieldPath(prefix, field string) string {
	f := dumpKey(field)
	if prefix == "" {
		return f
	}
	return prefix + "." + f
}

// IndexPath extends a tree path with a list index.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}
