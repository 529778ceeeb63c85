package migrate

import (
	"path/filepath"
	"strings"
)

// Kind selects the handler for a file.
type Kind int

const (
	KindIgnored Kind = iota
	KindNBT
	KindJSON
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNBT:
		return "nbt"
	case KindJSON:
		return "json"
	case KindText:
		return "text"
	}
	return "ignored"
}

var kindsByExt = map[string]Kind{
	".dat":        KindNBT,
	".dat_old":    KindNBT,
	".json":       KindJSON,
	".txt":        KindText,
	".properties": KindText,
	".yml":        KindText,
	".yaml":       KindText,
	".mcmeta":     KindText,
}

// Classify returns the kind of path by its lower-cased extension.
func Classify(path string) Kind {
	return kindsByExt[strings.ToLower(filepath.Ext(path))]
}

// skipLevel reports whether an NBT file holds world-wide state that a
// player migration must not touch: files named level* other than the
// level metadata itself.
func skipLevel(name string) bool {
	if !strings.HasPrefix(name, "level") {
		return false
	}
	return name != "level.dat" && name != "level.dat_old"
}
