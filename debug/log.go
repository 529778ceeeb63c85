package debug

import (
	"fmt"
	"os"

	"github.com/Lagufka/minecraft-UUID-replacer/nbt"
)

// Logf writes to stderr. *nbt.Node arguments are rendered as SNBT.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*nbt.Node); ok && x != nil {
			args[i] = nbt.Sprint(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
