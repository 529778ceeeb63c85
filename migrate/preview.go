package migrate

import (
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// previewContext is how much unchanged text is shown around a change.
const previewContext = 24

var (
	delColor = color.New(color.FgRed).SprintFunc()
	insColor = color.New(color.FgGreen).SprintFunc()
)

// WritePreview renders the change from before to after as an inline
// diff. JSON documents also get an RFC 7386 merge patch when both sides
// parse.
func WritePreview(w io.Writer, rel string, k Kind, before, after []byte) error {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), string(after), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	b := &strings.Builder{}
	fmt.Fprintf(b, "--- %s (%s)\n", rel, k)
	for i, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(delColor("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffInsert:
			b.WriteString(insColor("{+" + d.Text + "+}"))
		case diffmatchpatch.DiffEqual:
			b.WriteString(elide(d.Text, i == 0, i == len(diffs)-1))
		}
	}
	b.WriteString("\n")
	if k == KindJSON {
		if patch, err := jsonpatch.CreateMergePatch(before, after); err == nil {
			fmt.Fprintf(b, "merge patch: %s\n", patch)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// elide shortens unchanged text, keeping the part adjacent to changes.
func elide(s string, first, last bool) string {
	r := []rune(s)
	switch {
	case first && last:
		return s
	case first:
		if len(r) > previewContext {
			return "..." + string(r[len(r)-previewContext:])
		}
	case last:
		if len(r) > previewContext {
			return string(r[:previewContext]) + "..."
		}
	default:
		if len(r) > 2*previewContext {
			return string(r[:previewContext]) + "..." + string(r[len(r)-previewContext:])
		}
	}
	return s
}
