package printer

import (
	"io"

	"github.com/k0kubun/pp/v3"
)

// debugPrinter is a package-level pp.PrettyPrinter configured once so
// every Dump call gets the same formatting without re-deriving it.
var debugPrinter = newDebugPrinter()

func newDebugPrinter() *pp.PrettyPrinter {
	p := pp.New()
	p.SetExportedOnly(true)
	return p
}

// Dump writes the Go struct layout of an SRA/RA/expression tree to w,
// for interactive debugging only — never the canonical textual form
// (that's PrintSRA/PrintRA). Field names, pointer structure, and slice
// indices are all visible, which the prefix-notation Stringer output
// deliberately hides.
func Dump(w io.Writer, v any) {
	debugPrinter.Fprintln(w, v)
}
