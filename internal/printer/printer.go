// Package printer renders SRA and RA trees as deterministic,
// fully-parenthesized prefix notation (spec §4.9): the same tree always
// prints to the same text. The printed form is output only:
// internal/parser reads SQL text and does not parse it back. The canonical
// form is just each node's own String() method (internal/ast/expr,
// internal/ast/sra, internal/ast/ra already implement it to this rule,
// spec-compliance for equality tests and printing both flow from the
// same method); this package is the one place callers are meant to
// import to print a tree, and the one place a structured debug dump
// lives alongside it.
package printer

import (
	"github.com/chisql/chisql/internal/ast/ra"
	"github.com/chisql/chisql/internal/ast/sra"
)

// PrintSRA renders an SRA tree in canonical form.
func PrintSRA(n sra.SRA) string { return n.String() }

// PrintRA renders an RA tree in canonical form.
func PrintRA(n ra.RA) string { return n.String() }
