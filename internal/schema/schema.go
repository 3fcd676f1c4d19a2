// Package schema implements the schema oracle the desugarer consults to
// resolve wildcards, validate qualifiers, and compute natural-join/USING
// shared-column sets (spec §4.6). The front-end deliberately does not
// prescribe a backing store for it (spec §9 Open Question) — Static and
// FromYAML are two interchangeable implementations behind the same
// interface, the way the teacher keeps its dialect mapping tables behind
// a single lookup surface rather than hard-coding one source.
package schema

import (
	"sort"

	"github.com/chisql/chisql/internal/diag"
)

// Oracle answers the questions desugaring needs about the schema: a
// table's column list (in declared order, for wildcard expansion),
// whether it exists at all (for early, precise diagnostics rather than a
// late nil dereference), and the full set of known table names (for
// "did you mean" suggestions on an unknown one).
type Oracle interface {
	// ColumnsOf returns the ordered column names of table. The second
	// return is false if the table is unknown.
	ColumnsOf(table string) ([]string, bool)
	// Exists reports whether table is known to the oracle.
	Exists(table string) bool
	// TableNames returns every known table name, sorted.
	TableNames() []string
}

// Static is an in-memory Oracle backed by a fixed map, the simplest
// implementation and the one tests build against directly.
type Static struct {
	tables map[string][]string
}

// NewStatic builds a Static oracle from a table-name -> column-list map.
// The caller owns tables; Static does not copy it, so the caller must not
// mutate it afterward.
func NewStatic(tables map[string][]string) *Static {
	return &Static{tables: tables}
}

func (s *Static) ColumnsOf(table string) ([]string, bool) {
	cols, ok := s.tables[table]
	return cols, ok
}

func (s *Static) Exists(table string) bool {
	_, ok := s.tables[table]
	return ok
}

func (s *Static) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownTableError builds the Schema diagnostic for a reference to a
// table the oracle doesn't know, including a "did you mean" suggestion
// when a close match exists among the oracle's known tables.
func UnknownTableError(oracle Oracle, table string) *diag.Error {
	vocab := make(map[string]bool)
	for _, t := range oracle.TableNames() {
		vocab[t] = true
	}
	err := diag.NewNoLocus(diag.Schema, "unknown table %q", table)
	err.Suggestion = diag.SuggestKeyword(table, vocab)
	return err
}
