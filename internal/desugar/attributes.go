package desugar

import (
	"github.com/chisql/chisql/internal/ast/ra"
	"github.com/chisql/chisql/internal/schema"
)

// outputAttributes infers the ordered output attribute list of an
// already-lowered RA subtree. It is the one place the desugarer needs to
// reason about "what columns does this relation have" — for wildcard
// expansion, and for computing the natural-join/USING shared-column set —
// so it walks the RA tree rather than re-deriving the answer from the SRA
// tree a second time.
func outputAttributes(r ra.RA, oracle schema.Oracle) []ra.Attribute {
	switch n := r.(type) {
	case *ra.RATable:
		cols, _ := oracle.ColumnsOf(n.Name)
		attrs := make([]ra.Attribute, len(cols))
		for i, c := range cols {
			attrs[i] = ra.Attribute{Qualifier: n.Name, Name: c}
		}
		return attrs
	case *ra.RhoTable:
		inner := outputAttributes(n.Child, oracle)
		out := make([]ra.Attribute, len(inner))
		for i, a := range inner {
			out[i] = ra.Attribute{Qualifier: n.Alias, Name: a.Name}
		}
		return out
	case *ra.Pi:
		return n.Attributes
	case *ra.Sigma:
		return outputAttributes(n.Child, oracle)
	case *ra.Cross:
		left := outputAttributes(n.Left, oracle)
		right := outputAttributes(n.Right, oracle)
		return append(append([]ra.Attribute{}, left...), right...)
	case *ra.OuterJoin:
		left := outputAttributes(n.Left, oracle)
		right := outputAttributes(n.Right, oracle)
		return append(append([]ra.Attribute{}, left...), right...)
	case *ra.RASetOp:
		return outputAttributes(n.Left, oracle)
	case *ra.Rho:
		base := outputAttributes(n.Child, oracle)
		out := make([]ra.Attribute, 0, len(base)+1)
		for _, a := range base {
			if a.Name != n.Target {
				out = append(out, a)
			}
		}
		out = append(out, ra.Attribute{Name: n.Target})
		return out
	case *ra.OrderBy:
		return outputAttributes(n.Child, oracle)
	default:
		return nil
	}
}

func containsName(attrs []ra.Attribute, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

func qualifierForName(attrs []ra.Attribute, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Qualifier
		}
	}
	return ""
}

// sharedNames returns the column names present in both attribute lists,
// in left's order, each appearing once.
func sharedNames(left, right []ra.Attribute) []string {
	rightSet := make(map[string]bool, len(right))
	for _, a := range right {
		rightSet[a.Name] = true
	}
	seen := make(map[string]bool)
	var shared []string
	for _, a := range left {
		if rightSet[a.Name] && !seen[a.Name] {
			seen[a.Name] = true
			shared = append(shared, a.Name)
		}
	}
	return shared
}

// collapseSharedAttributes builds the output attribute list for a
// natural/USING join: every one of left's attributes, plus every one of
// right's attributes whose name isn't in shared (spec §9 Open Question b
// — USING is a natural join restricted to the named columns, and a
// natural join keeps exactly one copy of each shared column). The
// result is the Pi's final exposed schema, so it carries bare names
// only (spec §8's natural-join-equivalence property compares against
// `Pi([a, b, c], …)`, never a table-qualified form) — the qualifiers on
// left/right were only ever needed to build the join's equality
// predicate, not to tag the surviving columns.
func collapseSharedAttributes(left, right []ra.Attribute, shared []string) []ra.Attribute {
	sharedSet := make(map[string]bool, len(shared))
	for _, s := range shared {
		sharedSet[s] = true
	}
	out := make([]ra.Attribute, 0, len(left)+len(right))
	for _, a := range left {
		out = append(out, ra.Attribute{Name: a.Name})
	}
	for _, a := range right {
		if !sharedSet[a.Name] {
			out = append(out, ra.Attribute{Name: a.Name})
		}
	}
	return out
}

// bareAttributes strips the Qualifier from each attribute, for building
// a Pi's final exposed output list: outputAttributes tags every column
// with its source table so expandWildcard can detect a cross-relation
// name collision (firstDuplicateName) before this point, but the schema
// a Pi exposes afterward is bare names only, matching what the schema
// oracle itself returns (spec §8's wildcard-expansion property).
func bareAttributes(attrs []ra.Attribute) []ra.Attribute {
	out := make([]ra.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = ra.Attribute{Name: a.Name}
	}
	return out
}
