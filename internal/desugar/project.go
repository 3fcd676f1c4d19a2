package desugar

import (
	"fmt"
	"hash/fnv"

	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/ra"
	"github.com/chisql/chisql/internal/ast/sra"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/schema"
)

// lowerProject implements the four-step Project pipeline from spec §4.8:
// wildcard expansion (a `*`/`t.*` item becomes the matching attribute
// list), alias lifting (an explicitly aliased or computed item gets a Rho
// beneath the Pi naming it), synthetic alias generation for computed
// items with no explicit alias, and finally the outer Pi over the
// resulting flat attribute list — in source order, since item order is
// the spec's observable output-column-order invariant.
func lowerProject(proj *sra.Project, oracle schema.Oracle) (ra.RA, *diag.Error) {
	if len(proj.GroupBy) > 0 || proj.Having != nil {
		// Spec §9 Open Question (c): aggregates are opaque nodes and
		// GROUP BY/HAVING are carried on Project as annotations only; RA
		// has no grouping operator to lower them onto.
		return nil, diag.NewNoLocus(diag.Unsupported, "GROUP BY/HAVING have no relational-algebra lowering in this front-end")
	}

	childRA, err := Lower(proj.Child, oracle)
	if err != nil {
		return nil, err
	}

	var attrs []ra.Attribute
	for _, item := range proj.Items {
		if col, ok := item.Expr.(*expr.Column); ok && col.IsWildcard() {
			expanded, err := expandWildcard(childRA, col.Qualifier, oracle)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, expanded...)
			continue
		}

		if col, ok := item.Expr.(*expr.Column); ok && item.Alias == "" {
			attrs = append(attrs, ra.Attribute{Qualifier: col.Qualifier, Name: col.Name})
			continue
		}

		target := item.Alias
		if target == "" {
			target = syntheticAlias(item.Expr)
			scope := outputAttributes(childRA, oracle)
			for base, n := target, 1; containsName(scope, target) || containsName(attrs, target); n++ {
				target = fmt.Sprintf("%s_%d", base, n)
			}
		}
		de, err := lowerExpr(item.Expr, oracle)
		if err != nil {
			return nil, err
		}
		childRA = &ra.Rho{SourceExpr: de, Target: target, Child: childRA}
		attrs = append(attrs, ra.Attribute{Name: target})
	}

	return &ra.Pi{Attributes: attrs, Distinct: proj.Distinct, Child: childRA}, nil
}

func expandWildcard(childRA ra.RA, qualifier string, oracle schema.Oracle) ([]ra.Attribute, *diag.Error) {
	all := outputAttributes(childRA, oracle)
	if qualifier == "" {
		if dup, ok := firstDuplicateName(all); ok {
			return nil, diag.NewNoLocus(diag.Ambiguity, "column %q is ambiguous: it is present in more than one in-scope relation", dup)
		}
		return bareAttributes(all), nil
	}
	var out []ra.Attribute
	for _, a := range all {
		if a.Qualifier == qualifier {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, diag.NewNoLocus(diag.Schema, "wildcard %s.* matches no columns in scope", qualifier)
	}
	return bareAttributes(out), nil
}

// firstDuplicateName reports the first column name that occurs under more
// than one distinct qualifier in attrs — a bare `*` expanding such a scope
// would silently collapse two different columns onto one name, which
// spec §4.8/§7 calls out as an Ambiguity error rather than a silent
// choice between them.
func firstDuplicateName(attrs []ra.Attribute) (string, bool) {
	qualifiersByName := make(map[string]map[string]bool)
	for _, a := range attrs {
		if qualifiersByName[a.Name] == nil {
			qualifiersByName[a.Name] = make(map[string]bool)
		}
		qualifiersByName[a.Name][a.Qualifier] = true
	}
	for _, a := range attrs {
		if len(qualifiersByName[a.Name]) > 1 {
			return a.Name, true
		}
	}
	return "", false
}

// syntheticAlias derives a deterministic name for an unaliased computed
// projection item, hashing the expression's canonical text (internal/ast/
// expr.String) rather than a position or a process-global counter so two
// Lower calls over equal input always agree (spec §4.8 determinism).
func syntheticAlias(e expr.Expression) string {
	h := fnv.New32a()
	h.Write([]byte(expr.String(e)))
	return fmt.Sprintf("_col_%08x", h.Sum32())
}
