package desugar

import (
	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/ra"
	"github.com/chisql/chisql/internal/ast/sra"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/schema"
)

func lowerJoin(j *sra.Join, oracle schema.Oracle) (ra.RA, *diag.Error) {
	left, err := Lower(j.Left, oracle)
	if err != nil {
		return nil, err
	}
	right, err := Lower(j.Right, oracle)
	if err != nil {
		return nil, err
	}

	switch j.Kind {
	case sra.Cross:
		return &ra.Cross{Left: left, Right: right}, nil

	case sra.Inner:
		switch {
		case j.Condition != nil:
			cond, err := lowerExpr(j.Condition, oracle)
			if err != nil {
				return nil, err
			}
			return &ra.Sigma{Predicate: cond, Child: &ra.Cross{Left: left, Right: right}}, nil
		case j.UsingColumns != nil:
			return lowerUsingJoin(left, right, j.UsingColumns, oracle)
		default:
			return &ra.Cross{Left: left, Right: right}, nil
		}

	case sra.Natural:
		return lowerNaturalJoin(left, right, oracle)

	case sra.LeftOuter, sra.RightOuter, sra.FullOuter:
		return lowerOuterJoin(j, left, right, oracle)

	default:
		return nil, diag.NewNoLocus(diag.Internal, "desugar: unhandled join kind %v", j.Kind)
	}
}

func lowerOuterJoin(j *sra.Join, left, right ra.RA, oracle schema.Oracle) (ra.RA, *diag.Error) {
	var cond expr.Expression
	switch {
	case j.Condition != nil:
		c, err := lowerExpr(j.Condition, oracle)
		if err != nil {
			return nil, err
		}
		cond = c
	case j.UsingColumns != nil:
		leftAttrs := outputAttributes(left, oracle)
		rightAttrs := outputAttributes(right, oracle)
		c, err := equalityConjunction(leftAttrs, rightAttrs, j.UsingColumns)
		if err != nil {
			return nil, err
		}
		cond = c
	}
	return &ra.OuterJoin{Kind: lowerOuterKind(j.Kind), Left: left, Right: right, Condition: cond}, nil
}

func lowerOuterKind(k sra.JoinKind) ra.OuterJoinKind {
	switch k {
	case sra.RightOuter:
		return ra.RightOuter
	case sra.FullOuter:
		return ra.FullOuter
	default:
		return ra.LeftOuter
	}
}

// lowerNaturalJoin implements the plain inner-join reading of NATURAL
// JOIN: equate every identically-named column on both sides, then
// collapse the duplicates (spec §4.8). A natural join with no shared
// columns at all degenerates to a plain cross product.
func lowerNaturalJoin(left, right ra.RA, oracle schema.Oracle) (ra.RA, *diag.Error) {
	leftAttrs := outputAttributes(left, oracle)
	rightAttrs := outputAttributes(right, oracle)
	shared := sharedNames(leftAttrs, rightAttrs)
	if len(shared) == 0 {
		return &ra.Cross{Left: left, Right: right}, nil
	}
	return joinOnSharedColumns(left, right, leftAttrs, rightAttrs, shared)
}

// lowerUsingJoin implements spec §9 Open Question (b): USING(col_list) is
// a natural join restricted to the named columns rather than every
// identically-named column.
func lowerUsingJoin(left, right ra.RA, cols []string, oracle schema.Oracle) (ra.RA, *diag.Error) {
	leftAttrs := outputAttributes(left, oracle)
	rightAttrs := outputAttributes(right, oracle)
	for _, c := range cols {
		if !containsName(leftAttrs, c) || !containsName(rightAttrs, c) {
			return nil, diag.NewNoLocus(diag.Schema, "USING column %q is not present on both sides of the join", c)
		}
	}
	return joinOnSharedColumns(left, right, leftAttrs, rightAttrs, cols)
}

func joinOnSharedColumns(left, right ra.RA, leftAttrs, rightAttrs []ra.Attribute, cols []string) (ra.RA, *diag.Error) {
	cond, err := equalityConjunction(leftAttrs, rightAttrs, cols)
	if err != nil {
		return nil, err
	}
	sigma := &ra.Sigma{Predicate: cond, Child: &ra.Cross{Left: left, Right: right}}
	attrs := collapseSharedAttributes(leftAttrs, rightAttrs, cols)
	return &ra.Pi{Attributes: attrs, Child: sigma}, nil
}

// equalityConjunction builds `l.c1 = r.c1 AND l.c2 = r.c2 AND ...` for the
// given column names, left-folded in the order cols lists them.
func equalityConjunction(leftAttrs, rightAttrs []ra.Attribute, cols []string) (expr.Expression, *diag.Error) {
	if len(cols) == 0 {
		return nil, diag.NewNoLocus(diag.Internal, "desugar: equality conjunction over zero columns")
	}
	var result expr.Expression
	for _, c := range cols {
		eq := &expr.Binary{
			Op:   expr.Eq,
			Left: &expr.Column{Qualifier: qualifierForName(leftAttrs, c), Name: c},
			Right: &expr.Column{Qualifier: qualifierForName(rightAttrs, c), Name: c},
		}
		if result == nil {
			result = eq
		} else {
			result = &expr.Binary{Op: expr.And, Left: result, Right: eq}
		}
	}
	return result, nil
}
