// Package desugar implements the SRA -> RA lowering (spec §4.8): the
// single function a caller needs, Lower, walks a Sugared Relational
// Algebra tree built by internal/parser and produces the minimal
// Relational Algebra tree the Open Questions in spec §9 resolve the
// shape of (OuterJoin for outer joins, USING treated as a
// column-restricted natural join, GROUP BY/HAVING left unlowered).
//
// Lowering is deterministic: the same SRA tree plus the same schema
// oracle always produces a structurally equal RA tree, including
// synthesized alias names — those are derived from a hash of the aliased
// expression's canonical text, never from a process-global counter, so
// two separate Lower calls over equal input never diverge (spec §4.8).
package desugar

import (
	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/ra"
	"github.com/chisql/chisql/internal/ast/sra"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/schema"
)

// Lower lowers an SRA tree to RA against oracle.
func Lower(n sra.SRA, oracle schema.Oracle) (ra.RA, *diag.Error) {
	switch t := n.(type) {
	case *sra.Table:
		return lowerTable(t, oracle)
	case *sra.Select:
		return lowerSelect(t, oracle)
	case *sra.Join:
		return lowerJoin(t, oracle)
	case *sra.Project:
		return lowerProject(t, oracle)
	case *sra.OrderBy:
		return lowerOrderBy(t, oracle)
	case *sra.SetOp:
		return lowerSetOp(t, oracle)
	case *sra.Limit:
		// Non-goals scope out LIMIT/OFFSET evaluation semantics. The
		// grammar accepts them and sra.Limit records them, but RA has no
		// operator to lower them onto, so the wrapper is simply dropped.
		return Lower(t.Child, oracle)
	default:
		return nil, diag.NewNoLocus(diag.Internal, "desugar: unhandled SRA node %T", n)
	}
}

func lowerTable(t *sra.Table, oracle schema.Oracle) (ra.RA, *diag.Error) {
	if !oracle.Exists(t.Name) {
		return nil, schema.UnknownTableError(oracle, t.Name)
	}
	var base ra.RA = &ra.RATable{Name: t.Name}
	if t.Alias != "" {
		return &ra.RhoTable{Alias: t.Alias, Child: base}, nil
	}
	return base, nil
}

func lowerSelect(s *sra.Select, oracle schema.Oracle) (ra.RA, *diag.Error) {
	childRA, err := Lower(s.Child, oracle)
	if err != nil {
		return nil, err
	}
	pred, err := lowerExpr(s.Predicate, oracle)
	if err != nil {
		return nil, err
	}
	return &ra.Sigma{Predicate: pred, Child: childRA}, nil
}

func lowerOrderBy(ob *sra.OrderBy, oracle schema.Oracle) (ra.RA, *diag.Error) {
	childRA, err := Lower(ob.Child, oracle)
	if err != nil {
		return nil, err
	}
	col, ok := ob.Column.(*expr.Column)
	if !ok {
		return nil, diag.NewNoLocus(diag.Unsupported, "ORDER BY a computed expression is not supported; order by a plain column instead")
	}
	dir := ra.Asc
	if ob.Direction == sra.Desc {
		dir = ra.Desc
	}
	return &ra.OrderBy{Attribute: ra.Attribute{Qualifier: col.Qualifier, Name: col.Name}, Direction: dir, Child: childRA}, nil
}

func lowerSetOp(s *sra.SetOp, oracle schema.Oracle) (ra.RA, *diag.Error) {
	left, err := Lower(s.Left, oracle)
	if err != nil {
		return nil, err
	}
	right, err := Lower(s.Right, oracle)
	if err != nil {
		return nil, err
	}
	return &ra.RASetOp{Kind: lowerSetOpKind(s.Kind), Left: left, Right: right}, nil
}

func lowerSetOpKind(k sra.SetOpKind) ra.SetOpKind {
	switch k {
	case sra.Intersect:
		return ra.Intersect
	case sra.Except:
		return ra.Except
	default:
		return ra.Union
	}
}
