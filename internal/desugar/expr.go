package desugar

import (
	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/ra"
	"github.com/chisql/chisql/internal/ast/sra"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/schema"
)

// raSubquery adapts a lowered RA tree to expr.SRANode so a lowered
// InSubquery can still hold its (now-RA) query: expr.SRANode and ra.RA
// are deliberately different interfaces (ra.RA's Equal takes a ra.RA, not
// an expr.SRANode) so that neither package needs to import the other;
// this tiny wrapper is the one place the two meet.
type raSubquery struct {
	RA ra.RA
}

func (r raSubquery) Equal(o expr.SRANode) bool {
	other, ok := o.(raSubquery)
	return ok && r.RA.Equal(other.RA)
}

func (r raSubquery) String() string { return r.RA.String() }

// lowerExpr recursively lowers an expression, the only nontrivial case
// being InSubquery, whose embedded query is itself an SRA tree needing
// the same treatment as the statement containing it (spec §4.8).
func lowerExpr(e expr.Expression, oracle schema.Oracle) (expr.Expression, *diag.Error) {
	switch n := e.(type) {
	case *expr.Literal:
		return n, nil
	case *expr.Column:
		return n, nil
	case *expr.Binary:
		left, err := lowerExpr(n.Left, oracle)
		if err != nil {
			return nil, err
		}
		right, err := lowerExpr(n.Right, oracle)
		if err != nil {
			return nil, err
		}
		return &expr.Binary{Op: n.Op, Left: left, Right: right}, nil
	case *expr.Unary:
		inner, err := lowerExpr(n.Inner, oracle)
		if err != nil {
			return nil, err
		}
		return &expr.Unary{Op: n.Op, Inner: inner}, nil
	case *expr.Aggregate:
		inner, err := lowerExpr(n.Inner, oracle)
		if err != nil {
			return nil, err
		}
		return &expr.Aggregate{Func: n.Func, Inner: inner}, nil
	case *expr.InSubquery:
		return lowerInSubquery(n, oracle)
	default:
		return nil, diag.NewNoLocus(diag.Internal, "desugar: unhandled expression node %T", e)
	}
}

func lowerInSubquery(n *expr.InSubquery, oracle schema.Oracle) (expr.Expression, *diag.Error) {
	inner, err := lowerExpr(n.Expr, oracle)
	if err != nil {
		return nil, err
	}
	subSRA, ok := n.Query.(sra.SRA)
	if !ok {
		return nil, diag.NewNoLocus(diag.Internal, "desugar: in-subquery does not hold an SRA node")
	}
	loweredRA, err := Lower(subSRA, oracle)
	if err != nil {
		return nil, err
	}
	return &expr.InSubquery{Expr: inner, Query: raSubquery{RA: loweredRA}}, nil
}
