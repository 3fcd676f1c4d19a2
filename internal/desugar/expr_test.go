package desugar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/sra"
)

func TestLowerExprLiteralAndColumnPassThrough(t *testing.T) {
	t.Parallel()
	lit, err := lowerExpr(&expr.Literal{Kind: expr.Int, Value: "1"}, nil)
	require.Nil(t, err)
	assert.Equal(t, "1", expr.String(lit))

	col, err := lowerExpr(&expr.Column{Name: "a"}, nil)
	require.Nil(t, err)
	assert.Equal(t, "a", expr.String(col))
}

func TestLowerExprUnaryRecurses(t *testing.T) {
	t.Parallel()
	n := &expr.Unary{Op: expr.Not, Inner: &expr.Column{Name: "a"}}
	got, err := lowerExpr(n, nil)
	require.Nil(t, err)
	assert.Equal(t, "Not(a)", expr.String(got))
}

func TestLowerExprAggregateRecurses(t *testing.T) {
	t.Parallel()
	n := &expr.Aggregate{Func: expr.Count, Inner: &expr.Column{Name: "a"}}
	got, err := lowerExpr(n, nil)
	require.Nil(t, err)
	assert.Equal(t, "COUNT(a)", expr.String(got))
}

func TestLowerExprBinaryErrorPropagatesFromSubquery(t *testing.T) {
	t.Parallel()
	oracle := staticOracle(map[string][]string{"t": {"a"}})
	n := &expr.Binary{
		Op:   expr.Eq,
		Left: &expr.Column{Name: "a"},
		Right: &expr.InSubquery{
			Expr:  &expr.Column{Name: "a"},
			Query: &sra.Table{Name: "missing"},
		},
	}
	_, err := lowerExpr(n, oracle)
	require.NotNil(t, err)
}
