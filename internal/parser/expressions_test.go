package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/token"
)

func parseExprString(t *testing.T, src string) expr.Expression {
	t.Helper()
	toks, err := token.Tokenize(src)
	require.Nil(t, err)
	p := &parser{toks: toks}
	e, perr := p.parseExpression()
	require.Nil(t, perr)
	require.True(t, p.atEOF())
	return e
}

func TestArithmeticPrecedence(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "1 + 2 * 3")
	assert.Equal(t, "Add(1, Mul(2, 3))", expr.String(e))
}

func TestArithmeticLeftAssociative(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "1 - 2 - 3")
	assert.Equal(t, "Sub(Sub(1, 2), 3)", expr.String(e))
}

func TestUnaryMinusBindsTighterThanBinary(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "-1 + 2")
	assert.Equal(t, "Add(Neg(1), 2)", expr.String(e))
}

func TestComparisonsDoNotChain(t *testing.T) {
	t.Parallel()
	toks, err := token.Tokenize("a = b = c")
	require.Nil(t, err)
	p := &parser{toks: toks}
	_, perr := p.parseExpression()
	require.NotNil(t, perr, "chained comparisons must be a syntax error")
}

func TestNotBindsTighterThanAnd(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "NOT a AND b")
	assert.Equal(t, "And(Not(a), b)", expr.String(e))
}

func TestAndBindsTighterThanOr(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "a OR b AND c")
	assert.Equal(t, "Or(a, And(b, c))", expr.String(e))
}

func TestLogicalBinariesLeftAssociative(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "a AND b AND c")
	assert.Equal(t, "And(And(a, b), c)", expr.String(e))
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "(1 + 2) * 3")
	assert.Equal(t, "Mul(Add(1, 2), 3)", expr.String(e))
}

func TestQualifiedColumnReference(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "t.x")
	col, ok := e.(*expr.Column)
	require.True(t, ok)
	assert.Equal(t, "t", col.Qualifier)
	assert.Equal(t, "x", col.Name)
}

func TestLiteralKindsByText(t *testing.T) {
	t.Parallel()

	intLit := parseExprString(t, "3").(*expr.Literal)
	assert.Equal(t, expr.Int, intLit.Kind)

	dblLit := parseExprString(t, "3.5").(*expr.Literal)
	assert.Equal(t, expr.Double, dblLit.Kind)

	strLit := parseExprString(t, "'hi'").(*expr.Literal)
	assert.Equal(t, expr.StringKind, strLit.Kind)
	assert.Equal(t, "hi", strLit.Value)

	nullLit := parseExprString(t, "NULL").(*expr.Literal)
	assert.Equal(t, expr.Null, nullLit.Kind)
}

func TestAggregateFunctions(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "COUNT(*)")
	agg, ok := e.(*expr.Aggregate)
	require.True(t, ok)
	assert.Equal(t, expr.Count, agg.Func)
	col, ok := agg.Inner.(*expr.Column)
	require.True(t, ok)
	assert.True(t, col.IsWildcard())
}

func TestAggregateDoesNotNest(t *testing.T) {
	t.Parallel()
	toks, err := token.Tokenize("SUM(COUNT(x))")
	require.Nil(t, err)
	p := &parser{toks: toks}
	_, perr := p.parseExpression()
	require.NotNil(t, perr)
}

func TestAggregateDoesNotNestWhenBuried(t *testing.T) {
	t.Parallel()
	toks, err := token.Tokenize("SUM(1 + COUNT(x))")
	require.Nil(t, err)
	p := &parser{toks: toks}
	_, perr := p.parseExpression()
	require.NotNil(t, perr, "an aggregate nested anywhere inside another aggregate's argument is rejected")
}

func TestInSubquery(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "x IN (SELECT a FROM t)")
	sub, ok := e.(*expr.InSubquery)
	require.True(t, ok)
	col, ok := sub.Expr.(*expr.Column)
	require.True(t, ok)
	assert.Equal(t, "x", col.Name)
}

func TestNotInSubquery(t *testing.T) {
	t.Parallel()
	e := parseExprString(t, "x NOT IN (SELECT a FROM t)")
	un, ok := e.(*expr.Unary)
	require.True(t, ok)
	assert.Equal(t, expr.Not, un.Op)
	_, ok = un.Inner.(*expr.InSubquery)
	assert.True(t, ok)
}
