package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *Literal
		b    *Literal
		want bool
	}{
		{"same int", &Literal{Kind: Int, Value: "3"}, &Literal{Kind: Int, Value: "3"}, true},
		{"int vs double same text", &Literal{Kind: Int, Value: "3"}, &Literal{Kind: Double, Value: "3"}, false},
		{"different value", &Literal{Kind: Int, Value: "3"}, &Literal{Kind: Int, Value: "4"}, false},
		{"null ignores value", &Literal{Kind: Null, Value: ""}, &Literal{Kind: Null, Value: "anything"}, true},
		{"string equal", &Literal{Kind: StringKind, Value: "hi"}, &Literal{Kind: StringKind, Value: "hi"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestLiteralEqualRejectsOtherVariant(t *testing.T) {
	t.Parallel()
	lit := &Literal{Kind: Int, Value: "1"}
	col := &Column{Name: "x"}
	assert.False(t, lit.Equal(col))
}

func TestColumnWildcard(t *testing.T) {
	t.Parallel()

	bare := &Column{Name: WildcardName}
	qualified := &Column{Qualifier: "t", Name: WildcardName}
	plain := &Column{Name: "x"}

	assert.True(t, bare.IsWildcard())
	assert.True(t, qualified.IsWildcard())
	assert.False(t, plain.IsWildcard())
}

func TestColumnEqual(t *testing.T) {
	t.Parallel()
	a := &Column{Qualifier: "t", Name: "x"}
	b := &Column{Qualifier: "t", Name: "x"}
	c := &Column{Qualifier: "u", Name: "x"}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBinaryEqual(t *testing.T) {
	t.Parallel()
	left := &Column{Name: "x"}
	right := &Literal{Kind: Int, Value: "1"}
	a := &Binary{Op: Add, Left: left, Right: right}
	b := &Binary{Op: Add, Left: &Column{Name: "x"}, Right: &Literal{Kind: Int, Value: "1"}}
	c := &Binary{Op: Sub, Left: left, Right: right}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestUnaryEqual(t *testing.T) {
	t.Parallel()
	a := &Unary{Op: Negate, Inner: &Column{Name: "x"}}
	b := &Unary{Op: Negate, Inner: &Column{Name: "x"}}
	c := &Unary{Op: Not, Inner: &Column{Name: "x"}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestAggregateEqual(t *testing.T) {
	t.Parallel()
	a := &Aggregate{Func: Count, Inner: &Column{Name: WildcardName}}
	b := &Aggregate{Func: Count, Inner: &Column{Name: WildcardName}}
	c := &Aggregate{Func: Sum, Inner: &Column{Name: WildcardName}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// fakeSRA is the minimal SRANode double for testing InSubquery without
// importing package sra (which would create an import cycle in this
// package's tests, just as it would in the production code).
type fakeSRA struct{ text string }

func (f fakeSRA) Equal(o SRANode) bool {
	other, ok := o.(fakeSRA)
	return ok && f.text == other.text
}
func (f fakeSRA) String() string { return f.text }

func TestInSubqueryEqual(t *testing.T) {
	t.Parallel()
	a := &InSubquery{Expr: &Column{Name: "x"}, Query: fakeSRA{"Table(t)"}}
	b := &InSubquery{Expr: &Column{Name: "x"}, Query: fakeSRA{"Table(t)"}}
	c := &InSubquery{Expr: &Column{Name: "x"}, Query: fakeSRA{"Table(u)"}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestStringRoundTripShape(t *testing.T) {
	t.Parallel()

	e := &Binary{
		Op:   Add,
		Left: &Column{Name: "x"},
		Right: &Aggregate{
			Func:  Sum,
			Inner: &Unary{Op: Negate, Inner: &Literal{Kind: Int, Value: "2"}},
		},
	}
	require.Equal(t, "Add(x, SUM(Neg(2)))", String(e))
}

func TestStringLiteralKinds(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "NULL", String(&Literal{Kind: Null}))
	assert.Equal(t, "'hi'", String(&Literal{Kind: StringKind, Value: "hi"}))
	assert.Equal(t, "3.5", String(&Literal{Kind: Double, Value: "3.5"}))
}

func TestStringQualifiedColumn(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "t.x", String(&Column{Qualifier: "t", Name: "x"}))
	assert.Equal(t, "x", String(&Column{Name: "x"}))
}

func TestLiteralKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "double", Double.String())
	assert.Equal(t, "string", StringKind.String())
	assert.Equal(t, "null", Null.String())
}
