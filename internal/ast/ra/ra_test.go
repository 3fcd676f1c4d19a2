package ra

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chisql/chisql/internal/ast/expr"
)

func TestAttributeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "t.x", Attribute{Qualifier: "t", Name: "x"}.String())
	assert.Equal(t, "x", Attribute{Name: "x"}.String())
}

func TestPiRejectsNothingButStructurallyComparesAttributes(t *testing.T) {
	t.Parallel()
	a := &Pi{Attributes: []Attribute{{Name: "x"}, {Name: "y"}}, Child: &RATable{Name: "t"}}
	b := &Pi{Attributes: []Attribute{{Name: "x"}, {Name: "y"}}, Child: &RATable{Name: "t"}}
	c := &Pi{Attributes: []Attribute{{Name: "y"}, {Name: "x"}}, Child: &RATable{Name: "t"}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "attribute order must be observable")
}

func TestPiString(t *testing.T) {
	t.Parallel()
	p := &Pi{Attributes: []Attribute{{Name: "w"}, {Name: "x"}}, Child: &RATable{Name: "t"}}
	assert.Equal(t, "Pi([w, x], Table(t))", p.String())

	pd := &Pi{Attributes: []Attribute{{Name: "w"}}, Distinct: true, Child: &RATable{Name: "t"}}
	assert.Equal(t, "PiDistinct([w], Table(t))", pd.String())
}

func TestSigmaString(t *testing.T) {
	t.Parallel()
	s := &Sigma{Predicate: &expr.Binary{Op: expr.Gt, Left: &expr.Column{Name: "x"}, Right: &expr.Literal{Kind: expr.Int, Value: "3"}}, Child: &RATable{Name: "t"}}
	assert.Equal(t, "Sigma(Gt(x, 3), Table(t))", s.String())
}

func TestCrossString(t *testing.T) {
	t.Parallel()
	c := &Cross{Left: &RATable{Name: "l"}, Right: &RATable{Name: "r"}}
	assert.Equal(t, "Cross(Table(l), Table(r))", c.String())
}

func TestRhoString(t *testing.T) {
	t.Parallel()
	r := &Rho{
		SourceExpr: &expr.Binary{Op: expr.Add, Left: &expr.Column{Name: "x"}, Right: &expr.Column{Name: "y"}},
		Target:     "z",
		Child:      &RATable{Name: "t"},
	}
	assert.Equal(t, "Rho(Add(x, y), z, Table(t))", r.String())
}

func TestRhoTableString(t *testing.T) {
	t.Parallel()
	r := &RhoTable{Alias: "a", Child: &RATable{Name: "t"}}
	assert.Equal(t, "RhoTable(a, Table(t))", r.String())
}

func TestRASetOpEqual(t *testing.T) {
	t.Parallel()
	a := &RASetOp{Kind: Except, Left: &RATable{Name: "t1"}, Right: &RATable{Name: "t2"}}
	b := &RASetOp{Kind: Except, Left: &RATable{Name: "t1"}, Right: &RATable{Name: "t2"}}
	c := &RASetOp{Kind: Union, Left: &RATable{Name: "t1"}, Right: &RATable{Name: "t2"}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestOuterJoinString(t *testing.T) {
	t.Parallel()
	j := &OuterJoin{Kind: LeftOuter, Left: &RATable{Name: "l"}, Right: &RATable{Name: "r"}, Condition: &expr.Binary{Op: expr.Eq, Left: &expr.Column{Qualifier: "l", Name: "a"}, Right: &expr.Column{Qualifier: "r", Name: "a"}}}
	assert.Equal(t, "OuterJoin(LeftOuter, Table(l), Table(r), Eq(l.a, r.a))", j.String())
}

func TestOuterJoinNoConditionPrintsNone(t *testing.T) {
	t.Parallel()
	j := &OuterJoin{Kind: FullOuter, Left: &RATable{Name: "l"}, Right: &RATable{Name: "r"}}
	assert.Equal(t, "OuterJoin(FullOuter, Table(l), Table(r), none)", j.String())
}

func TestRAOrderByString(t *testing.T) {
	t.Parallel()
	o := &OrderBy{Attribute: Attribute{Name: "a"}, Direction: Desc, Child: &RATable{Name: "t"}}
	assert.Equal(t, "OrderBy(a, Desc, Table(t))", o.String())
}
