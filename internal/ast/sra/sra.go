// Package sra implements Sugared Relational Algebra: the surface-level
// query tree that mirrors SQL's conveniences — multi-way joins by kind,
// wildcard projections, inline aliases, qualified column references
// (spec §3/§4.2). internal/desugar lowers an SRA tree to RA.
package sra

import (
	"fmt"
	"strings"

	"github.com/chisql/chisql/internal/ast/expr"
)

// SRA is the sealed sum type for sugared queries.
type SRA interface {
	sraNode()
	Equal(expr.SRANode) bool
	String() string
}

// Table is a leaf naming a base table, optionally given a local alias.
type Table struct {
	Name  string
	Alias string // empty if no alias
}

func (t *Table) sraNode() {}

func (t *Table) Equal(o expr.SRANode) bool {
	ot, ok := o.(*Table)
	if !ok {
		return false
	}
	return t.Name == ot.Name && t.Alias == ot.Alias
}

func (t *Table) String() string {
	if t.Alias != "" {
		return fmt.Sprintf("Table(%s, %s)", t.Name, t.Alias)
	}
	return fmt.Sprintf("Table(%s)", t.Name)
}

// ProjectItem is one entry of a Project's item list: either the bare
// wildcard, a qualified wildcard `t.*`, or an (expr, alias?) pair.
type ProjectItem struct {
	Expr  expr.Expression // a *expr.Column with IsWildcard()==true for `*`/`t.*`
	Alias string          // empty if the item carries no user alias
}

// Project carries an ordered item list whose order determines output
// column order (spec §4.2 — observable).
type Project struct {
	Items    []ProjectItem
	Distinct bool
	// GroupBy/Having are preserved as annotations only; no RA lowering
	// exists for them (spec §4.4). Both may be nil.
	GroupBy []expr.Expression
	Having  expr.Expression
	Child   SRA
}

func (p *Project) sraNode() {}

func (p *Project) Equal(o expr.SRANode) bool {
	op, ok := o.(*Project)
	if !ok {
		return false
	}
	if p.Distinct != op.Distinct || len(p.Items) != len(op.Items) {
		return false
	}
	for i := range p.Items {
		if p.Items[i].Alias != op.Items[i].Alias {
			return false
		}
		if !p.Items[i].Expr.Equal(op.Items[i].Expr) {
			return false
		}
	}
	if !equalExprList(p.GroupBy, op.GroupBy) {
		return false
	}
	if (p.Having == nil) != (op.Having == nil) {
		return false
	}
	if p.Having != nil && !p.Having.Equal(op.Having) {
		return false
	}
	return p.Child.Equal(op.Child)
}

func (p *Project) String() string {
	parts := make([]string, len(p.Items))
	for i, it := range p.Items {
		if it.Alias != "" {
			parts[i] = fmt.Sprintf("(%s, %s)", expr.String(it.Expr), it.Alias)
		} else {
			parts[i] = expr.String(it.Expr)
		}
	}
	prefix := "Project"
	if p.Distinct {
		prefix = "ProjectDistinct"
	}
	return fmt.Sprintf("%s([%s], %s)", prefix, strings.Join(parts, ", "), p.Child.String())
}

// Select is relational selection (WHERE).
type Select struct {
	Predicate expr.Expression
	Child     SRA
}

func (s *Select) sraNode() {}

func (s *Select) Equal(o expr.SRANode) bool {
	os, ok := o.(*Select)
	if !ok {
		return false
	}
	return s.Predicate.Equal(os.Predicate) && s.Child.Equal(os.Child)
}

func (s *Select) String() string {
	return fmt.Sprintf("Select(%s, %s)", expr.String(s.Predicate), s.Child.String())
}

// JoinKind enumerates the join kinds from spec §3.
type JoinKind int

const (
	Inner JoinKind = iota
	Cross
	LeftOuter
	RightOuter
	FullOuter
	Natural
)

func (k JoinKind) String() string {
	switch k {
	case Inner:
		return "Inner"
	case Cross:
		return "Cross"
	case LeftOuter:
		return "LeftOuter"
	case RightOuter:
		return "RightOuter"
	case FullOuter:
		return "FullOuter"
	case Natural:
		return "Natural"
	default:
		return "?"
	}
}

// Join preserves operand order (swapping Left/Right changes meaning for
// outer joins, spec §4.2). Condition is nil for cross/natural joins and
// for USING-joins it is represented via UsingColumns instead.
type Join struct {
	Kind         JoinKind
	Left         SRA
	Right        SRA
	Condition    expr.Expression // nil if none supplied
	UsingColumns []string        // non-nil only for `JOIN ... USING (...)`
}

func (j *Join) sraNode() {}

func (j *Join) Equal(o expr.SRANode) bool {
	oj, ok := o.(*Join)
	if !ok {
		return false
	}
	if j.Kind != oj.Kind || !j.Left.Equal(oj.Left) || !j.Right.Equal(oj.Right) {
		return false
	}
	if (j.Condition == nil) != (oj.Condition == nil) {
		return false
	}
	if j.Condition != nil && !j.Condition.Equal(oj.Condition) {
		return false
	}
	return stringsEqual(j.UsingColumns, oj.UsingColumns)
}

func (j *Join) String() string {
	cond := "none"
	if j.Condition != nil {
		cond = expr.String(j.Condition)
	} else if j.UsingColumns != nil {
		cond = fmt.Sprintf("Using([%s])", strings.Join(j.UsingColumns, ", "))
	}
	return fmt.Sprintf("Join(%s, %s, %s, %s)", j.Kind, j.Left.String(), j.Right.String(), cond)
}

// Direction enumerates ORDER BY directions.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "Desc"
	}
	return "Asc"
}

// OrderBy wraps any SRA node; multiple orderings chain OrderBy nodes with
// the outermost being primary (spec §4.2).
type OrderBy struct {
	Column    expr.Expression
	Direction Direction
	Child     SRA
}

func (ob *OrderBy) sraNode() {}

func (ob *OrderBy) Equal(o expr.SRANode) bool {
	oob, ok := o.(*OrderBy)
	if !ok {
		return false
	}
	return ob.Direction == oob.Direction && ob.Column.Equal(oob.Column) && ob.Child.Equal(oob.Child)
}

func (ob *OrderBy) String() string {
	return fmt.Sprintf("OrderBy(%s, %s, %s)", expr.String(ob.Column), ob.Direction, ob.Child.String())
}

// SetOpKind enumerates UNION/INTERSECT/EXCEPT.
type SetOpKind int

const (
	Union SetOpKind = iota
	Intersect
	Except
)

func (k SetOpKind) String() string {
	switch k {
	case Union:
		return "Union"
	case Intersect:
		return "Intersect"
	case Except:
		return "Except"
	default:
		return "?"
	}
}

// SetOp combines two queries.
type SetOp struct {
	Kind  SetOpKind
	Left  SRA
	Right SRA
}

func (s *SetOp) sraNode() {}

func (s *SetOp) Equal(o expr.SRANode) bool {
	os, ok := o.(*SetOp)
	if !ok {
		return false
	}
	return s.Kind == os.Kind && s.Left.Equal(os.Left) && s.Right.Equal(os.Right)
}

func (s *SetOp) String() string {
	return fmt.Sprintf("SetOp(%s, %s, %s)", s.Kind, s.Left.String(), s.Right.String())
}

// Limit carries LIMIT/OFFSET. Spec §3 does not enumerate a Limit SRA
// variant, but §4.4 requires the grammar to accept LIMIT/OFFSET and the
// IR to record them (Non-goals scope out their evaluation semantics, not
// their presence in the tree) — this is the minimal wrapper that records
// them, the same shape as OrderBy.
type Limit struct {
	Count     int
	HasOffset bool
	Offset    int
	Child     SRA
}

func (l *Limit) sraNode() {}

func (l *Limit) Equal(o expr.SRANode) bool {
	ol, ok := o.(*Limit)
	if !ok {
		return false
	}
	return l.Count == ol.Count && l.HasOffset == ol.HasOffset && l.Offset == ol.Offset && l.Child.Equal(ol.Child)
}

func (l *Limit) String() string {
	if l.HasOffset {
		return fmt.Sprintf("Limit(%d, %d, %s)", l.Count, l.Offset, l.Child.String())
	}
	return fmt.Sprintf("Limit(%d, %s)", l.Count, l.Child.String())
}

func equalExprList(a, b []expr.Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
