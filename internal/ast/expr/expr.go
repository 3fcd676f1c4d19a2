// Package expr implements the expression sub-language shared by queries
// and DDL/DML: arithmetic, comparisons, logical connectives, aggregates,
// qualified column references, and literals (spec §3/§4.1).
//
// Expression is a sealed interface: every concrete variant carries an
// unexported marker method, so an exhaustive type switch is the only way
// to consume one and adding a new variant forces a compile-time review of
// every consumer (spec §9) — the same discipline the pack's queryir
// reference file documents for its own Query/Predicate sum types.
package expr

import "fmt"

// Expression is the sealed sum type for the expression sub-language.
type Expression interface {
	exprNode()
	// Equal reports structural equality: equal variant, equal children,
	// literal equality modulo numeric kind (spec §4.1).
	Equal(Expression) bool
}

// LiteralKind distinguishes the four literal kinds named in spec §3. An
// Int literal is never Equal to a Double literal of the same value.
type LiteralKind int

const (
	Int LiteralKind = iota
	Double
	StringKind
	Null
)

func (k LiteralKind) String() string {
	switch k {
	case Int:
		return "int"
	case Double:
		return "double"
	case StringKind:
		return "string"
	case Null:
		return "null"
	default:
		return "unknown"
	}
}

// Literal is a literal value of one of the four kinds.
type Literal struct {
	Kind  LiteralKind
	Value string // textual representation; Null ignores Value
}

func (l *Literal) exprNode() {}

func (l *Literal) Equal(o Expression) bool {
	ol, ok := o.(*Literal)
	if !ok {
		return false
	}
	if l.Kind != ol.Kind {
		return false
	}
	if l.Kind == Null {
		return true
	}
	return l.Value == ol.Value
}

// WildcardName is the sentinel Column.Name for a `*` or `t.*` reference.
const WildcardName = "*"

// Column is a (possibly qualified) column reference, or a wildcard when
// Name == WildcardName. Qualifier is the table name or alias it was
// written against; empty means unqualified.
type Column struct {
	Qualifier string
	Name      string
}

func (c *Column) exprNode() {}

func (c *Column) Equal(o Expression) bool {
	oc, ok := o.(*Column)
	if !ok {
		return false
	}
	return c.Qualifier == oc.Qualifier && c.Name == oc.Name
}

// IsWildcard reports whether this Column is `*` or `t.*`.
func (c *Column) IsWildcard() bool { return c.Name == WildcardName }

// BinaryOp enumerates the binary operators from spec §3.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Eq
	Lt
	Gt
	Le
	Ge
	Ne
	And
	Or
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Eq:
		return "="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Le:
		return "<="
	case Ge:
		return ">="
	case Ne:
		return "<>"
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return "?"
	}
}

// Binary is a binary operator expression.
type Binary struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (b *Binary) exprNode() {}

func (b *Binary) Equal(o Expression) bool {
	ob, ok := o.(*Binary)
	if !ok {
		return false
	}
	return b.Op == ob.Op && b.Left.Equal(ob.Left) && b.Right.Equal(ob.Right)
}

// UnaryOp enumerates the unary operators from spec §3.
type UnaryOp int

const (
	Negate UnaryOp = iota
	Not
)

func (op UnaryOp) String() string {
	if op == Negate {
		return "-"
	}
	return "NOT"
}

// Unary is a unary operator expression.
type Unary struct {
	Op    UnaryOp
	Inner Expression
}

func (u *Unary) exprNode() {}

func (u *Unary) Equal(o Expression) bool {
	ou, ok := o.(*Unary)
	if !ok {
		return false
	}
	return u.Op == ou.Op && u.Inner.Equal(ou.Inner)
}

// SRANode is the minimal interface Query needs from an embedded SRA tree,
// kept here (rather than importing package sra) to avoid an import cycle
// — sra imports expr for its predicates, so expr cannot import sra back.
// internal/ast/sra.SRA satisfies this interface.
type SRANode interface {
	Equal(SRANode) bool
	String() string
}

// InSubquery is `expr IN (subquery)`.
type InSubquery struct {
	Expr  Expression
	Query SRANode
}

func (s *InSubquery) exprNode() {}

func (s *InSubquery) Equal(o Expression) bool {
	os, ok := o.(*InSubquery)
	if !ok {
		return false
	}
	return s.Expr.Equal(os.Expr) && s.Query.Equal(os.Query)
}

// AggregateFunc enumerates the aggregate functions from spec §3.
type AggregateFunc int

const (
	Count AggregateFunc = iota
	Sum
	Avg
	Min
	Max
)

func (f AggregateFunc) String() string {
	switch f {
	case Count:
		return "COUNT"
	case Sum:
		return "SUM"
	case Avg:
		return "AVG"
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	default:
		return "?"
	}
}

// Aggregate is an aggregate function applied to an inner expression.
// Aggregates never nest (spec §3 invariant) — this is enforced by the
// parser, which refuses to parse an Aggregate as the Inner of another.
type Aggregate struct {
	Func  AggregateFunc
	Inner Expression
}

func (a *Aggregate) exprNode() {}

func (a *Aggregate) Equal(o Expression) bool {
	oa, ok := o.(*Aggregate)
	if !ok {
		return false
	}
	return a.Func == oa.Func && a.Inner.Equal(oa.Inner)
}

// binaryOpName gives each BinaryOp the prefix-form identifier spec §6's
// worked examples print (`Add(x, y)`, `Eq(a, b)`), distinct from the
// operator's own infix symbol (BinaryOp.String, used by the parser's
// precedence tables and diagnostics).
func binaryOpName(op BinaryOp) string {
	switch op {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Eq:
		return "Eq"
	case Lt:
		return "Lt"
	case Gt:
		return "Gt"
	case Le:
		return "Le"
	case Ge:
		return "Ge"
	case Ne:
		return "Ne"
	case And:
		return "And"
	case Or:
		return "Or"
	default:
		return "?"
	}
}

// unaryOpName is binaryOpName's counterpart for UnaryOp.
func unaryOpName(op UnaryOp) string {
	if op == Negate {
		return "Neg"
	}
	return "Not"
}

// String renders an expression using the deterministic, fully
// parenthesized prefix notation spec §6 requires: every operator prints
// as its name followed by a parenthesized argument list (`Add(x, y)`,
// `Not(a)`), never as an infix symbol. Kept here as a debug/Stringer
// convenience; internal/printer is the canonical, tested printer.
func String(e Expression) string {
	switch n := e.(type) {
	case *Literal:
		if n.Kind == Null {
			return "NULL"
		}
		if n.Kind == StringKind {
			return fmt.Sprintf("'%s'", n.Value)
		}
		return n.Value
	case *Column:
		if n.Qualifier != "" {
			return n.Qualifier + "." + n.Name
		}
		return n.Name
	case *Binary:
		return fmt.Sprintf("%s(%s, %s)", binaryOpName(n.Op), String(n.Left), String(n.Right))
	case *Unary:
		return fmt.Sprintf("%s(%s)", unaryOpName(n.Op), String(n.Inner))
	case *InSubquery:
		return fmt.Sprintf("In(%s, %s)", String(n.Expr), n.Query.String())
	case *Aggregate:
		return fmt.Sprintf("%s(%s)", n.Func, String(n.Inner))
	default:
		return "?"
	}
}
