// Package stmt implements the top-level statement sum type (spec §3):
// Query wraps an SRA tree; CreateTable, Insert, and Delete are the
// non-query DDL/DML statements (spec §4.5). A program is an ordered list
// of Statement.
package stmt

import (
	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/sra"
)

// Statement is the sealed top-level sum type.
type Statement interface {
	stmtNode()
}

// Query is a SELECT statement.
type Query struct {
	SRA sra.SRA
}

func (q *Query) stmtNode() {}

// ConstraintKind enumerates the per-column constraint kinds from spec §3.
type ConstraintKind int

const (
	NotNull ConstraintKind = iota
	Unique
	PrimaryKey
	ForeignKey
	Default
	AutoIncrement
	Check
)

// Constraint is one per-column constraint. Fields beyond Kind are
// populated only for the constraint kinds that need them: ForeignKey
// uses RefTable/RefColumn, Default uses DefaultValue, Check uses
// CheckExpr. Constraints are collected per column in source order (spec
// §4.5) — ordering is preserved but not semantically significant to the
// front-end.
type Constraint struct {
	Kind         ConstraintKind
	RefTable     string          // ForeignKey
	RefColumn    string          // ForeignKey; empty if no target column given
	DefaultValue *expr.Literal   // Default
	CheckExpr    expr.Expression // Check
}

// ColumnDecl is one column declaration within CREATE TABLE.
type ColumnDecl struct {
	Name        string
	Type        string
	Size        *int // e.g. the 64 in VARCHAR(64); nil if the type has no size
	Constraints []Constraint
}

// TableKeyKind enumerates table-level key declaration kinds.
type TableKeyKind int

const (
	TablePrimaryKey TableKeyKind = iota
	TableUnique
	TableForeignKey
)

// TableKey is a table-level key declaration, kept separate from
// per-column constraints (spec §4.5).
type TableKey struct {
	Kind       TableKeyKind
	Columns    []string
	RefTable   string   // TableForeignKey
	RefColumns []string // TableForeignKey
}

// CreateTable carries an ordered column-declaration list and a separate
// ordered table-level key list.
type CreateTable struct {
	Name    string
	Columns []ColumnDecl
	Keys    []TableKey
}

func (c *CreateTable) stmtNode() {}

// Insert carries an optional ordered target-column list (nil means "use
// the table's declared column order at execution time" — the front-end
// does not resolve this, spec §4.5) and an ordered literal value list.
// When Columns is non-nil its length must equal len(Values); the parser
// enforces this invariant at construction time.
type Insert struct {
	Table   string
	Columns []string // nil if omitted
	Values  []*expr.Literal
}

func (i *Insert) stmtNode() {}

// Delete carries an optional WHERE predicate; nil Where means delete all
// rows.
type Delete struct {
	Table string
	Where expr.Expression // nil if absent
}

func (d *Delete) stmtNode() {}
