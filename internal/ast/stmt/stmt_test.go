package stmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisql/chisql/internal/ast/expr"
)

func TestCreateTablePreservesColumnAndConstraintOrder(t *testing.T) {
	t.Parallel()

	ct := &CreateTable{
		Name: "users",
		Columns: []ColumnDecl{
			{
				Name: "id",
				Type: "INT",
				Constraints: []Constraint{
					{Kind: PrimaryKey},
					{Kind: AutoIncrement},
				},
			},
			{
				Name:        "name",
				Type:        "VARCHAR",
				Size:        intPtr(64),
				Constraints: []Constraint{{Kind: NotNull}},
			},
		},
	}

	require.Len(t, ct.Columns, 2)
	assert.Equal(t, "id", ct.Columns[0].Name)
	assert.Equal(t, PrimaryKey, ct.Columns[0].Constraints[0].Kind)
	assert.Equal(t, AutoIncrement, ct.Columns[0].Constraints[1].Kind)
	assert.Equal(t, 64, *ct.Columns[1].Size)
}

func TestTableKeysKeptSeparateFromColumnConstraints(t *testing.T) {
	t.Parallel()

	ct := &CreateTable{
		Name: "orders",
		Columns: []ColumnDecl{
			{Name: "id", Type: "INT"},
			{Name: "customer_id", Type: "INT"},
		},
		Keys: []TableKey{
			{Kind: TableForeignKey, Columns: []string{"customer_id"}, RefTable: "customers", RefColumns: []string{"id"}},
		},
	}

	assert.Empty(t, ct.Columns[1].Constraints)
	require.Len(t, ct.Keys, 1)
	assert.Equal(t, "customers", ct.Keys[0].RefTable)
}

func TestInsertColumnArity(t *testing.T) {
	t.Parallel()

	ins := &Insert{
		Table:   "t",
		Columns: []string{"a", "b"},
		Values: []*expr.Literal{
			{Kind: expr.Int, Value: "1"},
			{Kind: expr.StringKind, Value: "hi"},
		},
	}
	assert.Len(t, ins.Columns, len(ins.Values))
}

func TestInsertOmittedColumnList(t *testing.T) {
	t.Parallel()
	ins := &Insert{Table: "t", Values: []*expr.Literal{{Kind: expr.Int, Value: "1"}}}
	assert.Nil(t, ins.Columns)
}

func TestDeleteWithoutWhereMeansDeleteAll(t *testing.T) {
	t.Parallel()
	d := &Delete{Table: "t"}
	assert.Nil(t, d.Where)
}

func intPtr(n int) *int { return &n }
