package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chisql/chisql/internal/ast/stmt"
)

func parseOneStatement(t *testing.T, src string) stmt.Statement {
	t.Helper()
	stmts, errs := ParseProgram(src)
	require.Empty(t, errs, "%v", errs)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestCreateTableColumnsAndConstraints(t *testing.T) {
	t.Parallel()

	st := parseOneStatement(t, "CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(64) NOT NULL);")
	ct, ok := st.(*stmt.CreateTable)
	require.True(t, ok)

	assert.Equal(t, "users", ct.Name)
	require.Len(t, ct.Columns, 2)

	id := ct.Columns[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "INT", id.Type)
	require.Len(t, id.Constraints, 1)
	assert.Equal(t, stmt.PrimaryKey, id.Constraints[0].Kind)

	name := ct.Columns[1]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "VARCHAR", name.Type)
	require.NotNil(t, name.Size)
	assert.Equal(t, 64, *name.Size)
	require.Len(t, name.Constraints, 1)
	assert.Equal(t, stmt.NotNull, name.Constraints[0].Kind)
}

func TestCreateTableForeignKeyConstraint(t *testing.T) {
	t.Parallel()

	st := parseOneStatement(t, "CREATE TABLE orders (customer_id INT REFERENCES customers(id));")
	ct := st.(*stmt.CreateTable)
	c := ct.Columns[0].Constraints[0]
	assert.Equal(t, stmt.ForeignKey, c.Kind)
	assert.Equal(t, "customers", c.RefTable)
	assert.Equal(t, "id", c.RefColumn)
}

func TestCreateTableDefaultAndCheck(t *testing.T) {
	t.Parallel()

	st := parseOneStatement(t, "CREATE TABLE t (n INT DEFAULT 0 CHECK (n >= 0));")
	ct := st.(*stmt.CreateTable)
	constraints := ct.Columns[0].Constraints
	require.Len(t, constraints, 2)
	assert.Equal(t, stmt.Default, constraints[0].Kind)
	assert.Equal(t, "0", constraints[0].DefaultValue.Value)
	assert.Equal(t, stmt.Check, constraints[1].Kind)
	require.NotNil(t, constraints[1].CheckExpr)
}

func TestCreateTableAutoIncrement(t *testing.T) {
	t.Parallel()
	st := parseOneStatement(t, "CREATE TABLE t (id INT AUTO INCREMENT);")
	ct := st.(*stmt.CreateTable)
	assert.Equal(t, stmt.AutoIncrement, ct.Columns[0].Constraints[0].Kind)
}

func TestCreateTableLevelKeysKeptSeparate(t *testing.T) {
	t.Parallel()

	st := parseOneStatement(t, "CREATE TABLE t (a INT, b INT, PRIMARY KEY (a), FOREIGN KEY (b) REFERENCES u (id));")
	ct := st.(*stmt.CreateTable)
	require.Len(t, ct.Columns, 2)
	require.Len(t, ct.Keys, 2)
	assert.Equal(t, stmt.TablePrimaryKey, ct.Keys[0].Kind)
	assert.Equal(t, []string{"a"}, ct.Keys[0].Columns)
	assert.Equal(t, stmt.TableForeignKey, ct.Keys[1].Kind)
	assert.Equal(t, "u", ct.Keys[1].RefTable)
	assert.Equal(t, []string{"id"}, ct.Keys[1].RefColumns)
}

func TestCreateTableUniqueTableKey(t *testing.T) {
	t.Parallel()
	st := parseOneStatement(t, "CREATE TABLE t (a INT, UNIQUE (a));")
	ct := st.(*stmt.CreateTable)
	require.Len(t, ct.Keys, 1)
	assert.Equal(t, stmt.TableUnique, ct.Keys[0].Kind)
}

func TestCreateTableUnknownTypeIsSyntaxError(t *testing.T) {
	t.Parallel()
	_, errs := ParseProgram("CREATE TABLE t (a BOGUSTYPE);")
	require.NotEmpty(t, errs)
}
