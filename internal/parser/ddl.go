package parser

import (
	"strconv"

	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/stmt"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/token"
)

var columnTypes = map[string]bool{
	"INT": true, "INTEGER": true, "VARCHAR": true, "CHAR": true,
	"DOUBLE": true, "FLOAT": true, "BOOLEAN": true, "DATE": true, "TEXT": true,
}

// parseCreateTable parses `CREATE TABLE name (column-decl | table-key, ...)`
// (spec §4.5).
func (p *parser) parseCreateTable() (stmt.Statement, *diag.Error) {
	if err := p.expectKeyword("CREATE"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}

	ct := &stmt.CreateTable{Name: name}
	for {
		if p.atKeyword("PRIMARY") || p.atKeyword("UNIQUE") || p.atKeyword("FOREIGN") {
			key, err := p.parseTableKey()
			if err != nil {
				return nil, err
			}
			ct.Keys = append(ct.Keys, key)
		} else {
			col, err := p.parseColumnDecl()
			if err != nil {
				return nil, err
			}
			ct.Columns = append(ct.Columns, col)
		}
		if p.atSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return ct, nil
}

func (p *parser) parseColumnDecl() (stmt.ColumnDecl, *diag.Error) {
	name, err := p.expectIdent()
	if err != nil {
		return stmt.ColumnDecl{}, err
	}
	typeTok := p.cur()
	if typeTok.Kind != token.Keyword || !columnTypes[typeTok.Text] {
		return stmt.ColumnDecl{}, diag.New(diag.Syntactic, p.locus(), "expected a column type, got %q", typeTok.Text)
	}
	p.advance()
	col := stmt.ColumnDecl{Name: name, Type: typeTok.Text}

	if p.atSymbol("(") {
		p.advance()
		if p.cur().Kind != token.Number {
			return stmt.ColumnDecl{}, diag.New(diag.Syntactic, p.locus(), "expected a size, got %q", p.cur().Text)
		}
		n, convErr := strconv.Atoi(p.advance().Text)
		if convErr != nil {
			return stmt.ColumnDecl{}, diag.New(diag.Syntactic, p.locus(), "invalid column size")
		}
		col.Size = &n
		if err := p.expectSymbol(")"); err != nil {
			return stmt.ColumnDecl{}, err
		}
	}

	for {
		c, ok, err := p.tryParseConstraint()
		if err != nil {
			return stmt.ColumnDecl{}, err
		}
		if !ok {
			break
		}
		col.Constraints = append(col.Constraints, c)
	}
	return col, nil
}

func (p *parser) tryParseConstraint() (stmt.Constraint, bool, *diag.Error) {
	switch {
	case p.atKeyword("NOT"):
		p.advance()
		if err := p.expectKeyword("NULL"); err != nil {
			return stmt.Constraint{}, false, err
		}
		return stmt.Constraint{Kind: stmt.NotNull}, true, nil
	case p.atKeyword("UNIQUE"):
		p.advance()
		return stmt.Constraint{Kind: stmt.Unique}, true, nil
	case p.atKeyword("PRIMARY"):
		p.advance()
		if err := p.expectKeyword("KEY"); err != nil {
			return stmt.Constraint{}, false, err
		}
		return stmt.Constraint{Kind: stmt.PrimaryKey}, true, nil
	case p.atKeyword("AUTO"):
		p.advance()
		if err := p.expectKeyword("INCREMENT"); err != nil {
			return stmt.Constraint{}, false, err
		}
		return stmt.Constraint{Kind: stmt.AutoIncrement}, true, nil
	case p.atKeyword("DEFAULT"):
		p.advance()
		lit, err := p.parseLiteral()
		if err != nil {
			return stmt.Constraint{}, false, err
		}
		return stmt.Constraint{Kind: stmt.Default, DefaultValue: lit}, true, nil
	case p.atKeyword("CHECK"):
		p.advance()
		if err := p.expectSymbol("("); err != nil {
			return stmt.Constraint{}, false, err
		}
		e, err := p.parseExpression()
		if err != nil {
			return stmt.Constraint{}, false, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return stmt.Constraint{}, false, err
		}
		return stmt.Constraint{Kind: stmt.Check, CheckExpr: e}, true, nil
	case p.atKeyword("REFERENCES"):
		p.advance()
		refTable, err := p.expectIdent()
		if err != nil {
			return stmt.Constraint{}, false, err
		}
		c := stmt.Constraint{Kind: stmt.ForeignKey, RefTable: refTable}
		if p.atSymbol("(") {
			p.advance()
			col, err := p.expectIdent()
			if err != nil {
				return stmt.Constraint{}, false, err
			}
			c.RefColumn = col
			if err := p.expectSymbol(")"); err != nil {
				return stmt.Constraint{}, false, err
			}
		}
		return c, true, nil
	default:
		return stmt.Constraint{}, false, nil
	}
}

func (p *parser) parseLiteral() (*expr.Literal, *diag.Error) {
	tok := p.cur()
	switch {
	case tok.Kind == token.Number:
		p.advance()
		kind := expr.Int
		for _, ch := range tok.Text {
			if ch == '.' {
				kind = expr.Double
				break
			}
		}
		return &expr.Literal{Kind: kind, Value: tok.Text}, nil
	case tok.Kind == token.String:
		p.advance()
		return &expr.Literal{Kind: expr.StringKind, Value: tok.Text}, nil
	case p.atKeyword("NULL"):
		p.advance()
		return &expr.Literal{Kind: expr.Null}, nil
	default:
		return nil, diag.New(diag.Syntactic, p.locus(), "expected a literal, got %q", tok.Text)
	}
}

func (p *parser) parseTableKey() (stmt.TableKey, *diag.Error) {
	switch {
	case p.atKeyword("PRIMARY"):
		p.advance()
		if err := p.expectKeyword("KEY"); err != nil {
			return stmt.TableKey{}, err
		}
		if err := p.expectSymbol("("); err != nil {
			return stmt.TableKey{}, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return stmt.TableKey{}, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return stmt.TableKey{}, err
		}
		return stmt.TableKey{Kind: stmt.TablePrimaryKey, Columns: cols}, nil
	case p.atKeyword("UNIQUE"):
		p.advance()
		if err := p.expectSymbol("("); err != nil {
			return stmt.TableKey{}, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return stmt.TableKey{}, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return stmt.TableKey{}, err
		}
		return stmt.TableKey{Kind: stmt.TableUnique, Columns: cols}, nil
	case p.atKeyword("FOREIGN"):
		p.advance()
		if err := p.expectKeyword("KEY"); err != nil {
			return stmt.TableKey{}, err
		}
		if err := p.expectSymbol("("); err != nil {
			return stmt.TableKey{}, err
		}
		cols, err := p.parseIdentList()
		if err != nil {
			return stmt.TableKey{}, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return stmt.TableKey{}, err
		}
		if err := p.expectKeyword("REFERENCES"); err != nil {
			return stmt.TableKey{}, err
		}
		refTable, err := p.expectIdent()
		if err != nil {
			return stmt.TableKey{}, err
		}
		key := stmt.TableKey{Kind: stmt.TableForeignKey, Columns: cols, RefTable: refTable}
		if p.atSymbol("(") {
			p.advance()
			refCols, err := p.parseIdentList()
			if err != nil {
				return stmt.TableKey{}, err
			}
			key.RefColumns = refCols
			if err := p.expectSymbol(")"); err != nil {
				return stmt.TableKey{}, err
			}
		}
		return key, nil
	default:
		return stmt.TableKey{}, diag.New(diag.Syntactic, p.locus(), "expected PRIMARY KEY, UNIQUE, or FOREIGN KEY, got %q", p.cur().Text)
	}
}
