package parser

import (
	"github.com/chisql/chisql/internal/ast/expr"
	"github.com/chisql/chisql/internal/ast/stmt"
	"github.com/chisql/chisql/internal/diag"
)

// parseInsert parses `INSERT INTO table [(col, ...)] VALUES (lit, ...)`
// (spec §4.5). When the column list is given, its length must match the
// value list's — enforced here, at construction time, rather than left to
// a later validation pass.
func (p *parser) parseInsert() (stmt.Statement, *diag.Error) {
	if err := p.expectKeyword("INSERT"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var columns []string
	if p.atSymbol("(") {
		p.advance()
		columns, err = p.parseIdentList()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var values []*expr.Literal
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		values = append(values, lit)
		if p.atSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}

	if columns != nil && len(columns) != len(values) {
		return nil, diag.New(diag.Syntactic, p.locus(), "column list has %d entries but VALUES has %d", len(columns), len(values))
	}

	return &stmt.Insert{Table: table, Columns: columns, Values: values}, nil
}

// parseDelete parses `DELETE FROM table [WHERE pred]` (spec §4.5).
func (p *parser) parseDelete() (stmt.Statement, *diag.Error) {
	if err := p.expectKeyword("DELETE"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	table, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	var where expr.Expression
	if p.atKeyword("WHERE") {
		p.advance()
		where, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return &stmt.Delete{Table: table, Where: where}, nil
}
