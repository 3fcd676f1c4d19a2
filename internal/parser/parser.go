// Package parser implements the hand-written recursive-descent grammar
// over internal/token's stream (spec §4/§5). It is split by statement
// kind the way the teacher splits its own parser package, but drives a
// real token stream with real operator precedence rather than the
// teacher's whitespace-split, regex-matched clause strings — precedence
// climbing over nested parenthesized expressions cannot be done correctly
// that way.
//
// ParseProgram is the single entry point: it tokenizes the input into
// `;`-separated statements, recovers from a bad statement at its
// boundary, and returns every statement it could parse alongside every
// diagnostic it collected along the way (spec §7 propagation policy).
package parser

import (
	"github.com/chisql/chisql/internal/ast/stmt"
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/token"
)

// ParseProgram parses src as a sequence of statements.
func ParseProgram(src string) ([]stmt.Statement, []*diag.Error) {
	statementToks, errs := tokenizeStatements(src)

	var stmts []stmt.Statement
	for _, toks := range statementToks {
		p := &parser{toks: toks}
		st, err := p.parseStatement()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !p.atEOF() {
			errs = append(errs, diag.New(diag.Syntactic, p.locus(), "unexpected trailing token %q after statement", p.cur().Text))
			continue
		}
		stmts = append(stmts, st)
	}
	return stmts, errs
}

// parser walks a single statement's already-split token slice.
type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) cur() token.Token { return p.toks[p.pos] }

func (p *parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *parser) atEOF() bool { return p.cur().Kind == token.EOF }

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) locus() diag.Locus {
	c := p.cur()
	return diag.Locus{Line: c.Line, Column: c.Column, Offset: c.Offset}
}

func (p *parser) atKeyword(kw string) bool { return p.cur().Is(kw) }
func (p *parser) atSymbol(sym string) bool { return p.cur().IsSymbol(sym) }
func (p *parser) atIdent() bool            { return p.cur().Kind == token.Ident }

func (p *parser) expectKeyword(kw string) *diag.Error {
	if p.atKeyword(kw) {
		p.advance()
		return nil
	}
	return diag.New(diag.Syntactic, p.locus(), "expected %s, got %q", kw, p.cur().Text)
}

func (p *parser) expectSymbol(sym string) *diag.Error {
	if p.atSymbol(sym) {
		p.advance()
		return nil
	}
	return diag.New(diag.Syntactic, p.locus(), "expected %q, got %q", sym, p.cur().Text)
}

func (p *parser) expectIdent() (string, *diag.Error) {
	if !p.atIdent() {
		return "", diag.New(diag.Syntactic, p.locus(), "expected identifier, got %q", p.cur().Text)
	}
	return p.advance().Text, nil
}

func (p *parser) parseStatement() (stmt.Statement, *diag.Error) {
	switch {
	case p.atKeyword("SELECT"):
		sra, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		return &stmt.Query{SRA: sra}, nil
	case p.atKeyword("CREATE"):
		return p.parseCreateTable()
	case p.atKeyword("INSERT"):
		return p.parseInsert()
	case p.atKeyword("DELETE"):
		return p.parseDelete()
	default:
		return nil, diag.New(diag.Syntactic, p.locus(), "expected a statement (SELECT, CREATE TABLE, INSERT, or DELETE), got %q", p.cur().Text)
	}
}
