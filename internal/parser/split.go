package parser

import (
	"github.com/chisql/chisql/internal/diag"
	"github.com/chisql/chisql/internal/token"
)

// tokenizeStatements splits src into one token slice per `;`-terminated
// statement and recovers from lexical errors at statement boundaries: on a
// lexical error, the raw source is skipped forward to the next top-level
// `;` (or EOF) and scanning resumes there, so one malformed statement never
// prevents the rest of the program from being parsed (spec §7 propagation
// policy). The tokens already scanned for the failing statement are
// discarded, so it contributes only its lexical error, the same
// per-statement isolation ParseProgram gives parse errors.
func tokenizeStatements(src string) ([][]token.Token, []*diag.Error) {
	var stmts [][]token.Token
	var errs []*diag.Error
	var current []token.Token

	lx := token.NewLexer(src)
	for {
		tok, err := lx.Next()
		if err != nil {
			errs = append(errs, err)
			lx.SkipToNextStatement()
			current = nil
			continue
		}
		if tok.Kind == token.EOF {
			if len(current) > 0 {
				current = append(current, tok)
				stmts = append(stmts, current)
			}
			return stmts, errs
		}
		if tok.IsSymbol(";") {
			if len(current) > 0 {
				current = append(current, token.Token{Kind: token.EOF, Line: tok.Line, Column: tok.Column, Offset: tok.Offset})
				stmts = append(stmts, current)
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
}
