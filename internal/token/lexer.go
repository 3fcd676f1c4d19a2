package token

import (
	"strings"
	"unicode"

	"github.com/chisql/chisql/internal/diag"
)

// Lexer converts chiSQL source text into a Token stream. It is a single
// left-to-right pass with no suspension points (spec §5), structured the
// same way the teacher's Tokenizer is: a cursor over the raw input plus
// line/column bookkeeping, advanced one byte at a time.
type Lexer struct {
	src    string
	pos    int // byte offset
	line   int
	column int
}

// NewLexer creates a Lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1, column: 1}
}

// Tokenize scans the entire input and returns the resulting token stream,
// always terminated by a single EOF token. It stops at the first lexical
// error: spec's statement-boundary error recovery resumes tokenizing
// fresh per-statement at a higher level (internal/parser), not here.
func Tokenize(src string) ([]Token, *diag.Error) {
	lx := NewLexer(src)
	var toks []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// Next scans and returns the single next token, or a lexical error. It is
// the low-level primitive internal/parser's statement splitter drives
// directly so it can recover from a lexical error without losing the rest
// of the program (Tokenize, by contrast, gives up at the first error).
func (lx *Lexer) Next() (Token, *diag.Error) {
	return lx.next()
}

// SkipToNextStatement discards raw input up to and including the next
// top-level `;`, or to EOF if none remains. Used for statement-boundary
// error recovery after a lexical error.
func (lx *Lexer) SkipToNextStatement() {
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == ';' {
			lx.advance()
			return
		}
		if lx.src[lx.pos] == '\'' {
			lx.advance()
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\'' {
				lx.advance()
			}
		}
		lx.advance()
	}
}

func (lx *Lexer) locus() diag.Locus {
	return diag.Locus{Line: lx.line, Column: lx.column, Offset: lx.pos}
}

func (lx *Lexer) peekByte() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) peekByteAt(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

func (lx *Lexer) advance() {
	if lx.pos >= len(lx.src) {
		return
	}
	if lx.src[lx.pos] == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	lx.pos++
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for lx.pos < len(lx.src) {
		ch := lx.src[lx.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			lx.advance()
		case ch == '-' && lx.peekByteAt(1) == '-':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.advance()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) next() (Token, *diag.Error) {
	lx.skipWhitespaceAndComments()

	if lx.pos >= len(lx.src) {
		return Token{Kind: EOF, Line: lx.line, Column: lx.column, Offset: lx.pos}, nil
	}

	startLine, startCol, startOff := lx.line, lx.column, lx.pos
	ch := lx.src[lx.pos]

	switch {
	case ch == '\'':
		return lx.scanString(startLine, startCol, startOff)
	case unicode.IsDigit(rune(ch)):
		return lx.scanNumber(startLine, startCol, startOff), nil
	case isIdentStart(ch):
		return lx.scanWord(startLine, startCol, startOff), nil
	default:
		return lx.scanSymbol(startLine, startCol, startOff)
	}
}

func isIdentStart(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isIdentCont(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_'
}

// scanString scans a single-quoted string literal; a doubled quote ('')
// inside the literal is the standard SQL escape for a literal quote.
func (lx *Lexer) scanString(line, col, off int) (Token, *diag.Error) {
	lx.advance() // opening '
	var sb strings.Builder
	for {
		if lx.pos >= len(lx.src) {
			return Token{}, diag.New(diag.Lexical, diag.Locus{Line: line, Column: col, Offset: off}, "unterminated string literal")
		}
		ch := lx.src[lx.pos]
		if ch == '\'' {
			if lx.peekByteAt(1) == '\'' {
				sb.WriteByte('\'')
				lx.advance()
				lx.advance()
				continue
			}
			lx.advance() // closing '
			break
		}
		sb.WriteByte(ch)
		lx.advance()
	}
	return Token{Kind: String, Text: sb.String(), Line: line, Column: col, Offset: off}, nil
}

// scanNumber scans an integer or (with a single '.') a double literal.
// The parser distinguishes int from double by whether Text contains '.'.
func (lx *Lexer) scanNumber(line, col, off int) Token {
	var sb strings.Builder
	for lx.pos < len(lx.src) && unicode.IsDigit(rune(lx.src[lx.pos])) {
		sb.WriteByte(lx.src[lx.pos])
		lx.advance()
	}
	if lx.peekByte() == '.' && unicode.IsDigit(rune(lx.peekByteAt(1))) {
		sb.WriteByte('.')
		lx.advance()
		for lx.pos < len(lx.src) && unicode.IsDigit(rune(lx.src[lx.pos])) {
			sb.WriteByte(lx.src[lx.pos])
			lx.advance()
		}
	}
	return Token{Kind: Number, Text: sb.String(), Line: line, Column: col, Offset: off}
}

func (lx *Lexer) scanWord(line, col, off int) Token {
	var sb strings.Builder
	for lx.pos < len(lx.src) && isIdentCont(lx.src[lx.pos]) {
		sb.WriteByte(lx.src[lx.pos])
		lx.advance()
	}
	word := sb.String()
	upper := strings.ToUpper(word)
	if Keywords[upper] {
		return Token{Kind: Keyword, Text: upper, Line: line, Column: col, Offset: off}
	}
	return Token{Kind: Ident, Text: word, Line: line, Column: col, Offset: off}
}

func (lx *Lexer) scanSymbol(line, col, off int) (Token, *diag.Error) {
	two := string(lx.src[lx.pos])
	if lx.pos+1 < len(lx.src) {
		two = lx.src[lx.pos : lx.pos+2]
	}
	for _, sym := range multiCharSymbols {
		if two == sym {
			lx.advance()
			lx.advance()
			return Token{Kind: Symbol, Text: sym, Line: line, Column: col, Offset: off}, nil
		}
	}

	ch := lx.src[lx.pos]
	if ch == '*' {
		lx.advance()
		return Token{Kind: Symbol, Text: "*", Line: line, Column: col, Offset: off}, nil
	}
	if singleCharSymbols[ch] {
		lx.advance()
		return Token{Kind: Symbol, Text: string(ch), Line: line, Column: col, Offset: off}, nil
	}

	locus := diag.Locus{Line: line, Column: col, Offset: off}
	err := diag.New(diag.Lexical, locus, "unexpected character %q", ch)
	return Token{}, err
}
