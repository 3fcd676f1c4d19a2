package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeKeywordsAreCaseInsensitiveAndUppercased(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("select * from T")
	require.Nil(t, err)
	require.Len(t, toks, 5) // SELECT, *, FROM, T, EOF

	assert.Equal(t, Keyword, toks[0].Kind)
	assert.Equal(t, "SELECT", toks[0].Text)
	assert.Equal(t, Symbol, toks[1].Kind)
	assert.Equal(t, "*", toks[1].Text)
	assert.Equal(t, Keyword, toks[2].Kind)
	assert.Equal(t, "FROM", toks[2].Text)
	assert.Equal(t, Ident, toks[3].Kind)
	assert.Equal(t, "T", toks[3].Text, "identifiers are case-preserving")
	assert.Equal(t, EOF, toks[4].Kind)
}

func TestTokenizeIdentifiersAreCaseSensitive(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize("MyTable")
	require.Nil(t, err)
	assert.Equal(t, "MyTable", toks[0].Text)
}

func TestTokenizeNumbers(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("42 3.14")
	require.Nil(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Text)
	assert.Equal(t, Number, toks[1].Kind)
	assert.Equal(t, "3.14", toks[1].Text)
}

func TestTokenizeStringLiteralWithEscapedQuote(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize(`'it''s here'`)
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "it's here", toks[0].Text)
}

func TestTokenizeUnterminatedStringIsLexicalError(t *testing.T) {
	t.Parallel()
	_, err := Tokenize("'abc")
	require.NotNil(t, err)
	assert.Equal(t, "unterminated string literal", errMessage(t, err))
}

func TestTokenizeUnknownCharacterIsLexicalError(t *testing.T) {
	t.Parallel()
	_, err := Tokenize("SELECT $ FROM t")
	require.NotNil(t, err)
}

func TestTokenizeSkipsSingleLineComments(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize("SELECT a -- this is a comment\nFROM t")
	require.Nil(t, err)
	var texts []string
	for _, tk := range toks {
		if tk.Kind != EOF {
			texts = append(texts, tk.Text)
		}
	}
	assert.Equal(t, []string{"SELECT", "a", "FROM", "t"}, texts)
}

func TestTokenizeMultiCharSymbolsMaximalMunch(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize("a <= b <> c >= d != e")
	require.Nil(t, err)
	var syms []string
	for _, tk := range toks {
		if tk.Kind == Symbol {
			syms = append(syms, tk.Text)
		}
	}
	assert.Equal(t, []string{"<=", "<>", ">=", "!="}, syms)
}

func TestTokenizeLineColumnTracking(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize("SELECT a\nFROM t")
	require.Nil(t, err)
	// "FROM" starts the second line.
	for _, tk := range toks {
		if tk.Text == "FROM" {
			assert.Equal(t, 2, tk.Line)
			assert.Equal(t, 1, tk.Column)
			return
		}
	}
	t.Fatal("FROM token not found")
}

func TestSkipToNextStatementRecoversAfterLexicalError(t *testing.T) {
	t.Parallel()

	lx := NewLexer("$ garbage; SELECT a FROM t")
	_, err := lx.Next()
	require.NotNil(t, err)
	lx.SkipToNextStatement()

	tok, err := lx.Next()
	require.Nil(t, err)
	assert.Equal(t, Keyword, tok.Kind)
	assert.Equal(t, "SELECT", tok.Text)
}

func errMessage(t *testing.T, err interface{ Error() string }) string {
	t.Helper()
	// Strip the "lexical error at L:C: " prefix diag.Error.Error() adds,
	// leaving just the message under test.
	full := err.Error()
	const marker = ": "
	idx := lastIndex(full, marker)
	if idx < 0 {
		return full
	}
	return full[idx+len(marker):]
}

func lastIndex(s, sub string) int {
	for i := len(s) - len(sub); i >= 0; i-- {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
