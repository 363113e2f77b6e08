package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/internal/lexer"
	"github.com/smython-lang/smython/internal/token"
)

func collect(input string) []token.Token {
	l := lexer.New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func types(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestNextTokenSimpleAssignment(t *testing.T) {
	toks := collect("x = 1\n")
	require.Equal(t, []token.TokenType{
		token.IDENT, token.ASSIGN, token.NUMBER, token.NEWLINE, token.EOF,
	}, types(toks))
	require.Equal(t, "x", toks[0].Lexeme)
	require.Equal(t, "1", toks[2].Lexeme)
}

func TestNextTokenIndentDedent(t *testing.T) {
	toks := collect("if x:\n    y\nz\n")
	require.Equal(t, []token.TokenType{
		token.IF, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT, token.IDENT, token.NEWLINE,
		token.DEDENT, token.IDENT, token.NEWLINE,
		token.EOF,
	}, types(toks))
}

func TestNextTokenNestedIndentCollapsesAtEOF(t *testing.T) {
	toks := collect("if a:\n    if b:\n        c\n")
	require.Equal(t, []token.TokenType{
		token.IF, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT,
		token.IF, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT, token.IDENT, token.NEWLINE,
		token.DEDENT, token.DEDENT,
		token.EOF,
	}, types(toks))
}

func TestNextTokenBlankAndCommentLinesIgnoredForIndent(t *testing.T) {
	toks := collect("if a:\n    x\n\n    # comment\n    y\n")
	require.Equal(t, []token.TokenType{
		token.IF, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT,
		token.IDENT, token.NEWLINE,
		token.IDENT, token.NEWLINE,
		token.DEDENT,
		token.EOF,
	}, types(toks))
}

func TestNextTokenOperators(t *testing.T) {
	toks := collect("a += 1\nb == c\nd != e\nf <= g >= h\n")
	got := types(toks)
	require.Contains(t, got, token.PLUS_EQ)
	require.Contains(t, got, token.EQ)
	require.Contains(t, got, token.NOT_EQ)
	require.Contains(t, got, token.LTE)
	require.Contains(t, got, token.GTE)
}

func TestNextTokenStringEscapes(t *testing.T) {
	toks := collect(`x = "a\nb\t\"c\""` + "\n")
	require.Equal(t, token.STRING, toks[2].Type)
	require.Equal(t, "a\nb\t\"c\"", toks[2].Lexeme)
}

func TestNextTokenNumberWithFraction(t *testing.T) {
	toks := collect("x = 3.14\n")
	require.Equal(t, "3.14", toks[2].Lexeme)
}

func TestNextTokenNumberDotNotFollowedByDigitStopsAtInteger(t *testing.T) {
	toks := collect("x = 3.y\n")
	require.Equal(t, "3", toks[2].Lexeme)
	require.Equal(t, token.DOT, toks[3].Type)
}

func TestNextTokenTabInIndentationIsAnError(t *testing.T) {
	l := lexer.New("if a:\n\tx\n")
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	require.Error(t, l.Err())
}

func TestNextTokenOddIndentIsAnError(t *testing.T) {
	l := lexer.New("if a:\n   x\n")
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	require.Error(t, l.Err())
}

func TestNextTokenUnterminatedStringIsAnError(t *testing.T) {
	l := lexer.New("x = \"abc\n")
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	require.Error(t, l.Err())
}

func TestNextTokenKeywordsAreNotIdentifiers(t *testing.T) {
	toks := collect("def f(x): pass\n")
	require.Equal(t, token.DEF, toks[0].Type)
	require.Equal(t, token.PASS, toks[6].Type)
}

func TestNextTokenLineContinuation(t *testing.T) {
	toks := collect("x = 1 + \\\n    2\n")
	require.Equal(t, []token.TokenType{
		token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER, token.NEWLINE, token.EOF,
	}, types(toks))
}
