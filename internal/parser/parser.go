// Package parser turns a Smython token stream into an AST by recursive
// descent. Smython's grammar is small and fixed (unlike a language with
// user-definable operators), so unlike some Pratt parsers there is no
// runtime-built prefix/infix function table: each precedence level gets
// its own parse method, chained from lowest to highest.
package parser

import (
	"fmt"

	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/lexer"
	"github.com/smython-lang/smython/internal/token"
)

// SyntaxError is a parse failure tied to a source line. It is returned
// as a plain error from ParseProgram, distinct from the runtime-level
// exception objects the evaluator raises.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parser consumes tokens from a Lexer and builds a Suite.
type Parser struct {
	lex *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*SyntaxError
}

// New creates a Parser over a freshly constructed Lexer and primes the
// two-token lookahead window.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it has type t, otherwise records
// an error and leaves the cursor in place.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken, "expected %s, got %s (%q)", t, p.peekToken.Type, p.peekToken.Lexeme)
	return false
}

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, &SyntaxError{Line: tok.Line, Message: fmt.Sprintf(format, args...)})
}

// Errors returns every syntax error accumulated during parsing.
func (p *Parser) Errors() []*SyntaxError {
	return p.errors
}

// ParseProgram parses an entire module into a Suite. It returns the
// first accumulated error, if any, alongside whatever partial tree was
// built, matching how the lexer similarly surfaces its first failure.
func (p *Parser) ParseProgram() (ast.Suite, error) {
	suite := p.parseStatements(func() bool { return p.curTokenIs(token.EOF) })
	if len(p.errors) > 0 {
		return suite, p.errors[0]
	}
	return suite, nil
}

// parseStatements reads statements and the blank/NEWLINE noise between
// them until stop reports true. Every statement parser is responsible
// for leaving curToken positioned either on its own trailing
// NEWLINE/SEMI (simple statements, via finishSimpleStatement) or
// directly on the first token of whatever follows (compound statements,
// whose block already consumed through its DEDENT) — this loop never
// advances past a token a statement parser hasn't already accounted for.
func (p *Parser) parseStatements(stop func() bool) ast.Suite {
	var suite ast.Suite
	for !stop() {
		if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMI) {
			p.nextToken()
			continue
		}
		before := p.curToken
		stmt := p.parseStatement()
		if stmt != nil {
			suite = append(suite, stmt)
		}
		if p.curToken == before && !stop() {
			// A parse function bailed out without consuming anything
			// (e.g. an atom error on a token no rule starts with).
			// Force progress so a single bad token can't hang the parse.
			p.nextToken()
		}
	}
	return suite
}

// finishSimpleStatement advances onto a trailing NEWLINE or SEMI if one
// immediately follows. Called by every simple-statement parser so the
// generic loop above can uniformly skip statement terminators.
func (p *Parser) finishSimpleStatement() {
	if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
}

// parseBlock parses the suite that follows a compound statement header:
// either `: NEWLINE INDENT stmt+ DEDENT`, or a single inline
// simple-statement line (`if n == 0: return 1`).
func (p *Parser) parseBlock() ast.Suite {
	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.peekTokenIs(token.NEWLINE) {
		return p.parseInlineSuite()
	}
	p.nextToken()
	if !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()
	body := p.parseStatements(func() bool {
		return p.curTokenIs(token.DEDENT) || p.curTokenIs(token.EOF)
	})
	if p.curTokenIs(token.DEDENT) {
		p.nextToken()
	} else {
		p.errorf(p.curToken, "expected DEDENT, got %s", p.curToken.Type)
	}
	return body
}

// parseInlineSuite parses one or more ';'-separated small statements
// ending in NEWLINE, the single-line form of a compound statement's
// suite. Called with curToken still on COLON.
func (p *Parser) parseInlineSuite() ast.Suite {
	p.nextToken()
	body := p.parseStatements(func() bool {
		return p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.EOF)
	})
	if p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	return body
}
