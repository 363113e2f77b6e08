package parser

import (
	"strconv"
	"strings"

	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/token"
)

func (p *Parser) parseUnary() ast.Expr {
	if p.curTokenIs(token.PLUS) || p.curTokenIs(token.MINUS) {
		tok := p.curToken
		op := string(tok.Type)
		p.nextToken()
		return &ast.UnaryExpr{Token: tok, Op: op, Operand: p.parseUnary()}
	}
	return p.parsePostfix()
}

// parsePostfix parses zero or more call/index/attribute trailers onto an
// atom: `f(x)`, `a[i]`, `obj.field`, chained in any order.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parseAtom()
	for {
		switch {
		case p.peekTokenIs(token.LPAREN):
			p.nextToken()
			expr = p.parseCallTrailer(expr)
		case p.peekTokenIs(token.LBRACKET):
			p.nextToken()
			expr = p.parseIndexTrailer(expr)
		case p.peekTokenIs(token.DOT):
			p.nextToken()
			expr = p.parseAttrTrailer(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallTrailer(callee ast.Expr) ast.Expr {
	tok := p.curToken // LPAREN
	var args []ast.Expr
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.CallExpr{Token: tok, Callee: callee}
	}
	p.nextToken()
	args = append(args, p.parseExpr())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.RPAREN) {
			break
		}
		p.nextToken()
		args = append(args, p.parseExpr())
	}
	p.expectPeek(token.RPAREN)
	return &ast.CallExpr{Token: tok, Callee: callee, Args: args}
}

// parseIndexTrailer parses `[ expr ]` or `[ start:stop ]`. A slice
// subscript is rewritten into a call to the builtin `slice` so the
// evaluator only ever sees a plain Index with a single Right expression.
func (p *Parser) parseIndexTrailer(left ast.Expr) ast.Expr {
	tok := p.curToken // LBRACKET
	p.nextToken()

	var start ast.Expr
	if !p.curTokenIs(token.COLON) {
		start = p.parseExpr()
	}

	if p.curTokenIs(token.COLON) || p.peekTokenIs(token.COLON) {
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
		}
		var stop ast.Expr
		if !p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			stop = p.parseExpr()
		}
		p.expectPeek(token.RBRACKET)
		if start == nil {
			start = &ast.LitExpr{Token: tok, Value: nil}
		}
		if stop == nil {
			stop = &ast.LitExpr{Token: tok, Value: nil}
		}
		sliceCall := &ast.CallExpr{
			Token:  tok,
			Callee: &ast.VarExpr{Token: tok, Name: "slice"},
			Args:   []ast.Expr{start, stop},
		}
		return &ast.IndexExpr{Token: tok, Left: left, Right: sliceCall}
	}

	p.expectPeek(token.RBRACKET)
	return &ast.IndexExpr{Token: tok, Left: left, Right: start}
}

func (p *Parser) parseAttrTrailer(obj ast.Expr) ast.Expr {
	tok := p.curToken // DOT
	if !p.expectPeek(token.IDENT) {
		return obj
	}
	return &ast.AttrExpr{Token: tok, Obj: obj, Name: p.curToken.Lexeme}
}

func (p *Parser) parseAtom() ast.Expr {
	tok := p.curToken
	switch tok.Type {
	case token.IDENT:
		return &ast.VarExpr{Token: tok, Name: tok.Lexeme}
	case token.NUMBER:
		return &ast.LitExpr{Token: tok, Value: parseNumberLiteral(tok.Lexeme)}
	case token.STRING:
		return &ast.LitExpr{Token: tok, Value: tok.Lexeme}
	case token.TRUE:
		return &ast.LitExpr{Token: tok, Value: true}
	case token.FALSE:
		return &ast.LitExpr{Token: tok, Value: false}
	case token.NONE:
		return &ast.LitExpr{Token: tok, Value: nil}
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.LBRACKET:
		return p.parseListLiteral()
	case token.LBRACE:
		return p.parseDictOrSetLiteral()
	default:
		p.errorf(tok, "unexpected token %s (%q) in expression", tok.Type, tok.Lexeme)
		return &ast.LitExpr{Token: tok, Value: nil}
	}
}

// parseNumberLiteral distinguishes integer and float literals the way
// the spec's value model does: a literal with a decimal point is always
// a float, otherwise an int.
func parseNumberLiteral(lexeme string) interface{} {
	if strings.Contains(lexeme, ".") {
		f, _ := strconv.ParseFloat(lexeme, 64)
		return f
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		f, _ := strconv.ParseFloat(lexeme, 64)
		return f
	}
	return i
}

func (p *Parser) parseParenOrTuple() ast.Expr {
	tok := p.curToken
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.TupleExpr{Token: tok}
	}
	p.nextToken()
	first := p.parseExpr()
	if p.peekTokenIs(token.COMMA) {
		elems := []ast.Expr{first}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RPAREN) {
				break
			}
			p.nextToken()
			elems = append(elems, p.parseExpr())
		}
		p.expectPeek(token.RPAREN)
		return &ast.TupleExpr{Token: tok, Elems: elems}
	}
	p.expectPeek(token.RPAREN)
	return first
}

func (p *Parser) parseListLiteral() ast.Expr {
	tok := p.curToken
	var elems []ast.Expr
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.ListExpr{Token: tok}
	}
	p.nextToken()
	elems = append(elems, p.parseExpr())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.RBRACKET) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpr())
	}
	p.expectPeek(token.RBRACKET)
	return &ast.ListExpr{Token: tok, Elems: elems}
}

// parseDictOrSetLiteral disambiguates `{}`-delimited literals by
// checking for a colon after the first element: `{1: 2}` is a Dict,
// `{1, 2}` is a Set.
func (p *Parser) parseDictOrSetLiteral() ast.Expr {
	tok := p.curToken
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return &ast.DictExpr{Token: tok}
	}
	p.nextToken()
	firstKey := p.parseExpr()

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		keys := []ast.Expr{firstKey}
		vals := []ast.Expr{p.parseExpr()}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACE) {
				break
			}
			p.nextToken()
			k := p.parseExpr()
			if !p.expectPeek(token.COLON) {
				break
			}
			p.nextToken()
			keys = append(keys, k)
			vals = append(vals, p.parseExpr())
		}
		p.expectPeek(token.RBRACE)
		return &ast.DictExpr{Token: tok, Keys: keys, Vals: vals}
	}

	elems := []ast.Expr{firstKey}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.RBRACE) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpr())
	}
	p.expectPeek(token.RBRACE)
	return &ast.SetExpr{Token: tok, Elems: elems}
}
