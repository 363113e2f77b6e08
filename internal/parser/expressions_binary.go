package parser

import (
	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/token"
)

// parseExpr is the entry point for expression parsing: a conditional
// expression, `body if test else orelse`, sitting above every other
// level. On entry curToken must be the first token of the expression;
// on return curToken is the last token consumed.
func (p *Parser) parseExpr() ast.Expr {
	body := p.parseOr()
	if !p.peekTokenIs(token.IF) {
		return body
	}
	p.nextToken() // cur = IF
	tok := p.curToken
	p.nextToken()
	test := p.parseOr()
	if !p.expectPeek(token.ELSE) {
		return body
	}
	p.nextToken()
	orelse := p.parseExpr()
	return &ast.CondExpr{Token: tok, Test: test, Body: body, OrElse: orelse}
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.peekTokenIs(token.OR) {
		tok := p.peekToken
		p.nextToken()
		p.nextToken()
		left = &ast.OrExpr{Token: tok, Left: left, Right: p.parseAnd()}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	for p.peekTokenIs(token.AND) {
		tok := p.peekToken
		p.nextToken()
		p.nextToken()
		left = &ast.AndExpr{Token: tok, Left: left, Right: p.parseNot()}
	}
	return left
}

func (p *Parser) parseNot() ast.Expr {
	if p.curTokenIs(token.NOT) {
		tok := p.curToken
		p.nextToken()
		return &ast.NotExpr{Token: tok, Operand: p.parseNot()}
	}
	return p.parseComparison()
}

// parseComparison parses a chain `left op1 b op2 c ...`. "not in" and
// "is not" are each two keyword tokens, so they get their own branches
// instead of a single-token lookup.
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseBitOr()
	tok := p.curToken
	var ops []ast.CompareOp

	for {
		switch {
		case p.peekTokenIs(token.LT), p.peekTokenIs(token.GT), p.peekTokenIs(token.EQ),
			p.peekTokenIs(token.NOT_EQ), p.peekTokenIs(token.LTE), p.peekTokenIs(token.GTE),
			p.peekTokenIs(token.IN):
			op := string(p.peekToken.Type)
			p.nextToken()
			p.nextToken()
			ops = append(ops, ast.CompareOp{Op: op, Right: p.parseBitOr()})
			continue

		case p.peekTokenIs(token.IS):
			p.nextToken() // cur = IS
			op := "is"
			if p.peekTokenIs(token.NOT) {
				p.nextToken() // cur = NOT
				op = "is not"
			}
			p.nextToken()
			ops = append(ops, ast.CompareOp{Op: op, Right: p.parseBitOr()})
			continue

		case p.peekTokenIs(token.NOT):
			p.nextToken() // cur = NOT
			if !p.expectPeek(token.IN) {
				return left
			}
			p.nextToken()
			ops = append(ops, ast.CompareOp{Op: "not in", Right: p.parseBitOr()})
			continue
		}
		break
	}

	if len(ops) == 0 {
		return left
	}
	return &ast.ComparisonExpr{Token: tok, Left: left, Ops: ops}
}

func (p *Parser) parseBitOr() ast.Expr {
	left := p.parseBitAnd()
	for p.peekTokenIs(token.PIPE) {
		tok := p.peekToken
		p.nextToken()
		p.nextToken()
		left = &ast.BinaryExpr{Token: tok, Op: "|", Left: left, Right: p.parseBitAnd()}
	}
	return left
}

func (p *Parser) parseBitAnd() ast.Expr {
	left := p.parseAddSub()
	for p.peekTokenIs(token.AMP) {
		tok := p.peekToken
		p.nextToken()
		p.nextToken()
		left = &ast.BinaryExpr{Token: tok, Op: "&", Left: left, Right: p.parseAddSub()}
	}
	return left
}

func (p *Parser) parseAddSub() ast.Expr {
	left := p.parseMulDiv()
	for p.peekTokenIs(token.PLUS) || p.peekTokenIs(token.MINUS) {
		tok := p.peekToken
		op := string(tok.Type)
		p.nextToken()
		p.nextToken()
		left = &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: p.parseMulDiv()}
	}
	return left
}

func (p *Parser) parseMulDiv() ast.Expr {
	left := p.parseUnary()
	for p.peekTokenIs(token.STAR) || p.peekTokenIs(token.SLASH) || p.peekTokenIs(token.PERCENT) {
		tok := p.peekToken
		op := string(tok.Type)
		p.nextToken()
		p.nextToken()
		left = &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: p.parseUnary()}
	}
	return left
}
