package parser

import (
	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/token"
)

func (p *Parser) parseDef() ast.Stmt {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParams()
	body := p.parseBlock()
	return &ast.DefStmt{Token: tok, Name: name, Params: params, Body: body}
}

// parseParams parses the parenthesized parameter list of a def, with
// curToken on LPAREN on entry and RPAREN on exit.
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseOneParam())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneParam())
	}
	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseOneParam() ast.Param {
	star := false
	if p.curTokenIs(token.STAR) {
		star = true
		p.nextToken()
	}
	name := p.curToken.Lexeme
	param := ast.Param{Name: name, Star: star}
	if !star && p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		param.Default = p.parseExpr()
	}
	return param
}

func (p *Parser) parseClass() ast.Stmt {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	var super ast.Expr
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		super = p.parseExpr()
		p.expectPeek(token.RPAREN)
	}
	body := p.parseBlock()
	return &ast.ClassStmt{Token: tok, Name: name, SuperExpr: super, Body: body}
}
