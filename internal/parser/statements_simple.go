package parser

import (
	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/token"
)

// parseStatement dispatches on the current token to the right statement
// parser. Compound statements land here too, in statements_compound.go
// and statements_defclass.go.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Type {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.TRY:
		return p.parseTry()
	case token.DEF:
		return p.parseDef()
	case token.CLASS:
		return p.parseClass()
	case token.PASS:
		s := &ast.PassStmt{Token: p.curToken}
		p.nextToken()
		return s
	case token.BREAK:
		s := &ast.BreakStmt{Token: p.curToken}
		p.nextToken()
		return s
	case token.CONTINUE:
		s := &ast.ContinueStmt{Token: p.curToken}
		p.nextToken()
		return s
	case token.RETURN:
		return p.parseReturn()
	case token.RAISE:
		return p.parseRaise()
	case token.ASSERT:
		return p.parseAssert()
	case token.GLOBAL:
		return p.parseGlobal()
	case token.IMPORT:
		return p.parseImportName()
	case token.FROM:
		return p.parseFromImport()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseReturn() ast.Stmt {
	tok := p.curToken
	if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.SEMI) || p.peekTokenIs(token.EOF) {
		p.nextToken()
		return &ast.ReturnStmt{Token: tok}
	}
	p.nextToken()
	expr := p.parseExpr()
	p.finishSimpleStatement()
	return &ast.ReturnStmt{Token: tok, Expr: expr}
}

func (p *Parser) parseRaise() ast.Stmt {
	tok := p.curToken
	p.nextToken()
	expr := p.parseExpr()
	p.finishSimpleStatement()
	return &ast.RaiseStmt{Token: tok, Expr: expr}
}

func (p *Parser) parseAssert() ast.Stmt {
	tok := p.curToken
	p.nextToken()
	expr := p.parseExpr()
	stmt := &ast.AssertStmt{Token: tok, Expr: expr}
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Msg = p.parseExpr()
	}
	p.finishSimpleStatement()
	return stmt
}

func (p *Parser) parseGlobal() ast.Stmt {
	tok := p.curToken
	names := []string{}
	if !p.expectPeek(token.IDENT) {
		p.finishSimpleStatement()
		return &ast.GlobalStmt{Token: tok}
	}
	names = append(names, p.curToken.Lexeme)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		names = append(names, p.curToken.Lexeme)
	}
	p.finishSimpleStatement()
	return &ast.GlobalStmt{Token: tok, Names: names}
}

func (p *Parser) parseImportName() ast.Stmt {
	tok := p.curToken
	names := []string{}
	if !p.expectPeek(token.IDENT) {
		p.finishSimpleStatement()
		return &ast.ImportNameStmt{Token: tok}
	}
	names = append(names, p.curToken.Lexeme)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		names = append(names, p.curToken.Lexeme)
	}
	p.finishSimpleStatement()
	return &ast.ImportNameStmt{Token: tok, Names: names}
}

func (p *Parser) parseFromImport() ast.Stmt {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		p.finishSimpleStatement()
		return &ast.FromImportStmt{Token: tok}
	}
	module := p.curToken.Lexeme
	if !p.expectPeek(token.IMPORT) {
		p.finishSimpleStatement()
		return &ast.FromImportStmt{Token: tok, Module: module}
	}
	if p.peekTokenIs(token.STAR) {
		p.nextToken()
		p.finishSimpleStatement()
		return &ast.FromImportStmt{Token: tok, Module: module, ImportAll: true}
	}
	if !p.expectPeek(token.IDENT) {
		p.finishSimpleStatement()
		return &ast.FromImportStmt{Token: tok, Module: module}
	}
	names := []string{p.curToken.Lexeme}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		names = append(names, p.curToken.Lexeme)
	}
	p.finishSimpleStatement()
	return &ast.FromImportStmt{Token: tok, Module: module, Names: names}
}

// assignOps maps an augmented-assignment operator token to its bare op.
var assignOps = map[token.TokenType]string{
	token.PLUS_EQ:  "+",
	token.MINUS_EQ: "-",
	token.STAR_EQ:  "*",
	token.SLASH_EQ: "/",
	token.PCT_EQ:   "%",
	token.PIPE_EQ:  "|",
	token.AMP_EQ:   "&",
}

// parseSimpleStatement handles a bare expression, a plain assignment, or
// an augmented assignment, all of which start with an expression.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	tok := p.curToken
	expr := p.parseExpr()

	if op, ok := assignOps[p.peekToken.Type]; ok {
		p.nextToken()
		p.nextToken()
		rhs := p.parseExpr()
		p.finishSimpleStatement()
		return &ast.AugAssignStmt{Token: tok, Op: op, LHS: expr, RHS: rhs}
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		rhs := p.parseExpr()
		p.finishSimpleStatement()
		return &ast.AssignStmt{Token: tok, LHS: expr, RHS: rhs}
	}

	p.finishSimpleStatement()
	return &ast.ExprStmt{Token: tok, Expr: expr}
}
