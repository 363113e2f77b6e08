package parser

import (
	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/token"
)

func (p *Parser) parseIf() ast.Stmt {
	tok := p.curToken
	p.nextToken()
	test := p.parseExpr()
	body := p.parseBlock()
	stmt := &ast.IfStmt{Token: tok, Test: test, Body: body}

	if p.curTokenIs(token.ELIF) {
		stmt.ElseBody = ast.Suite{p.parseIf()}
		return stmt
	}
	if p.curTokenIs(token.ELSE) {
		stmt.ElseBody = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Stmt {
	tok := p.curToken
	p.nextToken()
	test := p.parseExpr()
	body := p.parseBlock()
	stmt := &ast.WhileStmt{Token: tok, Test: test, Body: body}
	if p.curTokenIs(token.ELSE) {
		stmt.ElseBody = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseFor() ast.Stmt {
	tok := p.curToken
	p.nextToken()
	target := p.parseTargetList()
	if !p.curTokenIs(token.IN) {
		p.errorf(p.curToken, "expected 'in', got %s", p.curToken.Type)
		return &ast.ForStmt{Token: tok, Target: target}
	}
	p.nextToken()
	iter := p.parseExpr()
	body := p.parseBlock()
	stmt := &ast.ForStmt{Token: tok, Target: target, Iter: iter, Body: body}
	if p.curTokenIs(token.ELSE) {
		stmt.ElseBody = p.parseBlock()
	}
	return stmt
}

// parseTargetList parses the assignable on the left of `for x in ...` or
// `for x, y in ...`, producing a bare Var or a Tuple of Vars.
func (p *Parser) parseTargetList() ast.Expr {
	first := p.parseExpr()
	if !p.peekTokenIs(token.COMMA) {
		return first
	}
	tok := p.curToken
	elems := []ast.Expr{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.IN) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpr())
	}
	return &ast.TupleExpr{Token: tok, Elems: elems}
}

func (p *Parser) parseTry() ast.Stmt {
	tok := p.curToken
	body := p.parseBlock()

	if p.curTokenIs(token.FINALLY) {
		finallyBody := p.parseBlock()
		return &ast.TryFinallyStmt{Token: tok, Body: body, FinallyBody: finallyBody}
	}

	stmt := &ast.TryExceptStmt{Token: tok, Body: body}
	for p.curTokenIs(token.EXCEPT) {
		clause := &ast.ExceptClause{Token: p.curToken}
		if !p.peekTokenIs(token.COLON) {
			p.nextToken()
			clause.Test = p.parseExpr()
			if p.peekTokenIs(token.AS) {
				p.nextToken()
				if p.expectPeek(token.IDENT) {
					clause.Name = p.curToken.Lexeme
				}
			}
		}
		clause.Body = p.parseBlock()
		stmt.Clauses = append(stmt.Clauses, clause)
	}
	if p.curTokenIs(token.ELSE) {
		stmt.ElseBody = p.parseBlock()
	}
	return stmt
}
