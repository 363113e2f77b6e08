// Package ast defines the abstract syntax tree produced by the Smython
// parser: two disjoint node families, statements and expressions, each
// a closed set of tagged variants.
package ast

import "github.com/smython-lang/smython/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
	GetToken() token.Token
}

// Stmt is a Node that represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a Node that represents an expression.
type Expr interface {
	Node
	exprNode()
}

// Suite is an ordered sequence of statements forming a block.
type Suite []Stmt

// ExceptClause is one `except [test [as name]]: body` arm of a
// TryExceptStmt.
type ExceptClause struct {
	Token token.Token // the 'except' token
	Test  Expr        // nil for a bare except
	Name  string      // "" if no capture name
	Body  Suite
}
