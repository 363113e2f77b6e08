package ast

import "github.com/smython-lang/smython/internal/token"

// CondExpr is the conditional expression `body if test else orelse`.
type CondExpr struct {
	Token  token.Token
	Test   Expr
	Body   Expr
	OrElse Expr
}

func (e *CondExpr) exprNode()             {}
func (e *CondExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *CondExpr) GetToken() token.Token { return e.Token }
func (e *CondExpr) Accept(v Visitor)      { v.VisitCond(e) }

// OrExpr is `left or right`, short-circuiting.
type OrExpr struct {
	Token       token.Token
	Left, Right Expr
}

func (e *OrExpr) exprNode()             {}
func (e *OrExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *OrExpr) GetToken() token.Token { return e.Token }
func (e *OrExpr) Accept(v Visitor)      { v.VisitOr(e) }

// AndExpr is `left and right`, short-circuiting.
type AndExpr struct {
	Token       token.Token
	Left, Right Expr
}

func (e *AndExpr) exprNode()             {}
func (e *AndExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *AndExpr) GetToken() token.Token { return e.Token }
func (e *AndExpr) Accept(v Visitor)      { v.VisitAnd(e) }

// NotExpr is `not operand`.
type NotExpr struct {
	Token   token.Token
	Operand Expr
}

func (e *NotExpr) exprNode()             {}
func (e *NotExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *NotExpr) GetToken() token.Token { return e.Token }
func (e *NotExpr) Accept(v Visitor)      { v.VisitNot(e) }

// CompareOp is one link of a comparison chain: `op right`.
type CompareOp struct {
	Op    string // "<", ">", "==", ">=", "<=", "!=", "in", "not in", "is", "is not"
	Right Expr
}

// ComparisonExpr is a chain `left op1 b op2 c ...`, evaluated left to
// right with each operand computed exactly once and short-circuiting on
// the first false link.
type ComparisonExpr struct {
	Token token.Token
	Left  Expr
	Ops   []CompareOp
}

func (e *ComparisonExpr) exprNode()             {}
func (e *ComparisonExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ComparisonExpr) GetToken() token.Token { return e.Token }
func (e *ComparisonExpr) Accept(v Visitor)      { v.VisitComparison(e) }

// BinaryExpr covers bitwise `| &` and arithmetic `+ - * / %`.
type BinaryExpr struct {
	Token       token.Token
	Op          string
	Left, Right Expr
}

func (e *BinaryExpr) exprNode()             {}
func (e *BinaryExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *BinaryExpr) GetToken() token.Token { return e.Token }
func (e *BinaryExpr) Accept(v Visitor)      { v.VisitBinary(e) }

// UnaryExpr covers unary `+` and `-`.
type UnaryExpr struct {
	Token   token.Token
	Op      string // "+" or "-"
	Operand Expr
}

func (e *UnaryExpr) exprNode()             {}
func (e *UnaryExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *UnaryExpr) GetToken() token.Token { return e.Token }
func (e *UnaryExpr) Accept(v Visitor)      { v.VisitUnary(e) }

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Token  token.Token
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) exprNode()             {}
func (e *CallExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *CallExpr) GetToken() token.Token { return e.Token }
func (e *CallExpr) Accept(v Visitor)      { v.VisitCall(e) }

// IndexExpr is `left[right]`. When the subscript contained a `:`, the
// parser has already rewritten right into a Call to the builtin
// `slice`.
type IndexExpr struct {
	Token       token.Token
	Left, Right Expr
}

func (e *IndexExpr) exprNode()             {}
func (e *IndexExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *IndexExpr) GetToken() token.Token { return e.Token }
func (e *IndexExpr) Accept(v Visitor)      { v.VisitIndex(e) }

// AttrExpr is `obj.name`.
type AttrExpr struct {
	Token token.Token
	Obj   Expr
	Name  string
}

func (e *AttrExpr) exprNode()             {}
func (e *AttrExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *AttrExpr) GetToken() token.Token { return e.Token }
func (e *AttrExpr) Accept(v Visitor)      { v.VisitAttr(e) }

// VarExpr is a bare identifier reference.
type VarExpr struct {
	Token token.Token
	Name  string
}

func (e *VarExpr) exprNode()             {}
func (e *VarExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *VarExpr) GetToken() token.Token { return e.Token }
func (e *VarExpr) Accept(v Visitor)      { v.VisitVar(e) }

// LitExpr is a literal: None, True, False, a number, or a string. Value
// holds the parsed Go value (nil, bool, int64, float64, or string).
type LitExpr struct {
	Token token.Token
	Value interface{}
}

func (e *LitExpr) exprNode()             {}
func (e *LitExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *LitExpr) GetToken() token.Token { return e.Token }
func (e *LitExpr) Accept(v Visitor)      { v.VisitLit(e) }

// TupleExpr is `(e1, e2, ...)`.
type TupleExpr struct {
	Token token.Token
	Elems []Expr
}

func (e *TupleExpr) exprNode()             {}
func (e *TupleExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *TupleExpr) GetToken() token.Token { return e.Token }
func (e *TupleExpr) Accept(v Visitor)      { v.VisitTuple(e) }

// ListExpr is `[e1, e2, ...]`.
type ListExpr struct {
	Token token.Token
	Elems []Expr
}

func (e *ListExpr) exprNode()             {}
func (e *ListExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ListExpr) GetToken() token.Token { return e.Token }
func (e *ListExpr) Accept(v Visitor)      { v.VisitList(e) }

// DictExpr is `{k1: v1, k2: v2, ...}`.
type DictExpr struct {
	Token token.Token
	Keys  []Expr
	Vals  []Expr
}

func (e *DictExpr) exprNode()             {}
func (e *DictExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *DictExpr) GetToken() token.Token { return e.Token }
func (e *DictExpr) Accept(v Visitor)      { v.VisitDict(e) }

// SetExpr is `{e1, e2, ...}`.
type SetExpr struct {
	Token token.Token
	Elems []Expr
}

func (e *SetExpr) exprNode()             {}
func (e *SetExpr) TokenLiteral() string  { return e.Token.Lexeme }
func (e *SetExpr) GetToken() token.Token { return e.Token }
func (e *SetExpr) Accept(v Visitor)      { v.VisitSet(e) }
