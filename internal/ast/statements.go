package ast

import "github.com/smython-lang/smython/internal/token"

// Param is one parameter of a Def: a name, an optional default
// expression, and whether it is the trailing `*rest` collector.
type Param struct {
	Name    string
	Default Expr // nil if this parameter has no default
	Star    bool
}

// IfStmt is `if test: body [elif test: body]* [else: elseBody]`. elif
// chains are represented as a nested IfStmt inside ElseBody.
type IfStmt struct {
	Token     token.Token
	Test      Expr
	Body      Suite
	ElseBody  Suite // may contain a single nested *IfStmt for elif
}

func (s *IfStmt) stmtNode()               {}
func (s *IfStmt) TokenLiteral() string    { return s.Token.Lexeme }
func (s *IfStmt) GetToken() token.Token   { return s.Token }
func (s *IfStmt) Accept(v Visitor)        { v.VisitIf(s) }

// WhileStmt is `while test: body [else: elseBody]`.
type WhileStmt struct {
	Token    token.Token
	Test     Expr
	Body     Suite
	ElseBody Suite
}

func (s *WhileStmt) stmtNode()             {}
func (s *WhileStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *WhileStmt) GetToken() token.Token { return s.Token }
func (s *WhileStmt) Accept(v Visitor)      { v.VisitWhile(s) }

// ForStmt is `for target in iter: body [else: elseBody]`.
type ForStmt struct {
	Token    token.Token
	Target   Expr // assignable: Var or Tuple of assignables
	Iter     Expr
	Body     Suite
	ElseBody Suite
}

func (s *ForStmt) stmtNode()             {}
func (s *ForStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ForStmt) GetToken() token.Token { return s.Token }
func (s *ForStmt) Accept(v Visitor)      { v.VisitFor(s) }

// TryFinallyStmt is `try: body finally: finallyBody`.
type TryFinallyStmt struct {
	Token       token.Token
	Body        Suite
	FinallyBody Suite
}

func (s *TryFinallyStmt) stmtNode()             {}
func (s *TryFinallyStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *TryFinallyStmt) GetToken() token.Token { return s.Token }
func (s *TryFinallyStmt) Accept(v Visitor)      { v.VisitTryFinally(s) }

// TryExceptStmt is `try: body except ...: ... [else: elseBody]`.
type TryExceptStmt struct {
	Token    token.Token
	Body     Suite
	Clauses  []*ExceptClause
	ElseBody Suite
}

func (s *TryExceptStmt) stmtNode()             {}
func (s *TryExceptStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *TryExceptStmt) GetToken() token.Token { return s.Token }
func (s *TryExceptStmt) Accept(v Visitor)      { v.VisitTryExcept(s) }

// DefStmt is `def name(params): body`.
type DefStmt struct {
	Token  token.Token
	Name   string
	Params []Param
	Body   Suite
}

func (s *DefStmt) stmtNode()             {}
func (s *DefStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *DefStmt) GetToken() token.Token { return s.Token }
func (s *DefStmt) Accept(v Visitor)      { v.VisitDef(s) }

// ClassStmt is `class name[(superExpr)]: body`.
type ClassStmt struct {
	Token     token.Token
	Name      string
	SuperExpr Expr // nil if no superclass
	Body      Suite
}

func (s *ClassStmt) stmtNode()             {}
func (s *ClassStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ClassStmt) GetToken() token.Token { return s.Token }
func (s *ClassStmt) Accept(v Visitor)      { v.VisitClass(s) }

// PassStmt is `pass`.
type PassStmt struct{ Token token.Token }

func (s *PassStmt) stmtNode()             {}
func (s *PassStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *PassStmt) GetToken() token.Token { return s.Token }
func (s *PassStmt) Accept(v Visitor)      { v.VisitPass(s) }

// BreakStmt is `break`.
type BreakStmt struct{ Token token.Token }

func (s *BreakStmt) stmtNode()             {}
func (s *BreakStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *BreakStmt) GetToken() token.Token { return s.Token }
func (s *BreakStmt) Accept(v Visitor)      { v.VisitBreak(s) }

// ContinueStmt is `continue`.
type ContinueStmt struct{ Token token.Token }

func (s *ContinueStmt) stmtNode()             {}
func (s *ContinueStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ContinueStmt) GetToken() token.Token { return s.Token }
func (s *ContinueStmt) Accept(v Visitor)      { v.VisitContinue(s) }

// ReturnStmt is `return [expr]`.
type ReturnStmt struct {
	Token token.Token
	Expr  Expr // nil for a bare return
}

func (s *ReturnStmt) stmtNode()             {}
func (s *ReturnStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ReturnStmt) GetToken() token.Token { return s.Token }
func (s *ReturnStmt) Accept(v Visitor)      { v.VisitReturn(s) }

// RaiseStmt is `raise expr`.
type RaiseStmt struct {
	Token token.Token
	Expr  Expr
}

func (s *RaiseStmt) stmtNode()             {}
func (s *RaiseStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *RaiseStmt) GetToken() token.Token { return s.Token }
func (s *RaiseStmt) Accept(v Visitor)      { v.VisitRaise(s) }

// AssertStmt is `assert expr [, msg]`.
type AssertStmt struct {
	Token token.Token
	Expr  Expr
	Msg   Expr // nil if no message
}

func (s *AssertStmt) stmtNode()             {}
func (s *AssertStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *AssertStmt) GetToken() token.Token { return s.Token }
func (s *AssertStmt) Accept(v Visitor)      { v.VisitAssert(s) }

// GlobalStmt is `global name1, name2, ...`.
type GlobalStmt struct {
	Token token.Token
	Names []string
}

func (s *GlobalStmt) stmtNode()             {}
func (s *GlobalStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *GlobalStmt) GetToken() token.Token { return s.Token }
func (s *GlobalStmt) Accept(v Visitor)      { v.VisitGlobal(s) }

// ImportNameStmt is `import name1, name2, ...`.
type ImportNameStmt struct {
	Token token.Token
	Names []string
}

func (s *ImportNameStmt) stmtNode()             {}
func (s *ImportNameStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ImportNameStmt) GetToken() token.Token { return s.Token }
func (s *ImportNameStmt) Accept(v Visitor)      { v.VisitImportName(s) }

// FromImportStmt is `from module import name1, name2 | *`.
type FromImportStmt struct {
	Token    token.Token
	Module   string
	Names    []string // nil when ImportAll
	ImportAll bool
}

func (s *FromImportStmt) stmtNode()             {}
func (s *FromImportStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *FromImportStmt) GetToken() token.Token { return s.Token }
func (s *FromImportStmt) Accept(v Visitor)      { v.VisitFromImport(s) }

// ExprStmt is a bare expression evaluated for its value/side effects.
type ExprStmt struct {
	Token token.Token
	Expr  Expr
}

func (s *ExprStmt) stmtNode()             {}
func (s *ExprStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *ExprStmt) GetToken() token.Token { return s.Token }
func (s *ExprStmt) Accept(v Visitor)      { v.VisitExprStmt(s) }

// AssignStmt is `lhs = rhs`.
type AssignStmt struct {
	Token token.Token
	LHS   Expr // assignable: Var, Attr, Index, or Tuple of assignables
	RHS   Expr
}

func (s *AssignStmt) stmtNode()             {}
func (s *AssignStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *AssignStmt) GetToken() token.Token { return s.Token }
func (s *AssignStmt) Accept(v Visitor)      { v.VisitAssign(s) }

// AugAssignStmt is `lhs op= rhs` for op in + - * / % | &.
type AugAssignStmt struct {
	Token token.Token
	Op    string // "+", "-", "*", "/", "%", "|", "&"
	LHS   Expr
	RHS   Expr
}

func (s *AugAssignStmt) stmtNode()             {}
func (s *AugAssignStmt) TokenLiteral() string  { return s.Token.Lexeme }
func (s *AugAssignStmt) GetToken() token.Token { return s.Token }
func (s *AugAssignStmt) Accept(v Visitor)      { v.VisitAugAssign(s) }
