package ast

import (
	"fmt"
	"strings"
)

// Printer renders a tree as indented S-expression-like text, the
// consumer that exercises the Visitor interface (statement and
// expression evaluation both dispatch through their own type switches
// instead). Used by `smython run --dump-ast`.
type Printer struct {
	buf    strings.Builder
	indent int
}

// NewPrinter returns a Printer ready to render a Suite or a single Node.
func NewPrinter() *Printer {
	return &Printer{}
}

// String returns everything rendered so far.
func (p *Printer) String() string {
	return p.buf.String()
}

// PrintSuite renders every statement of a Suite on its own line.
func (p *Printer) PrintSuite(suite Suite) {
	for _, s := range suite {
		s.Accept(p)
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) block(name string, body Suite) {
	p.indent++
	p.PrintSuite(body)
	p.indent--
	_ = name
}

func (p *Printer) VisitIf(s *IfStmt) {
	p.line("If")
	p.indent++
	s.Test.Accept(p)
	p.indent--
	p.line("Then")
	p.block("", s.Body)
	if len(s.ElseBody) > 0 {
		p.line("Else")
		p.block("", s.ElseBody)
	}
}

func (p *Printer) VisitWhile(s *WhileStmt) {
	p.line("While")
	p.indent++
	s.Test.Accept(p)
	p.indent--
	p.block("", s.Body)
	if len(s.ElseBody) > 0 {
		p.line("Else")
		p.block("", s.ElseBody)
	}
}

func (p *Printer) VisitFor(s *ForStmt) {
	p.line("For")
	p.indent++
	s.Target.Accept(p)
	s.Iter.Accept(p)
	p.indent--
	p.block("", s.Body)
	if len(s.ElseBody) > 0 {
		p.line("Else")
		p.block("", s.ElseBody)
	}
}

func (p *Printer) VisitTryFinally(s *TryFinallyStmt) {
	p.line("TryFinally")
	p.block("", s.Body)
	p.line("Finally")
	p.block("", s.FinallyBody)
}

func (p *Printer) VisitTryExcept(s *TryExceptStmt) {
	p.line("TryExcept")
	p.block("", s.Body)
	for _, c := range s.Clauses {
		if c.Test != nil {
			p.line("Except as %s", c.Name)
			p.indent++
			c.Test.Accept(p)
			p.indent--
		} else {
			p.line("Except")
		}
		p.block("", c.Body)
	}
	if len(s.ElseBody) > 0 {
		p.line("Else")
		p.block("", s.ElseBody)
	}
}

func (p *Printer) VisitDef(s *DefStmt) {
	names := make([]string, len(s.Params))
	for i, prm := range s.Params {
		names[i] = prm.Name
		if prm.Star {
			names[i] = "*" + names[i]
		}
	}
	p.line("Def %s(%s)", s.Name, strings.Join(names, ", "))
	p.block("", s.Body)
}

func (p *Printer) VisitClass(s *ClassStmt) {
	p.line("Class %s", s.Name)
	if s.SuperExpr != nil {
		p.indent++
		s.SuperExpr.Accept(p)
		p.indent--
	}
	p.block("", s.Body)
}

func (p *Printer) VisitPass(s *PassStmt)         { p.line("Pass") }
func (p *Printer) VisitBreak(s *BreakStmt)       { p.line("Break") }
func (p *Printer) VisitContinue(s *ContinueStmt) { p.line("Continue") }

func (p *Printer) VisitReturn(s *ReturnStmt) {
	p.line("Return")
	if s.Expr != nil {
		p.indent++
		s.Expr.Accept(p)
		p.indent--
	}
}

func (p *Printer) VisitRaise(s *RaiseStmt) {
	p.line("Raise")
	p.indent++
	s.Expr.Accept(p)
	p.indent--
}

func (p *Printer) VisitAssert(s *AssertStmt) {
	p.line("Assert")
	p.indent++
	s.Expr.Accept(p)
	if s.Msg != nil {
		s.Msg.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitGlobal(s *GlobalStmt) {
	p.line("Global %s", strings.Join(s.Names, ", "))
}

func (p *Printer) VisitImportName(s *ImportNameStmt) {
	p.line("Import %s", strings.Join(s.Names, ", "))
}

func (p *Printer) VisitFromImport(s *FromImportStmt) {
	if s.ImportAll {
		p.line("FromImport %s import *", s.Module)
		return
	}
	p.line("FromImport %s import %s", s.Module, strings.Join(s.Names, ", "))
}

func (p *Printer) VisitExprStmt(s *ExprStmt) {
	s.Expr.Accept(p)
}

func (p *Printer) VisitAssign(s *AssignStmt) {
	p.line("Assign")
	p.indent++
	s.LHS.Accept(p)
	s.RHS.Accept(p)
	p.indent--
}

func (p *Printer) VisitAugAssign(s *AugAssignStmt) {
	p.line("AugAssign %s=", s.Op)
	p.indent++
	s.LHS.Accept(p)
	s.RHS.Accept(p)
	p.indent--
}

func (p *Printer) VisitCond(e *CondExpr) {
	p.line("Cond")
	p.indent++
	e.Test.Accept(p)
	e.Body.Accept(p)
	e.OrElse.Accept(p)
	p.indent--
}

func (p *Printer) VisitOr(e *OrExpr) {
	p.line("Or")
	p.indent++
	e.Left.Accept(p)
	e.Right.Accept(p)
	p.indent--
}

func (p *Printer) VisitAnd(e *AndExpr) {
	p.line("And")
	p.indent++
	e.Left.Accept(p)
	e.Right.Accept(p)
	p.indent--
}

func (p *Printer) VisitNot(e *NotExpr) {
	p.line("Not")
	p.indent++
	e.Operand.Accept(p)
	p.indent--
}

func (p *Printer) VisitComparison(e *ComparisonExpr) {
	p.line("Comparison")
	p.indent++
	e.Left.Accept(p)
	for _, op := range e.Ops {
		p.line("%s", op.Op)
		p.indent++
		op.Right.Accept(p)
		p.indent--
	}
	p.indent--
}

func (p *Printer) VisitBinary(e *BinaryExpr) {
	p.line("Binary %s", e.Op)
	p.indent++
	e.Left.Accept(p)
	e.Right.Accept(p)
	p.indent--
}

func (p *Printer) VisitUnary(e *UnaryExpr) {
	p.line("Unary %s", e.Op)
	p.indent++
	e.Operand.Accept(p)
	p.indent--
}

func (p *Printer) VisitCall(e *CallExpr) {
	p.line("Call")
	p.indent++
	e.Callee.Accept(p)
	for _, a := range e.Args {
		a.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitIndex(e *IndexExpr) {
	p.line("Index")
	p.indent++
	e.Left.Accept(p)
	e.Right.Accept(p)
	p.indent--
}

func (p *Printer) VisitAttr(e *AttrExpr) {
	p.line("Attr .%s", e.Name)
	p.indent++
	e.Obj.Accept(p)
	p.indent--
}

func (p *Printer) VisitVar(e *VarExpr) {
	p.line("Var %s", e.Name)
}

func (p *Printer) VisitLit(e *LitExpr) {
	p.line("Lit %#v", e.Value)
}

func (p *Printer) VisitTuple(e *TupleExpr) {
	p.line("Tuple")
	p.indent++
	for _, el := range e.Elems {
		el.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitList(e *ListExpr) {
	p.line("List")
	p.indent++
	for _, el := range e.Elems {
		el.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitDict(e *DictExpr) {
	p.line("Dict")
	p.indent++
	for i := range e.Keys {
		e.Keys[i].Accept(p)
		e.Vals[i].Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitSet(e *SetExpr) {
	p.line("Set")
	p.indent++
	for _, el := range e.Elems {
		el.Accept(p)
	}
	p.indent--
}
