package ast

// Visitor is implemented by consumers that walk the tree without being
// the evaluator itself, such as the AST printer used by `run --dump-ast`.
// The evaluator dispatches with its own type switch instead of Accept,
// since it needs to return (Object, error) pairs that Accept's void
// signature cannot carry.
type Visitor interface {
	VisitIf(s *IfStmt)
	VisitWhile(s *WhileStmt)
	VisitFor(s *ForStmt)
	VisitTryFinally(s *TryFinallyStmt)
	VisitTryExcept(s *TryExceptStmt)
	VisitDef(s *DefStmt)
	VisitClass(s *ClassStmt)
	VisitPass(s *PassStmt)
	VisitBreak(s *BreakStmt)
	VisitContinue(s *ContinueStmt)
	VisitReturn(s *ReturnStmt)
	VisitRaise(s *RaiseStmt)
	VisitAssert(s *AssertStmt)
	VisitGlobal(s *GlobalStmt)
	VisitImportName(s *ImportNameStmt)
	VisitFromImport(s *FromImportStmt)
	VisitExprStmt(s *ExprStmt)
	VisitAssign(s *AssignStmt)
	VisitAugAssign(s *AugAssignStmt)

	VisitCond(e *CondExpr)
	VisitOr(e *OrExpr)
	VisitAnd(e *AndExpr)
	VisitNot(e *NotExpr)
	VisitComparison(e *ComparisonExpr)
	VisitBinary(e *BinaryExpr)
	VisitUnary(e *UnaryExpr)
	VisitCall(e *CallExpr)
	VisitIndex(e *IndexExpr)
	VisitAttr(e *AttrExpr)
	VisitVar(e *VarExpr)
	VisitLit(e *LitExpr)
	VisitTuple(e *TupleExpr)
	VisitList(e *ListExpr)
	VisitDict(e *DictExpr)
	VisitSet(e *SetExpr)
}
