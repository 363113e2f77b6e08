package evaluator

import "github.com/smython-lang/smython/internal/ast"

// Eval dispatches on the concrete type of node, following the
// teacher's own evalCore: one big type switch rather than the
// ast.Visitor interface, since Eval's (Object, error) result is
// awkward to carry through Accept's void signature. The ast.Visitor
// interface stays reserved for tooling that only needs to walk the
// tree, like the printer used by `run --dump-ast`.
func Eval(node ast.Node, frame *Frame) (Object, error) {
	switch n := node.(type) {
	// Statements
	case *ast.IfStmt:
		return evalIf(n, frame)
	case *ast.WhileStmt:
		return evalWhile(n, frame)
	case *ast.ForStmt:
		return evalFor(n, frame)
	case *ast.TryFinallyStmt:
		return evalTryFinally(n, frame)
	case *ast.TryExceptStmt:
		return evalTryExcept(n, frame)
	case *ast.DefStmt:
		return evalDef(n, frame)
	case *ast.ClassStmt:
		return evalClass(n, frame)
	case *ast.PassStmt:
		return NoneObj, nil
	case *ast.BreakStmt:
		return nil, &breakSignal{}
	case *ast.ContinueStmt:
		return nil, &continueSignal{}
	case *ast.ReturnStmt:
		return evalReturn(n, frame)
	case *ast.RaiseStmt:
		return evalRaise(n, frame)
	case *ast.AssertStmt:
		return evalAssert(n, frame)
	case *ast.GlobalStmt:
		for _, name := range n.Names {
			frame.MarkGlobal(name)
		}
		return NoneObj, nil
	case *ast.ImportNameStmt:
		return evalImportName(n, frame)
	case *ast.FromImportStmt:
		return evalFromImport(n, frame)
	case *ast.ExprStmt:
		return Eval(n.Expr, frame)
	case *ast.AssignStmt:
		return evalAssign(n, frame)
	case *ast.AugAssignStmt:
		return evalAugAssign(n, frame)

	// Expressions
	case *ast.CondExpr:
		return evalCond(n, frame)
	case *ast.OrExpr:
		return evalOr(n, frame)
	case *ast.AndExpr:
		return evalAnd(n, frame)
	case *ast.NotExpr:
		return evalNot(n, frame)
	case *ast.ComparisonExpr:
		return evalComparison(n, frame)
	case *ast.BinaryExpr:
		return evalBinary(n, frame)
	case *ast.UnaryExpr:
		return evalUnary(n, frame)
	case *ast.CallExpr:
		return evalCall(n, frame)
	case *ast.IndexExpr:
		return evalIndex(n, frame)
	case *ast.AttrExpr:
		return evalAttr(n, frame)
	case *ast.VarExpr:
		if v, ok := frame.Lookup(n.Name); ok {
			return v, nil
		}
		return nil, raise(KindNameError, "name '%s' is not defined", n.Name)
	case *ast.LitExpr:
		return evalLit(n)
	case *ast.TupleExpr:
		return evalTuple(n, frame)
	case *ast.ListExpr:
		return evalList(n, frame)
	case *ast.DictExpr:
		return evalDictLit(n, frame)
	case *ast.SetExpr:
		return evalSetLit(n, frame)
	}
	return nil, raise(KindTypeError, "cannot evaluate node of type %T", node)
}

// evalSuite evaluates each statement of suite in order and returns the
// value of the last one (None for an empty suite), stopping and
// propagating the first error/signal it encounters.
func evalSuite(suite ast.Suite, frame *Frame) (Object, error) {
	var result Object = NoneObj
	for _, stmt := range suite {
		v, err := Eval(stmt, frame)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evaluateAsFunc runs suite as a function body: a returnSignal is
// caught here and yields its payload, while break/continue/raise keep
// propagating (an unhandled break/continue inside a function body is
// still an error, since this boundary only catches Return).
func evaluateAsFunc(suite ast.Suite, frame *Frame) (Object, error) {
	_, err := evalSuite(suite, frame)
	if err == nil {
		return NoneObj, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	return nil, err
}
