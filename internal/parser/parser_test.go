package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/lexer"
	"github.com/smython-lang/smython/internal/parser"
)

func parse(t *testing.T, src string) ast.Suite {
	t.Helper()
	p := parser.New(lexer.New(src))
	suite, err := p.ParseProgram()
	require.NoError(t, err)
	return suite
}

func TestParseAssignment(t *testing.T) {
	suite := parse(t, "x = 1 + 2 * 3\n")
	require.Len(t, suite, 1)
	assign, ok := suite[0].(*ast.AssignStmt)
	require.True(t, ok)
	require.Equal(t, "x", assign.LHS.(*ast.VarExpr).Name)

	add, ok := assign.RHS.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", add.Op)
	require.Equal(t, int64(1), add.Left.(*ast.LitExpr).Value)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "*", mul.Op)
}

func TestParseAugAssign(t *testing.T) {
	suite := parse(t, "total += 1\n")
	aug, ok := suite[0].(*ast.AugAssignStmt)
	require.True(t, ok)
	require.Equal(t, "+", aug.Op)
}

func TestParseComparisonChain(t *testing.T) {
	suite := parse(t, "ok = 0 < x < 10\n")
	assign := suite[0].(*ast.AssignStmt)
	cmp, ok := assign.RHS.(*ast.ComparisonExpr)
	require.True(t, ok)
	require.Len(t, cmp.Ops, 2)
	require.Equal(t, "<", cmp.Ops[0].Op)
	require.Equal(t, "<", cmp.Ops[1].Op)
}

func TestParseNotInAndIsNot(t *testing.T) {
	suite := parse(t, "a = x not in y\nb = x is not y\n")
	a := suite[0].(*ast.AssignStmt).RHS.(*ast.ComparisonExpr)
	require.Equal(t, "not in", a.Ops[0].Op)
	b := suite[1].(*ast.AssignStmt).RHS.(*ast.ComparisonExpr)
	require.Equal(t, "is not", b.Ops[0].Op)
}

func TestParseTernary(t *testing.T) {
	suite := parse(t, "y = a if cond else b\n")
	cond, ok := suite[0].(*ast.AssignStmt).RHS.(*ast.CondExpr)
	require.True(t, ok)
	require.Equal(t, "a", cond.Body.(*ast.VarExpr).Name)
	require.Equal(t, "cond", cond.Test.(*ast.VarExpr).Name)
	require.Equal(t, "b", cond.OrElse.(*ast.VarExpr).Name)
}

func TestParseCallAndAttrAndIndex(t *testing.T) {
	suite := parse(t, "r = obj.method(1, 2)[0]\n")
	idx, ok := suite[0].(*ast.AssignStmt).RHS.(*ast.IndexExpr)
	require.True(t, ok)
	call, ok := idx.Left.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	attr, ok := call.Callee.(*ast.AttrExpr)
	require.True(t, ok)
	require.Equal(t, "method", attr.Name)
}

func TestParseSliceBecomesCallToSlice(t *testing.T) {
	suite := parse(t, "y = xs[1:3]\n")
	idx := suite[0].(*ast.AssignStmt).RHS.(*ast.IndexExpr)
	call, ok := idx.Right.(*ast.CallExpr)
	require.True(t, ok)
	require.Equal(t, "slice", call.Callee.(*ast.VarExpr).Name)
	require.Len(t, call.Args, 2)
}

func TestParseOpenSliceUsesNoneForMissingBound(t *testing.T) {
	suite := parse(t, "y = xs[:]\n")
	idx := suite[0].(*ast.AssignStmt).RHS.(*ast.IndexExpr)
	call := idx.Right.(*ast.CallExpr)
	require.Nil(t, call.Args[0].(*ast.LitExpr).Value)
	require.Nil(t, call.Args[1].(*ast.LitExpr).Value)
}

func TestParseIfElifElse(t *testing.T) {
	suite := parse(t, "if a:\n    x\nelif b:\n    y\nelse:\n    z\n")
	top, ok := suite[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, top.Body, 1)
	require.Len(t, top.ElseBody, 1)
	elif, ok := top.ElseBody[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, elif.ElseBody, 1)
}

func TestParseIfInlineSuite(t *testing.T) {
	suite := parse(t, "if n == 0: return 1\n")
	top, ok := suite[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, top.Body, 1)
	_, ok = top.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
}

func TestParseDefAndClassInlineSuite(t *testing.T) {
	suite := parse(t, "def greet(self): return 'hi'\nclass B(A): pass\n")
	def, ok := suite[0].(*ast.DefStmt)
	require.True(t, ok)
	require.Len(t, def.Body, 1)
	cls, ok := suite[1].(*ast.ClassStmt)
	require.True(t, ok)
	require.Len(t, cls.Body, 1)
}

func TestParseInlineSuiteWithMultipleStatements(t *testing.T) {
	suite := parse(t, "if a: x = 1; y = 2\nz = 3\n")
	top := suite[0].(*ast.IfStmt)
	require.Len(t, top.Body, 2)
	require.Len(t, suite, 2)
}

func TestParseWhileElse(t *testing.T) {
	suite := parse(t, "while cond:\n    x\nelse:\n    y\n")
	w, ok := suite[0].(*ast.WhileStmt)
	require.True(t, ok)
	require.Len(t, w.ElseBody, 1)
}

func TestParseForTuple(t *testing.T) {
	suite := parse(t, "for k, v in items:\n    pass\n")
	f, ok := suite[0].(*ast.ForStmt)
	require.True(t, ok)
	tup, ok := f.Target.(*ast.TupleExpr)
	require.True(t, ok)
	require.Len(t, tup.Elems, 2)
}

func TestParseTryExceptElse(t *testing.T) {
	suite := parse(t, "try:\n    x\nexcept ValueError as e:\n    y\nexcept:\n    z\nelse:\n    w\n")
	tr, ok := suite[0].(*ast.TryExceptStmt)
	require.True(t, ok)
	require.Len(t, tr.Clauses, 2)
	require.NotNil(t, tr.Clauses[0].Test)
	require.Equal(t, "e", tr.Clauses[0].Name)
	require.Nil(t, tr.Clauses[1].Test)
	require.Len(t, tr.ElseBody, 1)
}

func TestParseTryFinally(t *testing.T) {
	suite := parse(t, "try:\n    x\nfinally:\n    y\n")
	tf, ok := suite[0].(*ast.TryFinallyStmt)
	require.True(t, ok)
	require.Len(t, tf.Body, 1)
	require.Len(t, tf.FinallyBody, 1)
}

func TestParseDefWithDefaultsAndStar(t *testing.T) {
	suite := parse(t, "def f(a, b=1, *rest):\n    return a\n")
	def, ok := suite[0].(*ast.DefStmt)
	require.True(t, ok)
	require.Equal(t, "f", def.Name)
	require.Len(t, def.Params, 3)
	require.Equal(t, "a", def.Params[0].Name)
	require.Nil(t, def.Params[0].Default)
	require.Equal(t, "b", def.Params[1].Name)
	require.NotNil(t, def.Params[1].Default)
	require.True(t, def.Params[2].Star)
	require.Equal(t, "rest", def.Params[2].Name)
}

func TestParseClassWithSuper(t *testing.T) {
	suite := parse(t, "class Dog(Animal):\n    pass\n")
	cls, ok := suite[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.Equal(t, "Dog", cls.Name)
	require.Equal(t, "Animal", cls.SuperExpr.(*ast.VarExpr).Name)
}

func TestParseDictAndSetLiterals(t *testing.T) {
	suite := parse(t, "d = {1: 2, 3: 4}\ns = {1, 2, 3}\n")
	d := suite[0].(*ast.AssignStmt).RHS.(*ast.DictExpr)
	require.Len(t, d.Keys, 2)
	require.Len(t, d.Vals, 2)
	s := suite[1].(*ast.AssignStmt).RHS.(*ast.SetExpr)
	require.Len(t, s.Elems, 3)
}

func TestParseEmptyTupleAndParenGrouping(t *testing.T) {
	suite := parse(t, "a = ()\nb = (1 + 2) * 3\n")
	tup := suite[0].(*ast.AssignStmt).RHS.(*ast.TupleExpr)
	require.Empty(t, tup.Elems)
	mul := suite[1].(*ast.AssignStmt).RHS.(*ast.BinaryExpr)
	require.Equal(t, "*", mul.Op)
	_, ok := mul.Left.(*ast.BinaryExpr)
	require.True(t, ok)
}

func TestParseGlobalAndImportStatements(t *testing.T) {
	suite := parse(t, "global a, b\nimport os, sys\nfrom math import sqrt, pow\nfrom os import *\n")
	g := suite[0].(*ast.GlobalStmt)
	require.Equal(t, []string{"a", "b"}, g.Names)
	imp := suite[1].(*ast.ImportNameStmt)
	require.Equal(t, []string{"os", "sys"}, imp.Names)
	from := suite[2].(*ast.FromImportStmt)
	require.Equal(t, "math", from.Module)
	require.Equal(t, []string{"sqrt", "pow"}, from.Names)
	star := suite[3].(*ast.FromImportStmt)
	require.True(t, star.ImportAll)
}

func TestParsePrinterProducesOutput(t *testing.T) {
	suite := parse(t, "def f(x):\n    if x:\n        return x\n    return 0\n")
	p := ast.NewPrinter()
	p.PrintSuite(suite)
	require.Contains(t, p.String(), "Def f(x)")
	require.Contains(t, p.String(), "Return")
}
