package evaluator

import "github.com/smython-lang/smython/internal/ast"

func evalOr(n *ast.OrExpr, frame *Frame) (Object, error) {
	left, err := Eval(n.Left, frame)
	if err != nil {
		return nil, err
	}
	if left.Truthy() {
		return left, nil
	}
	return Eval(n.Right, frame)
}

func evalAnd(n *ast.AndExpr, frame *Frame) (Object, error) {
	left, err := Eval(n.Left, frame)
	if err != nil {
		return nil, err
	}
	if !left.Truthy() {
		return left, nil
	}
	return Eval(n.Right, frame)
}

func evalNot(n *ast.NotExpr, frame *Frame) (Object, error) {
	v, err := Eval(n.Operand, frame)
	if err != nil {
		return nil, err
	}
	return NativeBool(!v.Truthy()), nil
}

func evalCond(n *ast.CondExpr, frame *Frame) (Object, error) {
	test, err := Eval(n.Test, frame)
	if err != nil {
		return nil, err
	}
	if test.Truthy() {
		return Eval(n.Body, frame)
	}
	return Eval(n.OrElse, frame)
}

func evalUnary(n *ast.UnaryExpr, frame *Frame) (Object, error) {
	v, err := Eval(n.Operand, frame)
	if err != nil {
		return nil, err
	}
	f, ok := numeric(v)
	if !ok {
		return nil, raise(KindTypeError, "bad operand type for unary %s: '%s'", n.Op, v.Type())
	}
	if n.Op == "-" {
		f = -f
	}
	if i, isInt := v.(*Int); isInt {
		if n.Op == "-" {
			return &Int{Value: -i.Value}, nil
		}
		return i, nil
	}
	return &Float{Value: f}, nil
}

// evalComparison implements the left-to-right short-circuiting chain:
// given a op1 b op2 c, compute a and b, test a op1 b; on failure return
// False without evaluating c, otherwise continue with b op2 c.
func evalComparison(n *ast.ComparisonExpr, frame *Frame) (Object, error) {
	left, err := Eval(n.Left, frame)
	if err != nil {
		return nil, err
	}
	for _, step := range n.Ops {
		right, err := Eval(step.Right, frame)
		if err != nil {
			return nil, err
		}
		ok, err := compareStep(step.Op, left, right)
		if err != nil {
			return nil, err
		}
		if !ok {
			return FalseObj, nil
		}
		left = right
	}
	return TrueObj, nil
}

func compareStep(op string, left, right Object) (bool, error) {
	switch op {
	case "==":
		return valueEquals(left, right), nil
	case "!=":
		return !valueEquals(left, right), nil
	case "<", ">", "<=", ">=":
		lf, lok := numeric(left)
		rf, rok := numeric(right)
		if !lok || !rok {
			return false, raise(KindTypeError, "'%s' not supported between instances of '%s' and '%s'", op, left.Type(), right.Type())
		}
		switch op {
		case "<":
			return lf < rf, nil
		case ">":
			return lf > rf, nil
		case "<=":
			return lf <= rf, nil
		default:
			return lf >= rf, nil
		}
	case "in", "not in":
		found, err := membership(left, right)
		if err != nil {
			return false, err
		}
		if op == "not in" {
			return !found, nil
		}
		return found, nil
	case "is", "is not":
		same, err := identical(left, right)
		if err != nil {
			return false, err
		}
		if op == "is not" {
			return !same, nil
		}
		return same, nil
	default:
		return false, raise(KindTypeError, "unknown comparison operator %q", op)
	}
}

// membership implements `in`: dict key presence, list/tuple/set element
// search by structural equality, and string substring search.
func membership(elem, container Object) (bool, error) {
	switch c := container.(type) {
	case *Dict:
		_, ok := c.Get(elem)
		return ok, nil
	case *Set:
		return c.Contains(elem), nil
	case *List:
		for _, e := range c.Elems {
			if valueEquals(e, elem) {
				return true, nil
			}
		}
		return false, nil
	case *Tuple:
		for _, e := range c.Elems {
			if valueEquals(e, elem) {
				return true, nil
			}
		}
		return false, nil
	case *Str:
		sub, ok := elem.(*Str)
		if !ok {
			return false, raise(KindTypeError, "'in <string>' requires string as left operand")
		}
		return containsSubstring(c.Value, sub.Value), nil
	default:
		return false, raise(KindTypeError, "argument of type '%s' is not iterable", container.Type())
	}
}

func containsSubstring(s, sub string) bool {
	if sub == "" {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// identical implements `is`: Go-level pointer identity for reference
// types, value equality for the None/Bool singletons, and a TypeError
// for value-typed kinds whose identity isn't meaningfully stable.
func identical(a, b Object) (bool, error) {
	switch av := a.(type) {
	case *None:
		_, ok := b.(*None)
		return ok, nil
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value, nil
	case *Class, *Instance, *Func, *BoundMethod, *Builtin, *Module:
		return a == b, nil
	default:
		return false, raise(KindTypeError, "identity comparison not supported for this type")
	}
}

// valueEquals implements `==`: structural equality for scalars,
// element-wise for tuples/lists, by-entry for dicts, by-membership for
// sets, and identity for the remaining reference types.
func valueEquals(a, b Object) bool {
	switch av := a.(type) {
	case *None:
		_, ok := b.(*None)
		return ok
	case *Bool:
		bv, ok := b.(*Bool)
		return ok && av.Value == bv.Value
	case *Int, *Float:
		af, aok := numeric(a)
		bf, bok := numeric(b)
		return aok && bok && af == bf
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Value == bv.Value
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !valueEquals(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !valueEquals(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, kv := range av.Items() {
			other, ok := bv.Get(kv[0])
			if !ok || !valueEquals(kv[1], other) {
				return false
			}
		}
		return true
	case *Set:
		bv, ok := b.(*Set)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, e := range av.Elems() {
			if !bv.Contains(e) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func evalBinary(n *ast.BinaryExpr, frame *Frame) (Object, error) {
	left, err := Eval(n.Left, frame)
	if err != nil {
		return nil, err
	}
	right, err := Eval(n.Right, frame)
	if err != nil {
		return nil, err
	}
	return applyBinaryOp(n.Op, left, right)
}

// applyBinaryOp implements +, -, *, /, % (numeric) and |, & (integer),
// shared between plain BinaryExpr evaluation and augmented assignment.
func applyBinaryOp(op string, left, right Object) (Object, error) {
	switch op {
	case "|", "&":
		li, lok := left.(*Int)
		ri, rok := right.(*Int)
		if !lok || !rok {
			return nil, raise(KindTypeError, "unsupported operand type(s) for %s: '%s' and '%s'", op, left.Type(), right.Type())
		}
		if op == "|" {
			return &Int{Value: li.Value | ri.Value}, nil
		}
		return &Int{Value: li.Value & ri.Value}, nil
	}

	if li, ri, ok := bothInt(left, right); ok {
		switch op {
		case "+":
			return &Int{Value: li + ri}, nil
		case "-":
			return &Int{Value: li - ri}, nil
		case "*":
			return &Int{Value: li * ri}, nil
		case "/":
			if ri == 0 {
				return nil, raise(KindValueError, "division by zero")
			}
			return &Float{Value: float64(li) / float64(ri)}, nil
		case "%":
			if ri == 0 {
				return nil, raise(KindValueError, "integer division or modulo by zero")
			}
			return &Int{Value: li % ri}, nil
		}
	}

	lf, lok := numeric(left)
	rf, rok := numeric(right)
	if !lok || !rok {
		return nil, raise(KindTypeError, "unsupported operand type(s) for %s: '%s' and '%s'", op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		return &Float{Value: lf + rf}, nil
	case "-":
		return &Float{Value: lf - rf}, nil
	case "*":
		return &Float{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, raise(KindValueError, "division by zero")
		}
		return &Float{Value: lf / rf}, nil
	case "%":
		if rf == 0 {
			return nil, raise(KindValueError, "division by zero")
		}
		return &Float{Value: mod(lf, rf)}, nil
	default:
		return nil, raise(KindTypeError, "unknown binary operator %q", op)
	}
}

func mod(a, b float64) float64 {
	r := a - b*float64(int64(a/b))
	return r
}
