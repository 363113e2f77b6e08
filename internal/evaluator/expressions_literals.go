package evaluator

import "github.com/smython-lang/smython/internal/ast"

// evalLit converts a parsed literal's raw Go value into its Object
// form: LitExpr.Value is nil for None, bool for True/False, int64 or
// float64 for numbers (decided by the parser), and string for STRING
// tokens (already escape-decoded by the lexer).
func evalLit(n *ast.LitExpr) (Object, error) {
	switch v := n.Value.(type) {
	case nil:
		return NoneObj, nil
	case bool:
		return NativeBool(v), nil
	case int64:
		return &Int{Value: v}, nil
	case float64:
		return &Float{Value: v}, nil
	case string:
		return &Str{Value: v}, nil
	default:
		return nil, raise(KindTypeError, "unsupported literal value %#v", v)
	}
}

func evalTuple(n *ast.TupleExpr, frame *Frame) (Object, error) {
	elems, err := evalExprList(n.Elems, frame)
	if err != nil {
		return nil, err
	}
	return &Tuple{Elems: elems}, nil
}

func evalList(n *ast.ListExpr, frame *Frame) (Object, error) {
	elems, err := evalExprList(n.Elems, frame)
	if err != nil {
		return nil, err
	}
	return &List{Elems: elems}, nil
}

func evalDictLit(n *ast.DictExpr, frame *Frame) (Object, error) {
	d := NewDict()
	for i := range n.Keys {
		k, err := Eval(n.Keys[i], frame)
		if err != nil {
			return nil, err
		}
		v, err := Eval(n.Vals[i], frame)
		if err != nil {
			return nil, err
		}
		if !d.Set(k, v) {
			return nil, raise(KindTypeError, "unhashable type: '%s'", k.Type())
		}
	}
	return d, nil
}

func evalSetLit(n *ast.SetExpr, frame *Frame) (Object, error) {
	s := NewSet()
	for _, elemExpr := range n.Elems {
		v, err := Eval(elemExpr, frame)
		if err != nil {
			return nil, err
		}
		if !s.Add(v) {
			if _, ok := hashableKey(v); !ok {
				return nil, raise(KindTypeError, "unhashable type: '%s'", v.Type())
			}
		}
	}
	return s, nil
}

func evalExprList(exprs []ast.Expr, frame *Frame) ([]Object, error) {
	out := make([]Object, len(exprs))
	for i, e := range exprs {
		v, err := Eval(e, frame)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
