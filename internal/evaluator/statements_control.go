package evaluator

import "github.com/smython-lang/smython/internal/ast"

func evalIf(n *ast.IfStmt, frame *Frame) (Object, error) {
	test, err := Eval(n.Test, frame)
	if err != nil {
		return nil, err
	}
	if test.Truthy() {
		return evalSuite(n.Body, frame)
	}
	return evalSuite(n.ElseBody, frame)
}

func evalWhile(n *ast.WhileStmt, frame *Frame) (Object, error) {
	for {
		test, err := Eval(n.Test, frame)
		if err != nil {
			return nil, err
		}
		if !test.Truthy() {
			return evalSuite(n.ElseBody, frame)
		}
		_, err = evalSuite(n.Body, frame)
		if err != nil {
			if _, ok := err.(*breakSignal); ok {
				return NoneObj, nil
			}
			if _, ok := err.(*continueSignal); ok {
				continue
			}
			return nil, err
		}
	}
}

func evalFor(n *ast.ForStmt, frame *Frame) (Object, error) {
	iterVal, err := Eval(n.Iter, frame)
	if err != nil {
		return nil, err
	}
	elems, err := iterableElems(iterVal)
	if err != nil {
		return nil, err
	}
	for _, elem := range elems {
		if err := assignTo(n.Target, elem, frame); err != nil {
			return nil, err
		}
		_, err := evalSuite(n.Body, frame)
		if err != nil {
			if _, ok := err.(*breakSignal); ok {
				return NoneObj, nil
			}
			if _, ok := err.(*continueSignal); ok {
				continue
			}
			return nil, err
		}
	}
	return evalSuite(n.ElseBody, frame)
}

// iterableElems produces the element sequence a `for` loop (or a tuple
// unpack) walks: tuples/lists yield their elements, strings their
// one-rune substrings, dicts their (key, value) pairs, sets their
// members. Any other value raises TypeError.
func iterableElems(v Object) ([]Object, error) {
	switch c := v.(type) {
	case *Tuple:
		return c.Elems, nil
	case *List:
		return c.Elems, nil
	case *Set:
		return c.Elems(), nil
	case *Str:
		runes := []rune(c.Value)
		out := make([]Object, len(runes))
		for i, r := range runes {
			out[i] = &Str{Value: string(r)}
		}
		return out, nil
	case *Dict:
		items := c.Items()
		out := make([]Object, len(items))
		for i, kv := range items {
			out[i] = &Tuple{Elems: []Object{kv[0], kv[1]}}
		}
		return out, nil
	default:
		return nil, raise(KindTypeError, "'%s' object is not iterable", v.Type())
	}
}

func evalTryFinally(n *ast.TryFinallyStmt, frame *Frame) (Object, error) {
	result, bodyErr := evalSuite(n.Body, frame)
	_, finErr := evalSuite(n.FinallyBody, frame)
	if finErr != nil {
		return nil, finErr
	}
	if bodyErr != nil {
		return nil, bodyErr
	}
	return result, nil
}

// evalTryExcept runs Body, then ElseBody if nothing was raised. A raised
// value is matched against each clause in order by value equality with
// the clause's test (no type hierarchy); a clause without a test matches
// anything. The matching clause runs in a child frame that binds its
// capture name; with no match the raise propagates.
func evalTryExcept(n *ast.TryExceptStmt, frame *Frame) (Object, error) {
	_, bodyErr := evalSuite(n.Body, frame)
	if bodyErr == nil {
		return evalSuite(n.ElseBody, frame)
	}

	raised, ok := bodyErr.(*raiseSignal)
	if !ok {
		return nil, bodyErr
	}

	for _, clause := range n.Clauses {
		matches := clause.Test == nil
		if !matches {
			testVal, err := Eval(clause.Test, frame)
			if err != nil {
				return nil, err
			}
			matches = valueEquals(testVal, raised.Value)
		}
		if !matches {
			continue
		}
		child := NewChildFrame(frame)
		if clause.Name != "" {
			child.Bind(clause.Name, raised.Value)
		}
		return evalSuite(clause.Body, child)
	}
	return nil, bodyErr
}
