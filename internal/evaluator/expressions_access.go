package evaluator

import "github.com/smython-lang/smython/internal/ast"

// attrGetter is implemented by every Object that supports attribute
// read access: instances, classes, and modules.
type attrGetter interface {
	GetAttr(name string) (Object, bool)
}

func evalAttr(n *ast.AttrExpr, frame *Frame) (Object, error) {
	obj, err := Eval(n.Obj, frame)
	if err != nil {
		return nil, err
	}
	getter, ok := obj.(attrGetter)
	if !ok {
		return nil, raise(KindAttributeError, "'%s' object has no attribute '%s'", obj.Type(), n.Name)
	}
	v, ok := getter.GetAttr(n.Name)
	if !ok {
		return nil, raise(KindAttributeError, "'%s' object has no attribute '%s'", obj.Type(), n.Name)
	}
	return v, nil
}

func evalIndex(n *ast.IndexExpr, frame *Frame) (Object, error) {
	left, err := Eval(n.Left, frame)
	if err != nil {
		return nil, err
	}
	idx, err := Eval(n.Right, frame)
	if err != nil {
		return nil, err
	}
	return indexGet(left, idx)
}

func indexGet(container, idx Object) (Object, error) {
	if d, ok := container.(*Dict); ok {
		v, found := d.Get(idx)
		if !found {
			return NoneObj, nil
		}
		return v, nil
	}
	if tup, ok := idx.(*Tuple); ok && len(tup.Elems) == 3 {
		return sliceGet(container, tup.Elems[0], tup.Elems[1], tup.Elems[2])
	}
	i, ok := idx.(*Int)
	if !ok {
		return nil, raise(KindTypeError, "indices must be integers, not '%s'", idx.Type())
	}
	switch c := container.(type) {
	case *Str:
		runes := []rune(c.Value)
		at, err := wrapIndex(i.Value, len(runes))
		if err != nil {
			return nil, err
		}
		return &Str{Value: string(runes[at])}, nil
	case *Tuple:
		at, err := wrapIndex(i.Value, len(c.Elems))
		if err != nil {
			return nil, err
		}
		return c.Elems[at], nil
	case *List:
		at, err := wrapIndex(i.Value, len(c.Elems))
		if err != nil {
			return nil, err
		}
		return c.Elems[at], nil
	default:
		return nil, raise(KindTypeError, "'%s' object is not subscriptable", container.Type())
	}
}

func wrapIndex(i int64, length int) (int, error) {
	idx := int(i)
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, raise(KindIndexError, "index out of range")
	}
	return idx, nil
}

// sliceGet implements subscripting by a 3-element (start, stop, step)
// tuple, the form the parser desugars `a[start:stop]` into. step other
// than None is not implemented by this dialect's grammar.
func sliceGet(container, startObj, stopObj, stepObj Object) (Object, error) {
	if _, isNone := stepObj.(*None); !isNone {
		return nil, raise(KindTypeError, "slice step is not supported")
	}

	var length int
	switch c := container.(type) {
	case *Str:
		length = len([]rune(c.Value))
	case *Tuple:
		length = len(c.Elems)
	case *List:
		length = len(c.Elems)
	default:
		return nil, raise(KindTypeError, "'%s' object is not subscriptable", container.Type())
	}

	start := clamp(sliceBound(startObj, 0, length), length)
	stop := clamp(sliceBound(stopObj, length, length), length)
	if start > stop {
		start = stop
	}

	switch c := container.(type) {
	case *Str:
		runes := []rune(c.Value)
		return &Str{Value: string(runes[start:stop])}, nil
	case *Tuple:
		elems := append([]Object{}, c.Elems[start:stop]...)
		return &Tuple{Elems: elems}, nil
	case *List:
		elems := append([]Object{}, c.Elems[start:stop]...)
		return &List{Elems: elems}, nil
	}
	return NoneObj, nil
}

// sliceBound resolves one slice endpoint: None means defaultVal,
// otherwise a negative index wraps relative to length.
func sliceBound(v Object, defaultVal, length int) int {
	if _, isNone := v.(*None); isNone {
		return defaultVal
	}
	i, ok := v.(*Int)
	if !ok {
		return defaultVal
	}
	idx := int(i.Value)
	if idx < 0 {
		idx += length
	}
	return idx
}

func clamp(v, length int) int {
	if v < 0 {
		return 0
	}
	if v > length {
		return length
	}
	return v
}

func evalCall(n *ast.CallExpr, frame *Frame) (Object, error) {
	callee, err := Eval(n.Callee, frame)
	if err != nil {
		return nil, err
	}
	args, err := evalExprList(n.Args, frame)
	if err != nil {
		return nil, err
	}
	return callObject(callee, args)
}

func callObject(callee Object, args []Object) (Object, error) {
	switch fn := callee.(type) {
	case *Func:
		return callFunc(fn, args)
	case *Builtin:
		return fn.Fn(args)
	case *BoundMethod:
		return callFunc(fn.Func, append([]Object{fn.Receiver}, args...))
	case *Class:
		return callClass(fn, args)
	default:
		return nil, raise(KindTypeError, "'%s' object is not callable", callee.Type())
	}
}

func callFunc(fn *Func, args []Object) (Object, error) {
	child := NewChildFrame(fn.Closure)
	if err := bindParams(fn, args, child); err != nil {
		return nil, err
	}
	return evaluateAsFunc(fn.Body, child)
}

// bindParams binds args positionally onto fn's parameter list in
// child's own locals. A trailing `*rest` parameter collects any
// remaining arguments into a tuple (empty if none); otherwise missing
// trailing arguments fall back to their default expressions, evaluated
// in the function's defining frame, and excess arguments are an error.
func bindParams(fn *Func, args []Object, child *Frame) error {
	params := fn.Params
	for i, p := range params {
		if p.Star {
			var rest []Object
			if i < len(args) {
				rest = append(rest, args[i:]...)
			}
			child.Bind(p.Name, &Tuple{Elems: rest})
			return nil
		}
		if i < len(args) {
			child.Bind(p.Name, args[i])
			continue
		}
		if p.Default != nil {
			v, err := Eval(p.Default, fn.Closure)
			if err != nil {
				return err
			}
			child.Bind(p.Name, v)
			continue
		}
		return raise(KindTypeError, "%s() missing required positional argument: '%s'", fn.Name, p.Name)
	}
	hasStar := len(params) > 0 && params[len(params)-1].Star
	if !hasStar && len(args) > len(params) {
		return raise(KindTypeError, "%s() takes %d positional argument(s) but %d were given", fn.Name, len(params), len(args))
	}
	return nil
}

// callClass constructs a fresh Instance and, if the class (or one of
// its ancestors) defines __init__, invokes it with the instance bound
// as the first argument.
func callClass(cls *Class, args []Object) (Object, error) {
	inst := NewInstance(cls)
	if initVal, ok := cls.GetAttr("__init__"); ok {
		initFn, ok := initVal.(*Func)
		if !ok {
			return nil, raise(KindTypeError, "__init__ is not callable")
		}
		callArgs := append([]Object{Object(inst)}, args...)
		if _, err := callFunc(initFn, callArgs); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
