package evaluator

import "github.com/smython-lang/smython/internal/ast"

func evalDef(n *ast.DefStmt, frame *Frame) (Object, error) {
	fn := &Func{Name: n.Name, Params: n.Params, Body: n.Body, Closure: frame}
	frame.Bind(n.Name, fn)
	return NoneObj, nil
}

// evalClass evaluates the superclass expression, binds the class name
// before the body runs (so a class that refers to itself, e.g. inside
// a method, sees the binding), then runs the body in a frame whose
// locals map IS the class's member dict: every top-level assignment,
// including `def`, lands directly in Members.
func evalClass(n *ast.ClassStmt, frame *Frame) (Object, error) {
	var super *Class
	if n.SuperExpr != nil {
		superVal, err := Eval(n.SuperExpr, frame)
		if err != nil {
			return nil, err
		}
		if _, isNone := superVal.(*None); !isNone {
			sc, ok := superVal.(*Class)
			if !ok {
				return nil, raise(KindTypeError, "superclass must be None or a class")
			}
			super = sc
		}
	}
	class := NewClass(n.Name, super)
	frame.Bind(n.Name, class)

	bodyFrame := &Frame{parent: frame, locals: class.Members, globals: frame.globals, builtins: frame.builtins, importer: frame.importer}
	if _, err := evalSuite(n.Body, bodyFrame); err != nil {
		return nil, err
	}
	return class, nil
}

func evalReturn(n *ast.ReturnStmt, frame *Frame) (Object, error) {
	if n.Expr == nil {
		return nil, &returnSignal{Value: NoneObj}
	}
	v, err := Eval(n.Expr, frame)
	if err != nil {
		return nil, err
	}
	return nil, &returnSignal{Value: v}
}

func evalRaise(n *ast.RaiseStmt, frame *Frame) (Object, error) {
	v, err := Eval(n.Expr, frame)
	if err != nil {
		return nil, err
	}
	return nil, &raiseSignal{Value: v}
}

func evalAssert(n *ast.AssertStmt, frame *Frame) (Object, error) {
	v, err := Eval(n.Expr, frame)
	if err != nil {
		return nil, err
	}
	if v.Truthy() {
		return NoneObj, nil
	}
	if n.Msg == nil {
		return nil, raise(KindAssertionError, "")
	}
	msgVal, err := Eval(n.Msg, frame)
	if err != nil {
		return nil, err
	}
	return nil, raise(KindAssertionError, "%s", msgVal.String())
}

func evalAssign(n *ast.AssignStmt, frame *Frame) (Object, error) {
	v, err := Eval(n.RHS, frame)
	if err != nil {
		return nil, err
	}
	if err := assignTo(n.LHS, v, frame); err != nil {
		return nil, err
	}
	return NoneObj, nil
}

func evalAugAssign(n *ast.AugAssignStmt, frame *Frame) (Object, error) {
	left, err := Eval(n.LHS, frame)
	if err != nil {
		return nil, err
	}
	if _, isIndex := n.LHS.(*ast.IndexExpr); isIndex {
		return nil, raise(KindTypeError, "augmented assignment to an indexed target is not supported")
	}
	right, err := Eval(n.RHS, frame)
	if err != nil {
		return nil, err
	}
	combined, err := applyBinaryOp(n.Op, left, right)
	if err != nil {
		return nil, err
	}
	if err := assignTo(n.LHS, combined, frame); err != nil {
		return nil, err
	}
	return NoneObj, nil
}

// attrTarget is implemented by every Object that supports attribute
// assignment: instances, classes, and modules.
type attrTarget interface {
	SetAttr(name string, value Object)
}

// assignTo implements `lhs.assign(frame, value)` for the assignable
// expression forms: Var, Attr, Tuple destructuring. Index targets are
// grammatically assignable but rejected at runtime per the error
// handling design.
func assignTo(target ast.Expr, value Object, frame *Frame) error {
	switch t := target.(type) {
	case *ast.VarExpr:
		frame.Set(t.Name, value)
		return nil
	case *ast.AttrExpr:
		obj, err := Eval(t.Obj, frame)
		if err != nil {
			return err
		}
		setter, ok := obj.(attrTarget)
		if !ok {
			return raise(KindAttributeError, "'%s' object has no settable attributes", obj.Type())
		}
		setter.SetAttr(t.Name, value)
		return nil
	case *ast.IndexExpr:
		return raise(KindTypeError, "index assignment is not supported")
	case *ast.TupleExpr:
		elems, err := iterableElems(value)
		if err != nil {
			return err
		}
		if len(elems) < len(t.Elems) {
			return raise(KindValueError, "not enough values to unpack")
		}
		if len(elems) > len(t.Elems) {
			return raise(KindValueError, "too many values to unpack")
		}
		for i, sub := range t.Elems {
			if err := assignTo(sub, elems[i], frame); err != nil {
				return err
			}
		}
		return nil
	default:
		return raise(KindTypeError, "cannot assign to this expression")
	}
}

// importModule resolves name through the frame's owning runtime.
func importModule(frame *Frame, name string) (*Module, error) {
	if frame.importer == nil {
		return nil, raise(KindImportError, "no module loader configured for '%s'", name)
	}
	mod, err := frame.importer.ImportModule(name)
	if err != nil {
		return nil, raise(KindImportError, "%s", err.Error())
	}
	return mod, nil
}

func evalImportName(n *ast.ImportNameStmt, frame *Frame) (Object, error) {
	for _, name := range n.Names {
		mod, err := importModule(frame, name)
		if err != nil {
			return nil, err
		}
		frame.Set(name, mod)
	}
	return NoneObj, nil
}

func evalFromImport(n *ast.FromImportStmt, frame *Frame) (Object, error) {
	mod, err := importModule(frame, n.Module)
	if err != nil {
		return nil, err
	}
	if n.ImportAll {
		for name, val := range mod.Globals {
			frame.Set(name, val)
		}
		return NoneObj, nil
	}
	for _, name := range n.Names {
		v, ok := mod.GetAttr(name)
		if !ok {
			return nil, raise(KindImportError, "cannot import name '%s' from '%s'", name, n.Module)
		}
		frame.Set(name, v)
	}
	return NoneObj, nil
}
