package evaluator

import (
	"fmt"
	"io"
	"strings"
)

// NewBuiltins constructs the builtin-name table seeded into every
// execution's outermost frame. print writes to out, the one place in
// the evaluator that performs I/O.
func NewBuiltins(out io.Writer) map[string]Object {
	builtins := make(map[string]Object)
	reg := func(name string, fn BuiltinFn) {
		builtins[name] = &Builtin{Name: name, Fn: fn}
	}

	reg("print", func(args []Object) (Object, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return NoneObj, nil
	})

	reg("len", builtinLen)
	reg("slice", builtinSlice)
	reg("del", builtinDel)
	reg("range", builtinRange)
	reg("hasattr", builtinHasattr)
	reg("chr", builtinChr)
	reg("ord", builtinOrd)

	return builtins
}

func builtinLen(args []Object) (Object, error) {
	if len(args) != 1 {
		return nil, raise(KindTypeError, "len() takes exactly one argument")
	}
	switch v := args[0].(type) {
	case *Str:
		return &Int{Value: int64(len([]rune(v.Value)))}, nil
	case *Tuple:
		return &Int{Value: int64(len(v.Elems))}, nil
	case *List:
		return &Int{Value: int64(len(v.Elems))}, nil
	case *Dict:
		return &Int{Value: int64(v.Len())}, nil
	case *Set:
		return &Int{Value: int64(v.Len())}, nil
	default:
		return nil, raise(KindTypeError, "object of type '%s' has no len()", args[0].Type())
	}
}

// builtinSlice builds the (start, stop, step) triple used to represent
// a slice. The parser's subscript desugaring only ever supplies
// (start, stop), leaving step as None, but slice() is also a seeded
// builtin a script can call directly with all three arguments.
func builtinSlice(args []Object) (Object, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, raise(KindTypeError, "slice() takes 2 or 3 arguments")
	}
	var step Object = NoneObj
	if len(args) == 3 {
		step = args[2]
	}
	return &Tuple{Elems: []Object{args[0], args[1], step}}, nil
}

func builtinDel(args []Object) (Object, error) {
	if len(args) != 2 {
		return nil, raise(KindTypeError, "del() takes exactly 2 arguments")
	}
	switch c := args[0].(type) {
	case *Dict:
		if !c.Delete(args[1]) {
			return nil, raise(KindKeyError, "key not found")
		}
		return NoneObj, nil
	case *List:
		if tup, ok := args[1].(*Tuple); ok && len(tup.Elems) == 3 {
			length := len(c.Elems)
			start := clamp(sliceBound(tup.Elems[0], 0, length), length)
			stop := clamp(sliceBound(tup.Elems[1], length, length), length)
			if start > stop {
				start = stop
			}
			c.Elems = append(c.Elems[:start], c.Elems[stop:]...)
			return NoneObj, nil
		}
		i, ok := args[1].(*Int)
		if !ok {
			return nil, raise(KindTypeError, "list index must be an integer")
		}
		at, err := wrapIndex(i.Value, len(c.Elems))
		if err != nil {
			return nil, err
		}
		c.Elems = append(c.Elems[:at], c.Elems[at+1:]...)
		return NoneObj, nil
	default:
		return nil, raise(KindTypeError, "'%s' object does not support item deletion", args[0].Type())
	}
}

func builtinRange(args []Object) (Object, error) {
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, ok := args[0].(*Int)
		if !ok {
			return nil, raise(KindValueError, "range() argument must be an integer")
		}
		stop = n.Value
	case 2, 3:
		a, aok := args[0].(*Int)
		b, bok := args[1].(*Int)
		if !aok || !bok {
			return nil, raise(KindValueError, "range() arguments must be integers")
		}
		start, stop = a.Value, b.Value
		if len(args) == 3 {
			s, ok := args[2].(*Int)
			if !ok {
				return nil, raise(KindValueError, "range() arguments must be integers")
			}
			step = s.Value
		}
	default:
		return nil, raise(KindTypeError, "range() takes 1 to 3 arguments")
	}
	if step == 0 {
		return nil, raise(KindValueError, "range() arg 3 must not be zero")
	}
	var elems []Object
	if step > 0 {
		for v := start; v < stop; v += step {
			elems = append(elems, &Int{Value: v})
		}
	} else {
		for v := start; v > stop; v += step {
			elems = append(elems, &Int{Value: v})
		}
	}
	return &List{Elems: elems}, nil
}

func builtinHasattr(args []Object) (Object, error) {
	if len(args) != 2 {
		return nil, raise(KindTypeError, "hasattr() takes exactly 2 arguments")
	}
	switch c := args[0].(type) {
	case *Dict:
		_, ok := c.Get(args[1])
		return NativeBool(ok), nil
	case *Module:
		name, ok := args[1].(*Str)
		if !ok {
			return FalseObj, nil
		}
		_, found := c.GetAttr(name.Value)
		return NativeBool(found), nil
	case *List:
		i, ok := args[1].(*Int)
		if !ok {
			return FalseObj, nil
		}
		idx := int(i.Value)
		if idx < 0 {
			idx += len(c.Elems)
		}
		return NativeBool(idx >= 0 && idx < len(c.Elems)), nil
	case *Instance:
		name, ok := args[1].(*Str)
		if !ok {
			return FalseObj, nil
		}
		_, found := c.GetAttr(name.Value)
		return NativeBool(found), nil
	default:
		return nil, raise(KindTypeError, "hasattr() unsupported for type '%s'", args[0].Type())
	}
}

func builtinChr(args []Object) (Object, error) {
	if len(args) != 1 {
		return nil, raise(KindTypeError, "chr() takes exactly one argument")
	}
	n, ok := args[0].(*Int)
	if !ok {
		return nil, raise(KindTypeError, "chr() requires an integer argument")
	}
	return &Str{Value: string(rune(n.Value))}, nil
}

func builtinOrd(args []Object) (Object, error) {
	if len(args) != 1 {
		return nil, raise(KindTypeError, "ord() takes exactly one argument")
	}
	s, ok := args[0].(*Str)
	if !ok {
		return nil, raise(KindTypeError, "ord() requires a string argument")
	}
	runes := []rune(s.Value)
	if len(runes) != 1 {
		return nil, raise(KindTypeError, "ord() expected a character, got a string of length %d", len(runes))
	}
	return &Int{Value: int64(runes[0])}, nil
}
