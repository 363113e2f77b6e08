package evaluator

import "strconv"

// None is the sole instance of the None type; NoneObj is the value
// every part of the evaluator shares rather than allocating fresh Nones.
type None struct{}

func (n *None) Type() ObjectType { return NoneType }
func (n *None) String() string   { return "None" }
func (n *None) Truthy() bool     { return false }

// NoneObj is the process-wide None singleton.
var NoneObj = &None{}

// Bool wraps a boolean. TrueObj/FalseObj are the process-wide
// singletons so `is`/`is not` on booleans behaves like value equality.
type Bool struct{ Value bool }

func (b *Bool) Type() ObjectType { return BoolType }
func (b *Bool) Truthy() bool     { return b.Value }
func (b *Bool) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

var (
	TrueObj  = &Bool{Value: true}
	FalseObj = &Bool{Value: false}
)

// NativeBool returns the shared Bool singleton for a Go bool.
func NativeBool(v bool) *Bool {
	if v {
		return TrueObj
	}
	return FalseObj
}

// Int is a signed 64-bit integer value.
type Int struct{ Value int64 }

func (i *Int) Type() ObjectType { return IntType }
func (i *Int) String() string   { return strconv.FormatInt(i.Value, 10) }
func (i *Int) Truthy() bool     { return i.Value != 0 }

// Float is a 64-bit floating point value.
type Float struct{ Value float64 }

func (f *Float) Type() ObjectType { return FloatType }
func (f *Float) String() string   { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (f *Float) Truthy() bool     { return f.Value != 0 }

// Str is an immutable Unicode string value.
type Str struct{ Value string }

func (s *Str) Type() ObjectType { return StrType }
func (s *Str) String() string   { return s.Value }
func (s *Str) Truthy() bool     { return len(s.Value) > 0 }

// numeric projects a number-typed Object to a float64, for arithmetic
// and ordering comparisons that don't need to preserve int-vs-float.
func numeric(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case *Int:
		return float64(v.Value), true
	case *Float:
		return v.Value, true
	case *Bool:
		if v.Value {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// bothInt reports whether both operands are Int, the case where
// arithmetic should stay in the integer domain rather than promote to
// Float.
func bothInt(a, b Object) (int64, int64, bool) {
	ai, aok := a.(*Int)
	bi, bok := b.(*Int)
	if aok && bok {
		return ai.Value, bi.Value, true
	}
	return 0, 0, false
}
