package evaluator

import (
	"strings"

	"github.com/smython-lang/smython/internal/ast"
)

// Func is a user-defined function: its parameter list, body, and the
// frame it closed over at def time.
type Func struct {
	Name    string
	Params  []ast.Param
	Body    ast.Suite
	Closure *Frame
}

func (f *Func) Type() ObjectType { return FuncType }
func (f *Func) Truthy() bool     { return true }
func (f *Func) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		n := p.Name
		if p.Star {
			n = "*" + n
		}
		names[i] = n
	}
	return "<function " + f.Name + "(" + strings.Join(names, ", ") + ")>"
}

// BuiltinFn is the Go signature every host builtin implements.
type BuiltinFn func(args []Object) (Object, error)

// Builtin wraps a host-implemented callable, the equivalent of the
// teacher's Object-returning native functions registered in builtins.go.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (b *Builtin) Type() ObjectType { return BuiltinType }
func (b *Builtin) Truthy() bool     { return true }
func (b *Builtin) String() string   { return "<built-in function " + b.Name + ">" }

// BoundMethod pairs a receiver instance with the Func looked up from
// its class, materialized lazily on attribute access.
type BoundMethod struct {
	Receiver Object
	Func     *Func
}

func (m *BoundMethod) Type() ObjectType { return BoundType }
func (m *BoundMethod) Truthy() bool     { return true }
func (m *BoundMethod) String() string {
	return "<bound method " + m.Func.Name + " of " + m.Receiver.String() + ">"
}
