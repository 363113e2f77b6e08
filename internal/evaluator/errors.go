package evaluator

import "fmt"

// ExceptionKind names the broad category of a raised error, following
// the error-kind vocabulary fixed by the error handling design.
type ExceptionKind string

const (
	KindSyntaxError    ExceptionKind = "SyntaxError"
	KindNameError      ExceptionKind = "NameError"
	KindTypeError      ExceptionKind = "TypeError"
	KindAttributeError ExceptionKind = "AttributeError"
	KindIndexError     ExceptionKind = "IndexError"
	KindKeyError       ExceptionKind = "KeyError"
	KindValueError     ExceptionKind = "ValueError"
	KindAssertionError ExceptionKind = "AssertionError"
	KindImportError    ExceptionKind = "ImportError"
)

// RuntimeError is a raised exception value: a kind plus a message,
// mirroring the teacher's *Error{Message string} Object and its
// newError helper one-for-one, minus the static-type-system baggage
// that doesn't apply here.
type RuntimeError struct {
	Kind    ExceptionKind
	Message string
}

func (e *RuntimeError) Type() ObjectType { return "error" }
func (e *RuntimeError) Truthy() bool     { return true }
func (e *RuntimeError) String() string   { return string(e.Kind) + ": " + e.Message }

// newError builds a RuntimeError of the given kind with a formatted
// message, the constructor every evaluator file reaches for instead of
// building *RuntimeError literals by hand.
func newError(kind ExceptionKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// breakSignal, continueSignal, returnSignal, and raiseSignal are the
// four control-flow unwinds Eval can produce as its error return.
// Exactly one enclosing construct is allowed to catch each kind; any
// other code that sees one simply propagates it upward unchanged.
type breakSignal struct{}

func (s *breakSignal) Error() string { return "break outside loop" }

type continueSignal struct{}

func (s *continueSignal) Error() string { return "continue outside loop" }

type returnSignal struct{ Value Object }

func (s *returnSignal) Error() string { return "return outside function" }

// raiseSignal carries a raised value up through Eval until a matching
// try/except clause catches it, or it reaches the top and becomes a
// visible uncaught error.
type raiseSignal struct{ Value Object }

func (s *raiseSignal) Error() string {
	if re, ok := s.Value.(*RuntimeError); ok {
		return re.String()
	}
	return "uncaught exception: " + s.Value.String()
}

// raise wraps a newError call directly as a *raiseSignal, the shape
// most evaluator call sites want when failing out of an operation.
func raise(kind ExceptionKind, format string, args ...interface{}) error {
	return &raiseSignal{Value: newError(kind, format, args...)}
}

// Raise is raise's exported form, for host packages (builtin modules,
// the CLI) that need to fail a call with a Smython-visible exception
// without reaching into evaluator internals.
func Raise(kind ExceptionKind, format string, args ...interface{}) error {
	return raise(kind, format, args...)
}
