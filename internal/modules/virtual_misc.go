package modules

import "github.com/smython-lang/smython/internal/evaluator"

func init() {
	registerVirtualModule("curses", newCursesModule)
	registerVirtualModule("atexit", newAtexitModule)
	registerVirtualModule("copy", newCopyModule)
	registerVirtualModule("time", newTimeModule)
}

// newCursesModule builds the `curses` stub: a no-op `Window` class
// plus the handful of free functions a terminal-UI script typically
// calls at startup/teardown, none of which touch a real terminal here.
func newCursesModule() *evaluator.Module {
	mod := evaluator.NewModule("curses")
	window := evaluator.NewClass("Window", nil)
	mod.SetAttr("Window", window)
	noop := func(name string) *evaluator.Builtin {
		return builtinFunc(name, func(args []evaluator.Object) (evaluator.Object, error) {
			return evaluator.NoneObj, nil
		})
	}
	mod.SetAttr("initscr", noop("initscr"))
	mod.SetAttr("endwin", noop("endwin"))
	mod.SetAttr("echo", noop("echo"))
	mod.SetAttr("noecho", noop("noecho"))
	return mod
}

// newAtexitModule builds the `atexit` stub: register() accumulates
// callables on the module itself rather than actually scheduling them,
// since this interpreter has no process-exit hook to run them from.
func newAtexitModule() *evaluator.Module {
	mod := evaluator.NewModule("atexit")
	registered := &evaluator.List{}
	mod.SetAttr("register", builtinFunc("register", func(args []evaluator.Object) (evaluator.Object, error) {
		if len(args) != 1 {
			return nil, evaluator.Raise(evaluator.KindTypeError, "register() takes exactly one argument")
		}
		registered.Elems = append(registered.Elems, args[0])
		return args[0], nil
	}))
	return mod
}

// newCopyModule builds the `copy` stub: copy(x) returns a shallow
// structural copy for the mutable container kinds, and x itself for
// anything without a meaningful shallow copy.
func newCopyModule() *evaluator.Module {
	mod := evaluator.NewModule("copy")
	mod.SetAttr("copy", builtinFunc("copy", func(args []evaluator.Object) (evaluator.Object, error) {
		if len(args) != 1 {
			return nil, evaluator.Raise(evaluator.KindTypeError, "copy() takes exactly one argument")
		}
		return evaluator.ShallowCopy(args[0]), nil
	}))
	return mod
}

// newTimeModule builds the empty `time` stub named in the spec.
func newTimeModule() *evaluator.Module {
	return evaluator.NewModule("time")
}
