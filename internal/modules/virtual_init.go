package modules

import "github.com/smython-lang/smython/internal/evaluator"

// virtualModules is the table of built-in module constructors, table-
// driven the way the teacher's virtual_packages_*.go tables its own
// built-ins, split the same way across one file per related group:
// virtual_sys.go, virtual_os.go, virtual_random.go, virtual_misc.go.
var virtualModules = map[string]func() *evaluator.Module{}

func registerVirtualModule(name string, ctor func() *evaluator.Module) {
	virtualModules[name] = ctor
}

// builtinFunc is a small helper shared by the virtual module files for
// installing a host callable as a module attribute.
func builtinFunc(name string, fn evaluator.BuiltinFn) *evaluator.Builtin {
	return &evaluator.Builtin{Name: name, Fn: fn}
}
