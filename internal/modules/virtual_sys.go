package modules

import "github.com/smython-lang/smython/internal/evaluator"

func init() {
	registerVirtualModule("sys", newSysModule)
}

// newSysModule builds the `sys` stub: a `modules` dict (the teacher's
// precedent is an empty stand-in table, populated here with nothing
// since this Loader doesn't expose its private cache outward).
func newSysModule() *evaluator.Module {
	mod := evaluator.NewModule("sys")
	mod.SetAttr("modules", evaluator.NewDict())
	return mod
}
