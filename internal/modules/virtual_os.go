package modules

import (
	"os"
	"os/user"

	"github.com/smython-lang/smython/internal/evaluator"
)

func init() {
	registerVirtualModule("os", newOSModule)
}

// newOSModule builds the `os` stub: getlogin() and getpid() report
// real host values, the same way the teacher's thin OS-facing
// built-ins pass straight through to the Go standard library rather
// than faking them.
func newOSModule() *evaluator.Module {
	mod := evaluator.NewModule("os")
	mod.SetAttr("getlogin", builtinFunc("getlogin", func(args []evaluator.Object) (evaluator.Object, error) {
		if u, err := user.Current(); err == nil && u.Username != "" {
			return &evaluator.Str{Value: u.Username}, nil
		}
		return &evaluator.Str{Value: os.Getenv("USER")}, nil
	}))
	mod.SetAttr("getpid", builtinFunc("getpid", func(args []evaluator.Object) (evaluator.Object, error) {
		return &evaluator.Int{Value: int64(os.Getpid())}, nil
	}))
	return mod
}
