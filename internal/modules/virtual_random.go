package modules

import (
	"math/rand"

	"github.com/smython-lang/smython/internal/evaluator"
)

func init() {
	registerVirtualModule("random", newRandomModule)
}

// newRandomModule builds the `random` stub: seed() and randint() wrap
// a single *rand.Rand owned by this module instance, so seeding it
// makes subsequent randint() calls within the same execution
// reproducible.
func newRandomModule() *evaluator.Module {
	mod := evaluator.NewModule("random")
	src := rand.New(rand.NewSource(1))

	mod.SetAttr("seed", builtinFunc("seed", func(args []evaluator.Object) (evaluator.Object, error) {
		if len(args) != 1 {
			return nil, evaluator.Raise(evaluator.KindTypeError, "seed() takes exactly one argument")
		}
		n, ok := args[0].(*evaluator.Int)
		if !ok {
			return nil, evaluator.Raise(evaluator.KindTypeError, "seed() requires an integer argument")
		}
		src = rand.New(rand.NewSource(n.Value))
		return evaluator.NoneObj, nil
	}))

	mod.SetAttr("randint", builtinFunc("randint", func(args []evaluator.Object) (evaluator.Object, error) {
		if len(args) != 2 {
			return nil, evaluator.Raise(evaluator.KindTypeError, "randint() takes exactly 2 arguments")
		}
		lo, lok := args[0].(*evaluator.Int)
		hi, hok := args[1].(*evaluator.Int)
		if !lok || !hok {
			return nil, evaluator.Raise(evaluator.KindTypeError, "randint() requires integer arguments")
		}
		if hi.Value < lo.Value {
			return nil, evaluator.Raise(evaluator.KindTypeError, "randint() requires lo <= hi")
		}
		return &evaluator.Int{Value: lo.Value + src.Int63n(hi.Value-lo.Value+1)}, nil
	}))

	return mod
}
