package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/internal/evaluator"
	"github.com/smython-lang/smython/internal/lexer"
	"github.com/smython-lang/smython/internal/parser"
)

// evalSource parses and evaluates source against a fresh global frame
// seeded with the standard builtins, returning the final value and
// whatever print() wrote along the way.
func evalSource(t *testing.T, source string) (evaluator.Object, string) {
	t.Helper()
	suite, err := parser.New(lexer.New(source)).ParseProgram()
	require.NoError(t, err)

	var out bytes.Buffer
	frame := evaluator.NewGlobalFrame(evaluator.NewBuiltins(&out), nil)

	var result evaluator.Object = evaluator.NoneObj
	for _, stmt := range suite {
		result, err = evaluator.Eval(stmt, frame)
		require.NoError(t, err)
	}
	return result, out.String()
}

// evalSourceErr is evalSource for cases expecting a failed run; it
// returns the error instead of requiring success.
func evalSourceErr(t *testing.T, source string) error {
	t.Helper()
	suite, err := parser.New(lexer.New(source)).ParseProgram()
	require.NoError(t, err)

	var out bytes.Buffer
	frame := evaluator.NewGlobalFrame(evaluator.NewBuiltins(&out), nil)

	for _, stmt := range suite {
		if _, err := evaluator.Eval(stmt, frame); err != nil {
			return err
		}
	}
	return nil
}
