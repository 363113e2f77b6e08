package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/internal/evaluator"
)

// TestWorkedExamples encodes the six concrete end-to-end scenarios as
// table cases, each asserting the repr of the final expression.
func TestWorkedExamples(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "factorial",
			source: "def fac(n):\n" +
				"    if n == 0: return 1\n" +
				"    return n * fac(n - 1)\n" +
				"fac(10)\n",
			want: "3628800",
		},
		{
			name:   "tuple unpacking",
			source: "a, b = 1, 2\n(b, a)\n",
			want:   "(2, 1)",
		},
		{
			name: "class with superclass and bound method",
			source: "class A:\n" +
				"    def greet(self): return 'hi'\n" +
				"class B(A): pass\n" +
				"B().greet()\n",
			want: "'hi'",
		},
		{
			name: "while/else",
			source: "i = 0\n" +
				"while i < 3:\n" +
				"    i = i + 1\n" +
				"else:\n" +
				"    i = -i\n" +
				"i\n",
			want: "-3",
		},
		{
			name: "try/except catches a raised value",
			source: "x = 0\n" +
				"try:\n" +
				"    raise 'e'\n" +
				"except 'e' as v:\n" +
				"    x = 1\n" +
				"x\n",
			want: "1",
		},
		{
			name:   "slice semantics",
			source: "'abcdef'[1:-1]\n",
			want:   "'bcde'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := evalSource(t, tt.source)
			require.Equal(t, tt.want, evaluator.Repr(result))
		})
	}
}
