package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForOverListVisitsElementsInOrder(t *testing.T) {
	result, out := evalSource(t, "for x in [1, 2, 3]:\n    print(x)\ntotal = 0\n")
	require.Equal(t, "1\n2\n3\n", out)
	require.Equal(t, "None", result.String())
}

func TestForBreakSkipsElseCompletionRunsIt(t *testing.T) {
	result, _ := evalSource(t, "r = 0\nfor x in [1, 2, 3]:\n    if x == 2: break\nelse:\n    r = 1\nr\n")
	require.Equal(t, "0", result.String())

	result, _ = evalSource(t, "r = 0\nfor x in [1, 2, 3]:\n    pass\nelse:\n    r = 1\nr\n")
	require.Equal(t, "1", result.String())
}

func TestForOverNonIterableRaisesTypeError(t *testing.T) {
	err := evalSourceErr(t, "for x in 5:\n    pass\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "TypeError")
}
