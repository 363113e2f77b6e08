package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintWritesSpaceJoinedLine(t *testing.T) {
	_, out := evalSource(t, "print(1, 'two', 3)\n")
	require.Equal(t, "1 two 3\n", out)
}

func TestLenOnStringListDict(t *testing.T) {
	result, _ := evalSource(t, "len('abcd')\n")
	require.Equal(t, "4", result.String())

	result, _ = evalSource(t, "len([1, 2, 3])\n")
	require.Equal(t, "3", result.String())

	result, _ = evalSource(t, "len({1: 'a', 2: 'b'})\n")
	require.Equal(t, "2", result.String())
}

func TestRangeThreeForms(t *testing.T) {
	result, _ := evalSource(t, "range(3)\n")
	require.Equal(t, "[0, 1, 2]", result.String())

	result, _ = evalSource(t, "range(1, 4)\n")
	require.Equal(t, "[1, 2, 3]", result.String())

	result, _ = evalSource(t, "range(0, 10, 3)\n")
	require.Equal(t, "[0, 3, 6, 9]", result.String())
}

func TestDelRemovesListIndexAndDictKey(t *testing.T) {
	result, _ := evalSource(t, "a = [1, 2, 3]\ndel(a, 1)\na\n")
	require.Equal(t, "[1, 3]", result.String())

	result, _ = evalSource(t, "d = {1: 'a', 2: 'b'}\ndel(d, 1)\nd\n")
	require.Equal(t, "{2: 'b'}", result.String())
}

func TestDelMissingKeyRaisesKeyError(t *testing.T) {
	err := evalSourceErr(t, "d = {1: 'a'}\ndel(d, 2)\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "KeyError")
}

func TestHasattr(t *testing.T) {
	result, _ := evalSource(t, "hasattr([1, 2], 0)\n")
	require.Equal(t, "True", result.String())

	result, _ = evalSource(t, "hasattr({1: 'a'}, 2)\n")
	require.Equal(t, "False", result.String())
}

func TestChrAndOrdRoundTrip(t *testing.T) {
	result, _ := evalSource(t, "chr(ord('a'))\n")
	require.Equal(t, "a", result.String())
}

func TestSliceBuiltinFeedsIndexing(t *testing.T) {
	result, _ := evalSource(t, "[1, 2, 3, 4, 5][1:3]\n")
	require.Equal(t, "[2, 3]", result.String())

	result, _ = evalSource(t, "[1, 2, 3, 4, 5][:]\n")
	require.Equal(t, "[1, 2, 3, 4, 5]", result.String())
}

func TestSliceBuiltinAcceptsThirdArgument(t *testing.T) {
	result, _ := evalSource(t, "slice(1, 3, 2)\n")
	require.Equal(t, "(1, 3, 2)", result.String())

	result, _ = evalSource(t, "slice(1, 3)\n")
	require.Equal(t, "(1, 3, None)", result.String())
}
