package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/pkg/cli"
)

func TestReplEchoesExpressionResults(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("1 + 2\n"))
	cmd.SetArgs([]string{"repl"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "3")
}

func TestReplRunsMultilineSuite(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("def double(n):\n    return n * 2\n\ndouble(21)\n"))
	cmd.SetArgs([]string{"repl"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "42")
}
