package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/pkg/cli"
)

func TestRunCommandPrintsOutput(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "hello.smy")
	require.NoError(t, os.WriteFile(script, []byte("print('hello')\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"run", script})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "hello\n", buf.String())
}

func TestRunCommandDumpAST(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "cond.smy")
	require.NoError(t, os.WriteFile(script, []byte("if True: pass\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"run", script, "--dump-ast"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "If")
}

func TestCheckCommandReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.smy"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.smy"), []byte("def (:\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"check", dir})

	err := cmd.Execute()
	_ = err
	require.Contains(t, errOut.String(), "bad.smy")
}
