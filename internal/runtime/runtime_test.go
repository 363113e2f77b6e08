package runtime_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/internal/config"
	"github.com/smython-lang/smython/internal/runtime"
)

func TestExecuteReturnsFinalValue(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(config.Default(), &out)
	result, err := rt.Execute(context.Background(), "1 + 2\n")
	require.NoError(t, err)
	require.Equal(t, "3", result.String())
}

func TestExecuteWritesPrintOutput(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(config.Default(), &out)
	_, err := rt.Execute(context.Background(), "print('hi')\n")
	require.NoError(t, err)
	require.Equal(t, "hi\n", out.String())
}

func TestExecuteSyntaxErrorDoesNotPanic(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(config.Default(), &out)
	_, err := rt.Execute(context.Background(), "def (:\n")
	require.Error(t, err)
}

func TestExecuteSharesGlobalsAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(config.Default(), &out)
	_, err := rt.Execute(context.Background(), "x = 1\n")
	require.NoError(t, err)
	result, err := rt.Execute(context.Background(), "x + 1\n")
	require.NoError(t, err)
	require.Equal(t, "2", result.String())
}

func TestExecuteRespectsCancelledContext(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(config.Default(), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rt.Execute(ctx, "x = 1\ny = 2\n")
	require.Error(t, err)
}

func TestExecuteRespectsTimeout(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(config.Default(), &out)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	_, err := rt.Execute(ctx, "x = 1\ny = 2\n")
	require.Error(t, err)
}

func TestImportModuleResolvesVirtualModule(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(config.Default(), &out)
	mod, err := rt.ImportModule("os")
	require.NoError(t, err)
	require.Equal(t, "os", mod.Name)
}

func TestEachRuntimeHasUniqueSessionID(t *testing.T) {
	a := runtime.New(config.Default(), &bytes.Buffer{})
	b := runtime.New(config.Default(), &bytes.Buffer{})
	require.NotEqual(t, a.SessionID, b.SessionID)
}

func TestImportResolvesFileBackedModuleFromConfiguredPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "helpers.smy"), []byte("value = 99\n"), 0o644))

	cfg := config.Default()
	cfg.ModulePaths = []string{dir}

	var out bytes.Buffer
	rt := runtime.New(cfg, &out)
	result, err := rt.Execute(context.Background(), "import helpers\nhelpers.value\n")
	require.NoError(t, err)
	require.Equal(t, "99", result.String())
}
