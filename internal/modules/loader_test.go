package modules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/internal/evaluator"
	"github.com/smython-lang/smython/internal/modules"
)

func TestImportVirtualModule(t *testing.T) {
	loader := modules.NewLoader(t.TempDir(), evaluator.NewBuiltins(os.Stdout))
	mod, err := loader.ImportModule("sys")
	require.NoError(t, err)
	require.Equal(t, "sys", mod.Name)
	_, ok := mod.GetAttr("modules")
	require.True(t, ok)
}

func TestImportFileBackedModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greetings.smy"), []byte("greeting = 'hello'\n"), 0o644))

	loader := modules.NewLoader(dir, evaluator.NewBuiltins(os.Stdout))
	mod, err := loader.ImportModule("greetings")
	require.NoError(t, err)
	val, ok := mod.GetAttr("greeting")
	require.True(t, ok)
	require.Equal(t, "hello", val.String())
}

func TestImportFileBackedModuleIsCached(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "counter.smy"), []byte("n = 1\n"), 0o644))

	loader := modules.NewLoader(dir, evaluator.NewBuiltins(os.Stdout))
	first, err := loader.ImportModule("counter")
	require.NoError(t, err)
	second, err := loader.ImportModule("counter")
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestImportMissingModuleReturnsError(t *testing.T) {
	loader := modules.NewLoader(t.TempDir(), evaluator.NewBuiltins(os.Stdout))
	_, err := loader.ImportModule("does_not_exist")
	require.Error(t, err)
}

func TestRandomModuleSeedIsReproducible(t *testing.T) {
	loader := modules.NewLoader(t.TempDir(), evaluator.NewBuiltins(os.Stdout))
	mod, err := loader.ImportModule("random")
	require.NoError(t, err)

	seed, ok := mod.GetAttr("seed")
	require.True(t, ok)
	seedFn := seed.(*evaluator.Builtin)

	randint, ok := mod.GetAttr("randint")
	require.True(t, ok)
	randintFn := randint.(*evaluator.Builtin)

	_, err = seedFn.Fn([]evaluator.Object{&evaluator.Int{Value: 42}})
	require.NoError(t, err)
	first, err := randintFn.Fn([]evaluator.Object{&evaluator.Int{Value: 1}, &evaluator.Int{Value: 100}})
	require.NoError(t, err)

	_, err = seedFn.Fn([]evaluator.Object{&evaluator.Int{Value: 42}})
	require.NoError(t, err)
	second, err := randintFn.Fn([]evaluator.Object{&evaluator.Int{Value: 1}, &evaluator.Int{Value: 100}})
	require.NoError(t, err)

	require.Equal(t, first.String(), second.String())
}

func TestCopyModuleShallowCopiesList(t *testing.T) {
	loader := modules.NewLoader(t.TempDir(), evaluator.NewBuiltins(os.Stdout))
	mod, err := loader.ImportModule("copy")
	require.NoError(t, err)

	copyFn, ok := mod.GetAttr("copy")
	require.True(t, ok)
	fn := copyFn.(*evaluator.Builtin)

	original := &evaluator.List{Elems: []evaluator.Object{&evaluator.Int{Value: 1}}}
	result, err := fn.Fn([]evaluator.Object{original})
	require.NoError(t, err)

	cloned := result.(*evaluator.List)
	cloned.Elems[0] = &evaluator.Int{Value: 2}
	require.Equal(t, "1", original.Elems[0].String())
}
