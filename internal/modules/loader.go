// Package modules resolves `import`/`from ... import` against either a
// small table of virtual built-in modules or a directory of `.smy`
// source files, generalizing the teacher's directory-scanning,
// cache-populating Loader without its package-group/re-export/
// type-inference machinery (Smython modules are flat globals dicts,
// with no exports list to resolve).
package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smython-lang/smython/internal/evaluator"
	"github.com/smython-lang/smython/internal/lexer"
	"github.com/smython-lang/smython/internal/parser"
)

// Loader caches modules by name and satisfies evaluator.ModuleImporter.
type Loader struct {
	Dir      string // directory to search for `<name>.smy` files
	builtins map[string]evaluator.Object
	cache    map[string]*evaluator.Module
}

// NewLoader creates a Loader that resolves file-backed modules under
// dir and seeds virtual built-in modules into its cache up front.
func NewLoader(dir string, builtins map[string]evaluator.Object) *Loader {
	l := &Loader{Dir: dir, builtins: builtins, cache: make(map[string]*evaluator.Module)}
	for name, ctor := range virtualModules {
		l.cache[name] = ctor()
	}
	return l
}

// ImportModule implements evaluator.ModuleImporter: a cached virtual
// module, an already-loaded file module, or a freshly parsed and
// evaluated `.smy` file, in that order.
func (l *Loader) ImportModule(name string) (*evaluator.Module, error) {
	if mod, ok := l.cache[name]; ok {
		return mod, nil
	}
	mod, err := l.loadFile(name)
	if err != nil {
		return nil, err
	}
	l.cache[name] = mod
	return mod, nil
}

func (l *Loader) loadFile(name string) (*evaluator.Module, error) {
	path := filepath.Join(l.Dir, name+".smy")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("module '%s' not found: %w", name, err)
	}

	suite, err := parser.New(lexer.New(string(content))).ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("module '%s': %w", name, err)
	}

	mod := evaluator.NewModule(name)
	frame := evaluator.NewModuleFrame(mod.Globals, l.builtins, l)
	for _, stmt := range suite {
		if _, err := evaluator.Eval(stmt, frame); err != nil {
			return nil, fmt.Errorf("module '%s': %s", name, err.Error())
		}
	}
	return mod, nil
}
