// Package runtime wires together internal/evaluator, internal/modules,
// and internal/config into the single host-facing object embedders and
// pkg/cli actually hold: one builtins table, one module cache, and one
// top-level globals frame per Runtime, following the teacher's own
// evaluator.Evaluator as the thing cmd/funxy constructs once and drives
// per invocation.
package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/smython-lang/smython/internal/config"
	"github.com/smython-lang/smython/internal/evaluator"
	"github.com/smython-lang/smython/internal/lexer"
	"github.com/smython-lang/smython/internal/modules"
	"github.com/smython-lang/smython/internal/parser"
)

// Runtime owns everything a single Smython execution needs: the
// builtins table, the module loader and its cache, and the globals
// frame that `execute` evaluates top-level statements against.
type Runtime struct {
	SessionID string
	Config    config.Config

	out     io.Writer
	log     *slog.Logger
	loader  *modules.Loader
	globals *evaluator.Frame
}

// New builds a Runtime writing print() output to out and resolving
// file-backed module imports under cfg.ModulePaths[0].
func New(cfg config.Config, out io.Writer) *Runtime {
	sessionID := uuid.New().String()
	log := slog.Default().With("session_id", sessionID)

	dir := "."
	if len(cfg.ModulePaths) > 0 {
		dir = cfg.ModulePaths[0]
	}

	builtins := evaluator.NewBuiltins(out)
	loader := modules.NewLoader(dir, builtins)

	rt := &Runtime{
		SessionID: sessionID,
		Config:    cfg,
		out:       out,
		log:       log,
		loader:    loader,
	}
	rt.globals = evaluator.NewGlobalFrame(builtins, rt)
	return rt
}

// Execute parses and evaluates source against the Runtime's top-level
// globals frame, returning the last statement's value. ctx is checked
// for cancellation before running each top-level statement, so a
// long-running script can be aborted from outside the interpreter
// (host-level cancellation only; the language itself has none).
func (rt *Runtime) Execute(ctx context.Context, source string) (evaluator.Object, error) {
	suite, err := parser.New(lexer.New(source)).ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("syntax error: %w", err)
	}

	var result evaluator.Object = evaluator.NoneObj
	for _, stmt := range suite {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		result, err = evaluator.Eval(stmt, rt.globals)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ImportModule implements evaluator.ModuleImporter by delegating to
// the Runtime's Loader, so embedders driving execution through Runtime
// never touch internal/modules directly.
func (rt *Runtime) ImportModule(name string) (*evaluator.Module, error) {
	mod, err := rt.loader.ImportModule(name)
	if err != nil {
		rt.log.Warn("module resolution failed", "module", name, "error", err)
	}
	return mod, err
}

// CheckSyntax parses source without evaluating it, for `smython check`.
func CheckSyntax(source string) error {
	_, err := parser.New(lexer.New(source)).ParseProgram()
	return err
}

// ExecuteString is a convenience for one-shot callers: it runs
// source through a throwaway Runtime and captures print() output.
func ExecuteString(cfg config.Config, source string) (string, evaluator.Object, error) {
	var buf bytes.Buffer
	rt := New(cfg, &buf)
	result, err := rt.Execute(context.Background(), source)
	return buf.String(), result, err
}

// NewDefault builds a Runtime with config.Default() writing to stdout,
// the shape pkg/cli reaches for outside of flag-driven overrides.
func NewDefault() *Runtime {
	return New(config.Default(), os.Stdout)
}
