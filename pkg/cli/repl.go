package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smython-lang/smython/internal/config"
	"github.com/smython-lang/smython/internal/evaluator"
	"github.com/smython-lang/smython/internal/runtime"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Smython session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
}

func runRepl(cmd *cobra.Command) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	rt := runtime.New(cfg, cmd.OutOrStdout())

	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	var buf strings.Builder
	open := false

	for {
		if open {
			fmt.Fprint(out, renderContinuation())
		} else {
			fmt.Fprint(out, renderPrompt())
		}
		if !in.Scan() {
			break
		}
		line := in.Text()

		if open && strings.TrimSpace(line) == "" {
			source := buf.String()
			buf.Reset()
			open = false
			evalAndPrint(rt, source, out)
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')

		if suiteStillOpen(line) {
			open = true
			continue
		}
		if open {
			// still inside a block whose body line wasn't itself a
			// header; keep reading until a blank line closes it
			continue
		}

		source := buf.String()
		buf.Reset()
		evalAndPrint(rt, source, out)
	}
	return nil
}

// suiteStillOpen reports whether line opens a new indented suite (a
// header ending in ':'), mirroring the indentation-driven INDENT the
// lexer would synthesize for the following line.
func suiteStillOpen(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	return strings.HasSuffix(trimmed, ":")
}

func evalAndPrint(rt *runtime.Runtime, source string, out io.Writer) {
	if strings.TrimSpace(source) == "" {
		return
	}
	result, err := rt.Execute(context.Background(), source)
	if err != nil {
		fmt.Fprintln(out, renderError(err.Error()))
		return
	}
	if _, isNone := result.(*evaluator.None); result != nil && !isNone {
		fmt.Fprintln(out, evaluator.Repr(result))
	}
}
