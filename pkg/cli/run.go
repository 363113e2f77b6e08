package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smython-lang/smython/internal/config"
	"github.com/smython-lang/smython/internal/runtime"
)

// ErrSilent is returned by a command's RunE when the failure message
// has already been written to the command's own stderr (an uncaught
// exception, a reported syntax error); main only needs to see a
// non-nil error to choose a non-zero exit code, not print it again.
var ErrSilent = errors.New("smython: command reported its own error")

func newRunCmd() *cobra.Command {
	var timeout time.Duration
	var dumpAST bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Smython script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if dumpAST {
				return dumpProgramAST(cmd, string(source))
			}
			return runSource(cmd, string(source), timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort execution after this duration (0 disables the timeout)")
	cmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST instead of running the script")
	return cmd
}

func runSource(cmd *cobra.Command, source string, timeout time.Duration) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	rt := runtime.New(cfg, cmd.OutOrStdout())

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if _, err := rt.Execute(ctx, source); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderError(err.Error()))
		return ErrSilent
	}
	return nil
}
