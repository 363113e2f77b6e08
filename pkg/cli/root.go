// Package cli builds the `smython` command tree: run, repl, and check,
// following the teacher's own pkg/cli.Execute() → root command split
// for the entry point cmd/smython/main.go delegates to.
package cli

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smython",
		Short:         "A reduced Python-3-style interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newReplCmd())
	cmd.AddCommand(newCheckCmd())
	return cmd
}

// NewRootCmdForTest exposes the root command for table-driven command
// tests without going through os.Exit.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the smython CLI, the sole function cmd/smython/main.go
// calls.
func Execute() error {
	return newRootCmd().Execute()
}
