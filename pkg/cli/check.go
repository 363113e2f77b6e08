package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smython-lang/smython/internal/runtime"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Parse every .smy file under dir and report syntax errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkDir(cmd, args[0])
		},
	}
}

func checkDir(cmd *cobra.Command, dir string) error {
	failed := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".smy" {
			return nil
		}
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := runtime.CheckSyntax(string(source)); err != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), renderError(fmt.Sprintf("%s: %s", path, err)))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return ErrSilent
	}
	return nil
}
