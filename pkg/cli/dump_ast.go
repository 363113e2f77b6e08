package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smython-lang/smython/internal/ast"
	"github.com/smython-lang/smython/internal/lexer"
	"github.com/smython-lang/smython/internal/parser"
)

// dumpProgramAST parses source and prints it via ast.Printer instead
// of evaluating it, the --dump-ast escape hatch for inspecting how the
// parser desugared a script (slice subscripts, etc).
func dumpProgramAST(cmd *cobra.Command, source string) error {
	suite, err := parser.New(lexer.New(source)).ParseProgram()
	if err != nil {
		return err
	}
	printer := ast.NewPrinter()
	printer.PrintSuite(suite)
	fmt.Fprint(cmd.OutOrStdout(), printer.String())
	return nil
}
