package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/smython-lang/smython/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrSilent) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
