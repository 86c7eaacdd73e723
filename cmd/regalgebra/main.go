package main

import (
	"errors"
	"fmt"
	"os"

	"regalgebra/internal/cli"
)

func main() {
	err := cli.NewRootCommand(nil).Execute()
	if err == nil {
		return
	}
	// a failed relation or assertion has already been reported on stdout
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != cli.ExitFailure {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
