package main

import (
	"errors"
	"fmt"
	"os"

	"clickbotcheck/internal/cli"
)

// main is a deterministic boundary: it canonicalizes the invocation before
// any assessment logic is invoked.
func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	result, execErr := cli.Execute(inv)
	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
	}
	if result.Stdout != "" {
		fmt.Print(result.Stdout)
	}
	os.Exit(result.ExitCode)
}
