// Command vector4 builds a four-component vector from the command line or
// interactive prompts, prints it, optionally hashes it and packs it to a
// file, or reads back a packed file.
//
// Usage:
//
//	vector4 [-type T] [-format text|yaml|json] [-hash sha256|xxh3|xxh64]
//	        [-out FILE [-compression C] [-force]] [-interactive] [-quiet]
//	        [x y z w]
//	vector4 [-type T] [-format F] -in FILE
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amp-labs/amp-vector/cli"
	"github.com/amp-labs/amp-vector/logger"
)

func main() {
	if _, err := logger.ConfigureLogging("vector4"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	env := &environment{
		stdout:   os.Stdout,
		prompter: &cli.Prompter{},
	}

	if err := run(ctx, os.Args[1:], env); err != nil {
		logger.Get(ctx).Error("vector4 failed", "error", err)
		os.Exit(1)
	}
}
