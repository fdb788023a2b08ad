// SPDX-License-Identifier: MIT

// Command bnquery answers posterior queries on Bayesian networks described
// in YAML model files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvbayes/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "bnquery:", err)
		stop()
		os.Exit(cli.GetExitCode(err))
	}
}
