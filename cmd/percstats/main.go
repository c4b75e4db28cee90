// Command percstats runs a Monte Carlo percolation experiment.
//
// Usage:
//
//	percstats N T [--seed S] [--workers W] [--strategy rejection|shuffle]
//	              [--config file.yaml] [--log-level L] [--metrics-file path]
//
// Output:
//
//	mean = 0.5929934999999997
//	stddev = 0.00876990421552567
//	95% confidence interval = 0.5912745987737567, 0.5947124012262428
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "percstats:", err)
		os.Exit(1)
	}
}
