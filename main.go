package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ch/internal/cli"
)

func main() {
	// Cancel the root context on interrupt or termination
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
