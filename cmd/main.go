package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// The logger may not be initialized when config loading failed.
		os.Stderr.WriteString("fiprank: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
