package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"filesorter/internal/fault"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) || errors.Is(err, fault.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(fault.ExitCode(err))
	}
}
