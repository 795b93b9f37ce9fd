package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WaitForShutdown returns a channel that receives SIGINT or SIGTERM.
func WaitForShutdown() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return sigCh
}

// SetupSignalHandler returns a context that is canceled on the first
// shutdown signal. Long-running commands derive their lifetime from it.
func SetupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-WaitForShutdown()
		cancel()
	}()

	return ctx
}
