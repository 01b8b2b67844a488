package command

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ContextWithSignal returns a context which gets cancelled once SIGINT or
// SIGTERM is notified, triggering the graceful server shutdown.
func ContextWithSignal(ctx context.Context) context.Context {
	sigCtx, cancel := context.WithCancel(ctx)

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(signals)

		select {
		case <-signals:
			cancel()
		case <-sigCtx.Done():
		}
	}()

	return sigCtx
}
