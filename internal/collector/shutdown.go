package collector

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// SignalContext returns a context cancelled on SIGTERM or SIGINT. A second
// signal forces exit for the case where a worker is stuck waiting out a rate
// limit.
func SignalContext(parent context.Context, log *zap.SugaredLogger) context.Context {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigCh
		log.Infow("Received signal, shutting down", "signal", sig)
		cancel()

		sig = <-sigCh
		log.Warnw("Received second signal, forcing exit", "signal", sig)
		os.Exit(1)
	}()

	return ctx
}
