// @title         stubdemo events stub
// @version       0.1.0
// @description   Accepts POST /events and answers with an empty 200

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stubdemo/internal/platform/config"
	"stubdemo/internal/platform/logger"
	"stubdemo/internal/services/stub"
)

func main() {
	// reads STUB_EVENTS_* (PORT, ADDR, RULES, MAX_BODY, SWAGGER, PROFILER, CORS_ORIGINS)
	root := config.New()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := stub.Serve(ctx, stub.Events, root, nil); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
