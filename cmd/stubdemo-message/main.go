// @title         stubdemo message stub
// @version       0.1.0
// @description   Serves GET /api/message with a fixed greeting

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
	// reads STUB_MESSAGE_* (PORT, ADDR, TEXT, SWAGGER, PROFILER, CORS_ORIGINS)
	root := config.New()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := stub.Serve(ctx, stub.Message, root, nil); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
