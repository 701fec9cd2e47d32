package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"stubdemo/internal/platform/net/middleware"
)

// HeartbeatPath answers load balancer pings before routing
const HeartbeatPath = "/ping"

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins enables CORS for these origins, empty disables it
	CORSOrigins []string
	// Timeout bounds each request, 0 means 30s
	Timeout time.Duration
	// Slow marks slow requests in the access log, 0 disables
	Slow time.Duration
	// KeepSlashes lists path prefixes whose handlers rely on a trailing slash (docs UI, pprof)
	KeepSlashes []string
}

// CommonStack returns the baseline middleware slice for a stub server
// order matters: ids first so logs and panics carry them
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Skip: []string{HeartbeatPath}}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),
	}
	if len(o.CORSOrigins) > 0 {
		stack = append(stack, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	return append(stack,
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat(HeartbeatPath),
		middleware.StripSlashes(o.KeepSlashes...),
		middleware.Timeout(timeout),
	)
}
