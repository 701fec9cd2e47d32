package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// ProfilerPrefix is where stub servers mount pprof
const ProfilerPrefix = "/debug"

// MountProfiler mounts pprof under prefix (e.g. "/debug") when enabled.
// The pprof index lives at prefix+"/pprof/"; the slashless form redirects there
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Get(prefix+"/pprof", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		stdhttp.Redirect(w, req, prefix+"/pprof/", stdhttp.StatusMovedPermanently)
	})
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
