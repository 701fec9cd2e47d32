package httpkit

import (
	"net/http"

	pstrings "stubdemo/internal/platform/strings"
)

// MountUnder mounts a subrouter at prefix and applies per-module middlewares.
// prefix is normalized to one leading slash; an empty prefix panics
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(pstrings.MustPrefix(prefix), func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// APIPrefix scopes the stub domain endpoints (GET /api/message)
const APIPrefix = "/api"
