// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "stubdemo/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.Call(fn) }

// JSON writes v as bare JSON, for endpoints whose body is the resource itself
func JSON(w http.ResponseWriter, status int, v any) { phttp.JSON(w, status, v) }

// Empty writes status with no body
func Empty(w http.ResponseWriter, status int) { phttp.Empty(w, status) }

// RespondError writes err as an error envelope
func RespondError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }
