// Package http provides the message stub endpoint
package http

import (
	stdhttp "net/http"

	"stubdemo/internal/modkit/httpkit"
	"stubdemo/internal/platform/logger"
	"stubdemo/internal/services/message/domain"
)

// Register mounts GET /message on r
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	r.Get("/message", h.message)
}

type handlers struct{ svc domain.ServicePort }

// message writes the bare {"text": ...} object, no envelope
func (h *handlers) message(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	msg, err := h.svc.Message(r.Context())
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	logger.C(r.Context()).Debug().Str("text", msg.Text).Msg("message served")
	httpkit.JSON(w, stdhttp.StatusOK, msg)
}
