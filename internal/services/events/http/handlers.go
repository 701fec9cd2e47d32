// Package http provides the events stub endpoint
package http

import (
	"io"
	stdhttp "net/http"

	"stubdemo/internal/modkit/httpkit"
	"stubdemo/internal/platform/logger"
	"stubdemo/internal/services/events/domain"
)

// Register mounts POST /events on r. The body cap is the module's RequestSize middleware
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	r.Post("/events", h.post)
}

type handlers struct {
	svc domain.ServicePort
}

// post answers 200 with no body once the service accepts
func (h *handlers) post(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	log := logger.C(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		// a broken or oversized body is still an accepted post
		log.Warn().Err(err).Int("read", len(body)).Msg("event body read failed")
	}

	rc, err := h.svc.Accept(r.Context(), body)
	if err != nil {
		log.Info().Err(err).Msg("event rejected")
		httpkit.RespondError(w, r, err)
		return
	}
	log.Debug().
		Str("receipt", rc.ID).
		Int("size", rc.Size).
		Str("content_type", r.Header.Get("Content-Type")).
		Msg("event accepted")
	httpkit.Empty(w, stdhttp.StatusOK)
}
