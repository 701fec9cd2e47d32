// Package service provides the fixed message service
package service

import (
	"context"

	dom "stubdemo/internal/services/message/domain"
)

// Service answers every call with the same message
type Service struct {
	msg dom.Message
}

// New builds a service for text; empty text falls back to domain.DefaultText
func New(text string) *Service {
	if text == "" {
		text = dom.DefaultText
	}
	return &Service{msg: dom.Message{Text: text}}
}

// Message implements domain.ServicePort. It does no blocking work, so a done ctx is ignored
func (s *Service) Message(_ context.Context) (dom.Message, error) {
	return s.msg, nil
}

var _ dom.ServicePort = (*Service)(nil)
