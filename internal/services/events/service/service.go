// Package service accepts event posts
package service

import (
	"bytes"
	"context"
	"time"

	"stubdemo/internal/platform/net/http/bind"
	dom "stubdemo/internal/services/events/domain"

	"github.com/google/uuid"
)

// Config for the events service
type Config struct {
	// Rules opt into validation; empty accepts anything
	Rules dom.Rules
	// MaxBytes bounds the decoded body when rules are set
	MaxBytes int64
}

// Service implements domain.ServicePort
type Service struct {
	cfg Config

	now   func() time.Time
	newID func() string
}

// New constructs an events service
func New(cfg Config) *Service {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1 << 20
	}
	return &Service{
		cfg:   cfg,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Accept implements domain.ServicePort. It does no blocking work, so a done ctx is ignored
func (s *Service) Accept(_ context.Context, body []byte) (dom.Receipt, error) {
	if len(s.cfg.Rules) > 0 {
		if err := s.validate(body); err != nil {
			return dom.Receipt{}, err
		}
	}
	return dom.Receipt{
		ID:         s.newID(),
		ReceivedAt: s.now().UTC(),
		Size:       len(body),
	}, nil
}

func (s *Service) validate(body []byte) error {
	data, err := bind.Decode[map[string]any](bytes.NewReader(body), bind.JSONOptions{MaxBytes: s.cfg.MaxBytes})
	if err != nil {
		return err
	}
	return bind.ValidateMap(data, s.cfg.Rules)
}

var _ dom.ServicePort = (*Service)(nil)
