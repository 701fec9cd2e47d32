package domain

import "context"

// ServicePort yields the message served at /api/message
type ServicePort interface {
	Message(ctx context.Context) (Message, error)
}
