package domain

import "context"

// ServicePort accepts raw event bodies
type ServicePort interface {
	// Accept records body. Without rules every body is accepted, malformed or not
	Accept(ctx context.Context, body []byte) (Receipt, error)
}
