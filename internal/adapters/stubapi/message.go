package stubapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	perr "stubdemo/internal/platform/errors"
	"stubdemo/internal/services/message/domain"
)

// MessagePath is the message stub endpoint
const MessagePath = "/api/message"

// GetMessage fetches the message. Every call is a fresh GET with no headers beyond
// the transport defaults
func (c *Client) GetMessage(ctx context.Context) (domain.Message, error) {
	resp, err := c.do(ctx, http.MethodGet, MessagePath, nil, "")
	if err != nil {
		return domain.Message{}, err
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	var msg domain.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return domain.Message{}, perr.Wrapf(err, perr.ErrorCodeJSON, "stubapi decode message")
	}
	return msg, nil
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default is the process client aimed at DefaultBaseURL
func Default() *Client {
	defaultOnce.Do(func() { defaultClient = NewClient(Options{}) })
	return defaultClient
}

// GetMessage calls GET http://localhost:8081/api/message on the default client
func GetMessage(ctx context.Context) (domain.Message, error) {
	return Default().GetMessage(ctx)
}
