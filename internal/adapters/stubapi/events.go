package stubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	perr "stubdemo/internal/platform/errors"
)

// EventsPath is the events stub endpoint
const EventsPath = "/events"

// PostEvent sends v as JSON to POST /events. The stub answers with an empty 200
func (c *Client) PostEvent(ctx context.Context, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "stubapi encode event")
	}
	resp, err := c.do(ctx, http.MethodPost, EventsPath, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return drainAndClose(resp.Body)
}
