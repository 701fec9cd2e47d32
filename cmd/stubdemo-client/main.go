package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"stubdemo/internal/adapters/stubapi"
	form "stubdemo/internal/components/loginform"
	"stubdemo/internal/platform/config"
	"stubdemo/internal/platform/logger"
	pnet "stubdemo/internal/platform/net"

	"github.com/google/uuid"
)

func main() {
	var (
		fBase = flag.String("base", "", "stub base URL (default STUB_CLIENT_BASE_URL or http://localhost:8081)")
		fPost = flag.String("post", "", "send {\"name\": <value>} to POST /events instead of fetching the message")
	)
	flag.Parse()

	rid := uuid.NewString()
	l := logger.Get().With().Str("request_id", rid).Logger()
	opts := stubapi.FromConfig(config.New())
	if *fBase != "" {
		opts.BaseURL = *fBase
	}
	c := stubapi.NewClient(opts)
	// the stub's RequestID middleware adopts the forwarded id, so both logs line up
	ctx := pnet.WithRequestID(context.Background(), rid)

	if *fPost != "" {
		if err := c.PostEvent(ctx, form.Submission{Name: *fPost}); err != nil {
			l.Error().Err(err).Str("base", c.BaseURL()).Msg("post event failed")
			os.Exit(1)
		}
		l.Info().Str("name", *fPost).Msg("event accepted")
		return
	}

	msg, err := c.GetMessage(ctx)
	if err != nil {
		l.Error().Err(err).Str("base", c.BaseURL()).Bool("network", stubapi.IsNetwork(err)).Msg("get message failed")
		os.Exit(1)
	}
	out, _ := json.Marshal(msg)
	fmt.Println(string(out))
}
