package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"stubdemo/internal/adapters/stubapi"
	form "stubdemo/internal/components/loginform"
	"stubdemo/internal/platform/config"
	"stubdemo/internal/platform/logger"
	tui "stubdemo/internal/tui/loginform"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	root := config.New()

	// the terminal is ours; logs go to STUB_FORM_LOG_FILE or nowhere
	lopts := logger.FromEnv()
	lopts.Writer = io.Discard
	if path := root.Prefix("STUB_FORM_").MayString("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		lopts.Writer = f
		lopts.Format = "json"
	}
	logger.Init(lopts)
	l := logger.Get()

	c := stubapi.NewClient(stubapi.FromConfig(root))
	forward := func(ctx context.Context, s form.Submission) error {
		err := c.PostEvent(ctx, s)
		if err != nil {
			l.Warn().Err(err).Str("name", s.Name).Msg("forward submission failed")
		}
		return err
	}

	p := tea.NewProgram(tui.New(context.Background(), forward), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		l.Error().Err(err).Msg("form exited")
		fmt.Fprintf(os.Stderr, "form: %v\n", err)
		os.Exit(1)
	}
}
