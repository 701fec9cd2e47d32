package module

import (
	"stubdemo/internal/platform/config"
	"stubdemo/internal/services/message/domain"
)

// ConfigPrefix namespaces the message stub env (STUB_MESSAGE_PORT, STUB_MESSAGE_TEXT, ...)
const ConfigPrefix = "STUB_MESSAGE_"

// Options holds configuration settings for the message module
type Options struct {
	Text string
}

// FromConfig reads STUB_MESSAGE_* settings from cfg
func FromConfig(cfg config.Conf) Options {
	mc := cfg.Prefix(ConfigPrefix)
	return Options{
		Text: mc.MayString("TEXT", domain.DefaultText),
	}
}
