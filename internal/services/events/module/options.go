package module

import (
	"stubdemo/internal/platform/config"
	"stubdemo/internal/platform/logger"
	"stubdemo/internal/platform/net/http/bind"
	"stubdemo/internal/services/events/domain"
)

// ConfigPrefix namespaces the events stub env (STUB_EVENTS_PORT, STUB_EVENTS_RULES, ...)
const ConfigPrefix = "STUB_EVENTS_"

// DefaultMaxBody caps how much of a POST body is read
const DefaultMaxBody int64 = 1 << 20

// Options holds configuration settings for the events module
type Options struct {
	Rules   domain.Rules
	MaxBody int64
}

// FromConfig reads STUB_EVENTS_* settings from cfg.
// RULES is a CSV of field=tag items; a malformed rule panics at startup
func FromConfig(cfg config.Conf) Options {
	ec := cfg.Prefix(ConfigPrefix)
	o := Options{MaxBody: int64(ec.MayInt("MAX_BODY", int(DefaultMaxBody)))}
	if o.MaxBody <= 0 {
		o.MaxBody = DefaultMaxBody
	}

	items := ec.MayCSV("RULES", nil)
	if len(items) == 0 {
		return o
	}
	rules, err := bind.ParseRules(items)
	if err != nil {
		logger.Get().Panic().Err(err).Strs("rules", items).Msg("invalid " + ConfigPrefix + "RULES")
	}
	o.Rules = rules
	return o
}
