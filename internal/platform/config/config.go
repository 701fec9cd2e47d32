// Package config handles application configuration via environment variables
package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"stubdemo/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "STUB_MESSAGE_")
// Use New() for global access, or Prefix for a service scope
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) get(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.get(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.get(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.get(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.get(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV returns the non-empty items of a comma-separated value; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.get(key)
	if s == "" {
		return def
	}
	out := make([]string, 0, strings.Count(s, ",")+1)
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayPort returns a listen addr like ":8081" from a 1..65535 port; def when missing.
// An out of range or non-numeric value panics since the listener could never bind it
func (c Conf) MayPort(key string, def int) string {
	s := c.get(key)
	if s == "" {
		return ":" + strconv.Itoa(def)
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// ListenAddr resolves the listen address: ADDR wins when set, otherwise PORT with defPort
func (c Conf) ListenAddr(defPort int) string {
	if a := c.get("ADDR"); a != "" {
		if _, _, err := net.SplitHostPort(a); err != nil {
			logger.Get().Panic().Err(err).Str("key", c.key("ADDR")).Str("value", a).Msg("invalid listen addr")
		}
		return a
	}
	return c.MayPort("PORT", defPort)
}

// MayURL returns a parsed absolute http(s) URL, falling back to def; an invalid
// value logs and falls back as well
func (c Conf) MayURL(key, def string) *url.URL {
	s := c.MayString(key, def)
	u, err := parseBaseURL(s)
	if err == nil {
		return u
	}
	logger.Get().Warn().Err(err).Str("key", c.key(key)).Str("value", s).Str("default", def).Msg("invalid URL; using default")
	u, err = parseBaseURL(def)
	if err != nil {
		logger.Get().Panic().Err(err).Str("default", def).Msg("invalid default URL")
	}
	return u
}

func parseBaseURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: s, Err: errNotHTTP}
	}
	return u, nil
}

type configError string

func (e configError) Error() string { return string(e) }

const errNotHTTP = configError("expected absolute http or https URL")
