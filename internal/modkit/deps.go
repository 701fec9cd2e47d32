// Package modkit provides module wiring and core deps
package modkit

import (
	"stubdemo/internal/platform/config"
	"stubdemo/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns d.Log or a root child named after component when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
