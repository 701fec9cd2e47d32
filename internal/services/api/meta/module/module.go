// Package module wires meta endpoints into a stub server
package module

import (
	"time"

	modkit "stubdemo/internal/modkit"
	"stubdemo/internal/modkit/httpkit"
	"stubdemo/internal/modkit/swaggerkit"

	metahttp "stubdemo/internal/services/api/meta/http"
)

// Module implements modkit.Module for /meta
type Module struct {
	built     modkit.Built
	service   string
	modules   func() []string
	startedAt time.Time
}

// New constructs a meta module reporting as service. modules lists what /meta/service reports
// and may be nil
func New(service string, modules func() []string, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{built: b, service: service, modules: modules, startedAt: time.Now()}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: m.service,
			StartedAt:   m.startedAt,
			Modules:     m.modules,
		})
	})
}

// Document implements swaggerkit.Documented
func (m *Module) Document(spec map[string]any) {
	for _, p := range []string{"/health", "/version", "/service"} {
		swaggerkit.AddOperation(spec, "get", m.built.Prefix+p, map[string]any{
			"tags":      []any{"Meta"},
			"responses": map[string]any{"200": map[string]any{"description": "OK"}},
		})
	}
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.built.Ports }

var (
	_ modkit.Module         = (*Module)(nil)
	_ swaggerkit.Documented = (*Module)(nil)
)
