// Package module wires the events stub into a server
package module

import (
	"stubdemo/internal/modkit"
	"stubdemo/internal/modkit/httpkit"
	"stubdemo/internal/modkit/swaggerkit"
	"stubdemo/internal/platform/net/middleware"
	"stubdemo/internal/services/events/domain"
	evhttp "stubdemo/internal/services/events/http"
	"stubdemo/internal/services/events/service"
)

// Ports exposed by the events module
type Ports struct {
	Service domain.ServicePort
}

// Module implements modkit.Module for POST /events
type Module struct {
	built modkit.Built
	opts  Options
	ports Ports
}

// New constructs the events module. WithPorts(Ports{...}) replaces the accepting service.
// Bodies are capped at MaxBody by a module scoped RequestSize middleware
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("events"),
		modkit.WithMiddlewares(middleware.RequestSize(o.MaxBody)),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Service == nil {
		ports = Ports{Service: service.New(service.Config{Rules: o.Rules, MaxBytes: o.MaxBody})}
	}
	if len(o.Rules) > 0 {
		deps.Logger("events").Info().Interface("rules", o.Rules).Msg("events validation enabled")
	}
	return &Module{built: b, opts: o, ports: ports}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		evhttp.Register(rr, m.ports.Service)
	})
}

// Document satisfies swaggerkit.Documented
func (m *Module) Document(spec map[string]any) {
	if !m.built.SwaggerOn {
		return
	}
	path := m.built.Prefix + "/events"
	swaggerkit.AddOperation(spec, "post", path, map[string]any{
		"tags":    []any{"Events"},
		"summary": "Accept an event",
		"requestBody": map[string]any{
			"required": false,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema":  map[string]any{"type": "object"},
					"example": map[string]any{"name": "John Doe"},
				},
			},
		},
		"responses": map[string]any{"200": map[string]any{"description": "OK, empty body"}},
	})
	if len(m.opts.Rules) > 0 {
		swaggerkit.AddBadRequest(spec, "post", path)
	}
}

var (
	_ modkit.Module         = (*Module)(nil)
	_ swaggerkit.Documented = (*Module)(nil)
)
