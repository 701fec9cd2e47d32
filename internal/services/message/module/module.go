// Package module wires the message stub into a server
package module

import (
	"stubdemo/internal/modkit"
	"stubdemo/internal/modkit/httpkit"
	"stubdemo/internal/modkit/swaggerkit"
	"stubdemo/internal/services/message/domain"
	msghttp "stubdemo/internal/services/message/http"
	"stubdemo/internal/services/message/service"
)

// Ports exposed by the message module
type Ports struct {
	Service domain.ServicePort
}

// Module implements modkit.Module for GET /api/message
type Module struct {
	built modkit.Built
	ports Ports
}

// New constructs the message module. WithPorts(Ports{...}) replaces the fixed service
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("message"),
		modkit.WithPrefix(httpkit.APIPrefix),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Service == nil {
		o := FromConfig(deps.Cfg)
		ports = Ports{Service: service.New(o.Text)}
		deps.Logger("message").Debug().Str("text", o.Text).Msg("message stub configured")
	}
	return &Module{built: b, ports: ports}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		msghttp.Register(rr, m.ports.Service)
	})
}

// Document satisfies swaggerkit.Documented
func (m *Module) Document(spec map[string]any) {
	if !m.built.SwaggerOn {
		return
	}
	swaggerkit.AddOperation(spec, "get", m.built.Prefix+"/message", map[string]any{
		"tags":    []any{"Message"},
		"summary": "Fixed message",
		"responses": map[string]any{
			"200": map[string]any{
				"description": "OK",
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": map[string]any{
							"type":       "object",
							"properties": map[string]any{"text": map[string]any{"type": "string"}},
							"required":   []any{"text"},
						},
						"example": map[string]any{"text": domain.DefaultText},
					},
				},
			},
		},
	})
}

var (
	_ modkit.Module         = (*Module)(nil)
	_ swaggerkit.Documented = (*Module)(nil)
)
