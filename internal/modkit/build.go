package modkit

import (
	"net/http"

	"stubdemo/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool
}

// Build applies Option funcs and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
	}
}

// Mount is the shared MountRoutes body: scope by prefix, apply mw, then register
func (b Built) Mount(r httpkit.Router, mount func(httpkit.Router)) {
	if b.Prefix == "" || b.Prefix == "/" {
		if len(b.Mw) == 0 {
			mount(r)
			return
		}
		r.Group(func(g httpkit.Router) {
			g.Use(b.Mw...)
			mount(g)
		})
		return
	}
	httpkit.MountUnder(r, b.Prefix, b.Mw, mount)
}
