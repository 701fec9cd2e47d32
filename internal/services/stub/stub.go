// Package stub composes one stub variant onto a router
package stub

import (
	"context"
	"fmt"
	"net"
	"time"

	"stubdemo/internal/core/version"
	"stubdemo/internal/modkit"
	"stubdemo/internal/modkit/httpkit"
	"stubdemo/internal/modkit/module"
	"stubdemo/internal/modkit/swaggerkit"
	"stubdemo/internal/platform/config"
	"stubdemo/internal/platform/logger"
	phttp "stubdemo/internal/platform/net/http"

	metamod "stubdemo/internal/services/api/meta/module"
	eventsmod "stubdemo/internal/services/events/module"
	messagemod "stubdemo/internal/services/message/module"
)

// Variant picks the single domain module a stub process serves
type Variant string

const (
	// Message serves GET /api/message
	Message Variant = "message"
	// Events serves POST /events
	Events Variant = "events"
)

// Prefix returns the env namespace of a variant (STUB_MESSAGE_, STUB_EVENTS_)
func (v Variant) Prefix() string {
	switch v {
	case Message:
		return messagemod.ConfigPrefix
	case Events:
		return eventsmod.ConfigPrefix
	}
	return ""
}

// Service is the name reported by /meta and the logs
func (v Variant) Service() string { return "stubdemo-" + string(v) }

// Options are the stub options
type Options struct {
	Variant Variant
	// Config is the root config; variant keys are read under Variant.Prefix()
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string
	// Extra passes options to the domain module (tests use WithPorts)
	Extra []modkit.Option
}

// FromConfig fills the toggles from <PREFIX>SWAGGER, PROFILER, CORS_ORIGINS
func FromConfig(v Variant, root config.Conf) Options {
	vc := root.Prefix(v.Prefix())
	return Options{
		Variant:        v,
		Config:         root,
		EnableSwagger:  vc.MayBool("SWAGGER", false),
		EnableProfiler: vc.MayBool("PROFILER", false),
		CORSOrigins:    vc.MayCSV("CORS_ORIGINS", nil),
	}
}

// builders maps each variant to the constructor of its domain module
var builders = map[Variant]modkit.Builder{
	Message: func(d modkit.Deps, o ...modkit.Option) modkit.Module { return messagemod.New(d, o...) },
	Events:  func(d modkit.Deps, o ...modkit.Option) modkit.Module { return eventsmod.New(d, o...) },
}

// Mount mounts the common stack, meta, optional docs/profiler and exactly one domain module.
// r must not have routes yet. It returns the mounted modules, domain module first
func Mount(r phttp.Router, opt Options) ([]module.Module, error) {
	build, ok := builders[opt.Variant]
	if !ok {
		return nil, fmt.Errorf("stub: unknown variant %q", opt.Variant)
	}

	deps := modkit.Deps{Cfg: opt.Config, Log: opt.Logger}
	if deps.Log == nil {
		deps.Log = logger.Named(opt.Variant.Service())
	}

	extra := append([]modkit.Option{modkit.WithSwagger(opt.EnableSwagger)}, opt.Extra...)
	reg := module.NewRegistry()
	mods := []module.Module{
		build(deps, extra...),
		metamod.New(opt.Variant.Service(), reg.Names),
	}

	doc := swaggerkit.New(opt.Variant.Service(), version.Info(opt.Variant.Service()).Version)

	// root level so heartbeat and slash stripping run before routing
	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Slow:        500 * time.Millisecond,
		KeepSlashes: []string{swaggerkit.DocsPath, phttp.ProfilerPrefix},
	})...)

	doc.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, phttp.ProfilerPrefix, opt.EnableProfiler)

	for _, m := range mods {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
		if d, ok := m.(swaggerkit.Documented); ok {
			doc.Register(d.Document)
		}
		m.MountRoutes(r)
	}

	deps.Log.Info().
		Str("variant", string(opt.Variant)).
		Strs("modules", reg.Names()).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("stub mounted")

	return mods, nil
}

// Serve builds a server from <PREFIX>PORT/ADDR, mounts the variant and blocks until ctx ends.
// ready, when non-nil, receives the bound address
func Serve(ctx context.Context, v Variant, root config.Conf, ready func(net.Addr)) error {
	opt := FromConfig(v, root)
	srv := phttp.NewServer(root.Prefix(v.Prefix()))
	if _, err := Mount(srv.Router(), opt); err != nil {
		return err
	}
	if ready != nil {
		go func() {
			select {
			case a := <-srv.Ready():
				ready(a)
			case <-ctx.Done():
			}
		}()
	}
	return srv.Run(ctx)
}
