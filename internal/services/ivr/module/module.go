// Package module wires the telephony entry point into the server using modkit
package module

import (
	"net/http"

	"navline/internal/core/dialog"
	modkit "navline/internal/modkit"
	"navline/internal/modkit/httpkit"
	ivrhttp "navline/internal/services/ivr/http"
	ivrsvc "navline/internal/services/ivr/service"
)

// Ports exposes the ivr internals for cross wiring and probes
type Ports struct {
	Router  *dialog.Router
	Service ivrsvc.Service
}

// Module implements the ivr module
type Module struct {
	built modkit.Built
	ports Ports
	svc   ivrsvc.Service
}

// New constructs the ivr module; the telephony stack is installed before any caller middlewares
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	router := dialog.NewRouter(dialog.Deps{
		Throttle:  deps.Throttle,
		Filter:    deps.Filter,
		Skills:    o.Skills,
		Texts:     o.Texts,
		Sentinels: o.Sentinels,
	})
	svc := ivrsvc.New(router, o.Sentinels, o.Texts)

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("ivr"),
		modkit.WithPrefix("/ivr"),
		modkit.WithMiddlewares(httpkit.TelephonyStack(svc.Trouble(), dialog.FieldCaller)...),
	}, opts...)...)

	return &Module{
		built: b,
		ports: Ports{Router: router, Service: svc},
		svc:   svc,
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { ivrhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
