// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "navline/internal/modkit"
	"navline/internal/modkit/httpkit"
	str "navline/internal/platform/strings"

	metahttp "navline/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	hdeps     metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{built: b, startedAt: time.Now()}
	m.hdeps = metahttp.Deps{
		ServiceName: "navline-api",
		StartedAt:   m.startedAt,
	}
	// typed nils must stay untyped so the handlers can skip them
	if deps.Cache != nil {
		m.hdeps.Cache = deps.Cache
	}
	if deps.Gateway != nil {
		m.hdeps.Gateway = deps.Gateway
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.hdeps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.FirstNonBlank(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
