// Package module wires route planning into the API using modkit
package module

import (
	"net/http"

	"navline/internal/adapters/providers/osm"
	"navline/internal/core/provider"
	modkit "navline/internal/modkit"
	"navline/internal/modkit/httpkit"
	str "navline/internal/platform/strings"
	routehttp "navline/internal/services/api/route/http"
	routesvc "navline/internal/services/api/route/service"
)

// Options selects the router backing the endpoint
type Options struct {
	Name   string
	Router provider.Router
}

// FromConfig builds the keyless geocode plus OSRM router from PROVIDER_* settings
func FromConfig(deps modkit.Deps) Options {
	prov := deps.Cfg.Prefix("PROVIDER_")
	nom := osm.NewNominatim(prov.MayString("NOMINATIM_URL", osm.DefaultNominatimURL), 1)
	return Options{
		Name:   "osrm",
		Router: osm.NewRouter(nom, osm.NewOSRM(prov.MayString("OSRM_URL", osm.DefaultOSRMURL))),
	}
}

// Module implements the route module
type Module struct {
	built modkit.Built
	svc   routesvc.Service
}

// New constructs the route module
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("route"), modkit.WithPrefix("/route")}, opts...)...)
	return &Module{
		built: b,
		svc:   routesvc.New(deps.Gateway, str.FirstNonBlank(o.Name, "router"), o.Router),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { routehttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports returns the service port
func (m *Module) Ports() any { return m.svc }
