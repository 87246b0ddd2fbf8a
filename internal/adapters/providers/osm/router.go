package osm

import (
	"context"

	"golang.org/x/sync/errgroup"

	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

// Router geocodes both ends then asks OSRM for the route
type Router struct {
	geo  provider.Geocoder
	osrm *OSRM
}

var _ provider.Router = (*Router)(nil)

// NewRouter composes a geocoder with OSRM
func NewRouter(geo provider.Geocoder, o *OSRM) *Router {
	return &Router{geo: geo, osrm: o}
}

// Endpoints geocodes origin and destination concurrently
func (r *Router) Endpoints(ctx context.Context, origin, destination string) (provider.Coord, provider.Coord, error) {
	var a, b provider.Coord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a, err = r.geo.Geocode(gctx, origin)
		return perr.WithField(err, "start")
	})
	g.Go(func() (err error) {
		b, err = r.geo.Geocode(gctx, destination)
		return perr.WithField(err, "end")
	})
	if err := g.Wait(); err != nil {
		return a, b, err
	}
	return a, b, nil
}

// Route implements provider.Router
func (r *Router) Route(ctx context.Context, origin, destination string, mode provider.Mode) (provider.Route, error) {
	a, b, err := r.Endpoints(ctx, origin, destination)
	if err != nil {
		return provider.Route{}, err
	}
	return r.osrm.Between(ctx, a, b, mode)
}
