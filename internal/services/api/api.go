// Package api composes the navline HTTP surface: the telephony entry point at
// /ivr and the JSON endpoints under /api/v1
package api

import (
	"context"
	"time"

	"navline/internal/modkit"
	"navline/internal/modkit/httpkit"
	"navline/internal/modkit/swaggerkit"
	"navline/internal/platform/config"
	phttp "navline/internal/platform/net/http"
	"navline/internal/platform/net/middleware"

	metamod "navline/internal/services/api/meta/module"
	routemod "navline/internal/services/api/route/module"
	ivrmod "navline/internal/services/ivr/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // CORE_API_ view
	Deps           modkit.Deps
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount installs the root middleware stack and every module on r
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	deps := opt.Deps

	ivrOpts, err := ivrmod.FromConfig(ctx, deps)
	if err != nil {
		return err
	}

	r.Use(httpkit.RootStack(middleware.AccessLogOptions{
		Slow:  opt.Config.MayDuration("SLOW_REQUEST", 5*time.Second),
		Quiet: []string{"/health", "/api/v1/meta/health", "/api/v1/meta/ready"},
	})...)

	// telephony lives at the root; the platform is configured with the bare /ivr url
	ivr := ivrmod.New(deps, ivrOpts)
	ivr.MountRoutes(r)

	mods := []modkit.Module{
		metamod.New(deps),
		routemod.New(deps, routemod.FromConfig(deps)),
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	deps.Log.Info().
		Int("skills", len(ivrOpts.Skills)).
		Int("modules", len(mods)+1).
		Msg("api mounted")
	return nil
}
