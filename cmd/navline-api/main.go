// @title         Navline API
// @version       0.1.0
// @description   Route planning and service meta endpoints
// @BasePath      /api/v1

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"navline/internal/core/blocklist"
	"navline/internal/core/gateway"
	"navline/internal/core/respcache"
	"navline/internal/core/throttle"
	"navline/internal/modkit"
	"navline/internal/platform/config"
	"navline/internal/platform/logger"
	phttp "navline/internal/platform/net/http"

	"navline/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	ivrCfg := root.Prefix("IVR_")

	// bring up logging early
	l := logger.Get()

	cache, err := respcache.FromConfig(ctx, root.Prefix("RESPCACHE_"))
	if err != nil {
		l.Panic().Err(err).Msg("respcache.FromConfig failed")
	}
	if c, ok := cache.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				l.Error().Err(err).Msg("failed to close response cache")
			}
		}()
	}

	filter := blocklist.Default(ivrCfg.MayCSV("BLOCKLIST_EXTRA", nil)...)
	deps := modkit.Deps{
		Log:      *l,
		Cfg:      root,
		Cache:    cache,
		Filter:   filter,
		Gateway:  gateway.New(filter, cache, gateway.OptionsFromConfig(ivrCfg)),
		Throttle: throttle.New(ivrCfg.MayDuration("THROTTLE_WINDOW", throttle.DefaultWindow), ivrCfg.MayInt("THROTTLE_LIMIT", throttle.DefaultLimit), nil),
		Pool:     gateway.NewPool(ivrCfg.MayInt("WORKERS", 4)),
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	if err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         apiCfg,
		Deps:           deps,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
