// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"navline/internal/core/version"
	"navline/internal/modkit/httpkit"
)

// Pinger is satisfied by backends that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Breakers reports provider circuit states
type Breakers interface {
	Breakers() map[string]string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Cache       Pinger
	Gateway     Breakers
	Now         func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.GetJSON(r, "/health", h.health)
	httpkit.GetJSON(r, "/ready", h.ready)
	httpkit.GetJSON(r, "/version", h.version)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
	Now     string `json:"now"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness; open breakers degrade but never fail it
type ReadyResponse struct {
	Status    string            `json:"status"` // ok degraded fail
	Checks    []ReadyCheck      `json:"checks"`
	Providers map[string]string `json:"providers,omitempty"`
	Now       string            `json:"now"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := h.deps.Now()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
		Now:     now.UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness with cache ping and provider breaker states
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	cache := ReadyCheck{Name: "cache", Status: "skipped"}
	if h.deps.Cache != nil {
		cache.Status = "ok"
		if err := h.deps.Cache.Ping(ctx); err != nil {
			cache.Status, cache.Error = "fail", err.Error()
		}
	}

	out := ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{cache},
		Now:    h.deps.Now().UTC().Format(time.RFC3339),
	}
	if h.deps.Gateway != nil {
		out.Providers = h.deps.Gateway.Breakers()
		for _, st := range out.Providers {
			if st != "closed" {
				out.Status = "degraded"
			}
		}
	}
	if cache.Status == "fail" {
		out.Status = "fail"
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
