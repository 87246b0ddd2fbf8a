// Package http provides the route planning transport. Bodies are bare objects,
// {start,end,distance,duration,instructions} or {error}
package http

import (
	stdhttp "net/http"

	"navline/internal/modkit/httpkit"
	perr "navline/internal/platform/errors"
	"navline/internal/platform/logger"
	"navline/internal/platform/net/http/bind"
	"navline/internal/services/api/route/domain"
	svc "navline/internal/services/api/route/service"
)

// Register mounts the route endpoint
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Post("/", h.plan)
}

type handlers struct{ svc svc.Service }

// plan answers 400 for unusable bodies and 200 with an error message for
// addresses or routes that could not be resolved
//
// swagger:route POST /route Route routePlan
// @Summary Plan a driving route between two addresses
// @Tags Route
// @Accept json
// @Produce json
// @Param body body domain.RouteInput true "start and end addresses"
// @Success 200 {object} domain.RouteResult
// @Failure 400 {object} domain.RouteError
// @Router /route [post]
func (h *handlers) plan(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseJSON[domain.RouteInput](r)
	if err != nil {
		httpkit.JSON(w, stdhttp.StatusBadRequest, domain.RouteError{Error: perr.WireFrom(err).Message})
		return
	}
	out, err := h.svc.Plan(r.Context(), in)
	if err != nil {
		logger.C(r.Context()).Info().Err(err).Msg("route not planned")
		httpkit.JSON(w, stdhttp.StatusOK, domain.RouteError{Error: perr.WireFrom(err).Message})
		return
	}
	httpkit.JSON(w, stdhttp.StatusOK, out)
}
