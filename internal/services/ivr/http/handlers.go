// Package http provides the telephony transport: one text/plain line per request, always 200
package http

import (
	stdhttp "net/http"

	"navline/internal/modkit/httpkit"
	perr "navline/internal/platform/errors"
	"navline/internal/platform/logger"
	"navline/internal/platform/net/http/bind"
	"navline/internal/services/ivr/domain"
	svc "navline/internal/services/ivr/service"
)

// Register mounts the entry point under GET and POST at the module root
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetPost(r, "/", h.answer)
}

type handlers struct{ svc svc.Service }

func (h *handlers) answer(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	req, err := bind.Query[domain.Request](r)
	if err != nil {
		wire := perr.WireFrom(err)
		logger.C(r.Context()).Warn().
			Str("field", wire.Field).
			Str("reason", wire.Message).
			Msg("ivr request rejected")
		httpkit.Text(w, stdhttp.StatusOK, h.svc.Trouble())
		return
	}
	httpkit.Text(w, stdhttp.StatusOK, h.svc.Answer(r.Context(), req))
}
