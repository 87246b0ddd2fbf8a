// Package service turns platform requests into directive lines
package service

import (
	"context"

	"navline/internal/core/dialog"
	"navline/internal/core/directive"
	"navline/internal/platform/logger"
	"navline/internal/services/ivr/domain"
)

// Service defines the ivr service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service over a dialog router
type Svc struct {
	router    *dialog.Router
	sentinels dialog.Sentinels
	trouble   string
}

// New constructs the service; the router must be non nil
func New(router *dialog.Router, sentinels dialog.Sentinels, texts dialog.Texts) *Svc {
	if router == nil {
		panic("ivr.Service requires a non nil dialog router")
	}
	if sentinels == nil {
		sentinels = dialog.DefaultSentinels()
	}
	trouble := texts.Trouble
	if trouble == "" {
		trouble = dialog.DefaultTexts().Trouble
	}
	return &Svc{
		router:    router,
		sentinels: sentinels,
		trouble:   directive.MessageGoto(trouble, directive.MenuRoot).Render(),
	}
}

// Answer normalizes, routes and renders. Spoken text is never logged
func (s *Svc) Answer(ctx context.Context, req domain.Request) string {
	sig := dialog.Normalize(req.Raw(), s.sentinels)
	d := s.router.Serve(ctx, sig)

	logger.C(ctx).Debug().
		Str("call_id", req.CallID).
		Str("state", dialog.Classify(sig).String()).
		Uint8("directive", uint8(d.Kind)).
		Bool("speech", sig.SpokenText != nil).
		Msg("ivr request served")

	return d.Render()
}

// Trouble returns the pre-rendered system trouble line
func (s *Svc) Trouble() string { return s.trouble }
