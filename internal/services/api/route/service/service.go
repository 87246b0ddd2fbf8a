// Package service plans driving routes between two free-text addresses
package service

import (
	"context"
	"strconv"
	"strings"

	"navline/internal/core/directive"
	"navline/internal/core/gateway"
	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
	"navline/internal/services/api/route/domain"
)

// Capability keys route results in the shared cache and breaker logs
const Capability gateway.Capability = "route"

// Caller-facing failure messages
const (
	MsgNotFound = "אחת הכתובות לא נמצאה"
	MsgNoRoute  = "לא נמצא מסלול"
	MsgBlocked  = "הבקשה נחסמה"
	MsgTooMany  = "יותר מדי בקשות, נסו שוב בעוד דקה"
	MsgTrouble  = "תקלה במערכת, נסו שוב"
)

// Service defines the route service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service through the gateway
type Svc struct {
	gw     *gateway.Gateway
	name   string
	router provider.Router
}

// New constructs the service; gw and router must be non nil
func New(gw *gateway.Gateway, name string, router provider.Router) *Svc {
	if gw == nil || router == nil {
		panic("route.Service requires a gateway and a router")
	}
	return &Svc{gw: gw, name: name, router: router}
}

// Plan geocodes both ends and routes between them. Failures come back as
// perr errors whose message is already caller facing
func (s *Svc) Plan(ctx context.Context, in domain.RouteInput) (domain.RouteResult, error) {
	start, end := strings.TrimSpace(in.Start), strings.TrimSpace(in.End)

	// geocoding failures carry the "start" or "end" field; anything else that
	// comes back empty means both addresses resolved but no route joins them
	var lastErr error
	chain := gateway.NewChain(provider.Route.Empty,
		gateway.Link[provider.Route](s.name, func(ctx context.Context, _ string) (provider.Route, error) {
			r, err := s.router.Route(ctx, start, end, provider.Driving)
			lastErr = err
			return r, err
		}),
	)
	res := gateway.Call(ctx, s.gw, Capability, start+" | "+end, chain)
	if !res.OK {
		if res.Kind == gateway.KindNoResult && perr.WireFrom(lastErr).Field == "" {
			return domain.RouteResult{}, perr.New(perr.ErrorCodeNotFound, MsgNoRoute)
		}
		return domain.RouteResult{}, kindErr(res.Kind)
	}
	return Format(start, end, res.Payload), nil
}

// Format renders a route the way the JSON endpoint reports it
func Format(start, end string, r provider.Route) domain.RouteResult {
	var steps []provider.Step
	for _, l := range r.Legs {
		steps = append(steps, l.Steps...)
	}
	steps = append(steps, r.Steps...)

	parts := make([]string, 0, len(steps))
	for _, st := range steps {
		if ins := strings.TrimSpace(st.Instruction); ins != "" {
			parts = append(parts, ins)
		}
	}
	return domain.RouteResult{
		Start:        start,
		End:          end,
		Distance:     strconv.FormatFloat(directive.Kilometers(r.DistanceMeters), 'f', -1, 64) + " km",
		Duration:     strconv.Itoa(directive.Minutes(r.DurationSeconds)) + " minutes",
		Instructions: strings.Join(parts, ". "),
	}
}

func kindErr(k gateway.ErrorKind) error {
	switch k {
	case gateway.KindNoResult:
		return perr.New(perr.ErrorCodeNotFound, MsgNotFound)
	case gateway.KindUnsafe:
		return perr.New(perr.ErrorCodeInvalidArgument, MsgBlocked)
	case gateway.KindThrottled:
		return perr.New(perr.ErrorCodeTooManyRequests, MsgTooMany)
	default:
		return perr.New(perr.ErrorCodeUnavailable, MsgTrouble)
	}
}
