package dialog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"navline/internal/core/blocklist"
	"navline/internal/core/directive"
	"navline/internal/core/gateway"
	"navline/internal/core/throttle"
	"navline/internal/platform/logger"
)

// Deps are the shared, owned structures the router works with
type Deps struct {
	Throttle  *throttle.Limiter
	Filter    *blocklist.Filter
	Skills    []Skill
	Texts     Texts
	Sentinels Sentinels
}

// Router turns one inbound signal into one directive
type Router struct {
	throttle  *throttle.Limiter
	filter    *blocklist.Filter
	skills    map[string]Skill
	texts     Texts
	sentinels Sentinels
	menu      directive.Directive
}

// NewRouter builds a Router; duplicate digits panic since the menu would be ambiguous
func NewRouter(d Deps) *Router {
	r := &Router{
		throttle:  d.Throttle,
		filter:    d.Filter,
		skills:    make(map[string]Skill, len(d.Skills)),
		texts:     d.Texts.withDefaults(),
		sentinels: d.Sentinels,
	}
	if r.sentinels == nil {
		r.sentinels = DefaultSentinels()
	}

	ordered := append([]Skill(nil), d.Skills...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Digit() < ordered[j].Digit() })

	items := []string{r.texts.Greeting}
	for _, s := range ordered {
		if _, dup := r.skills[s.Digit()]; dup {
			panic("dialog: duplicate skill digit " + s.Digit())
		}
		r.skills[s.Digit()] = s
		items = append(items, fmt.Sprintf(r.texts.MenuItem, s.Name(), s.Digit()))
	}
	r.menu = directive.ReadDigits(strings.Join(items, ". "), FieldMenu, 1)
	return r
}

// Menu returns the main menu directive
func (r *Router) Menu() directive.Directive { return r.menu }

// Serve is the telephony entry: hang-up, then throttle, then content screening
// of the caller id and speech, then Route
func (r *Router) Serve(ctx context.Context, sig InboundSignal) directive.Directive {
	if sig.HangupRequested {
		return directive.HangUp()
	}
	sig = sig.renormalize(r.sentinels)
	log := logger.C(ctx)

	if r.throttle != nil && !r.throttle.Admit(deref(sig.CallerID)) {
		log.Warn().Msg("caller throttled")
		return directive.Message(r.texts.TooMany)
	}
	if r.filter.Unsafe(deref(sig.CallerID), deref(sig.SpokenText)) {
		log.Info().Msg("request blocked by content filter")
		return directive.MessageGoto(r.texts.Blocked, directive.MenuRoot)
	}
	return r.Route(ctx, sig)
}

// Route is the state machine proper
func (r *Router) Route(ctx context.Context, sig InboundSignal) directive.Directive {
	if sig.HangupRequested {
		return directive.HangUp()
	}
	sig = sig.renormalize(r.sentinels)
	state := Classify(sig)
	log := logger.C(ctx).With().Str("state", state.String()).Logger()

	switch state {
	case StateAwaitingSpeech:
		skill, ok := r.skills[*sig.KeypadInput]
		if !ok {
			log.Info().Str("digit", *sig.KeypadInput).Msg("unbound menu digit")
			return directive.MessageGoto(r.texts.Invalid, directive.MenuRoot)
		}
		// the echo is the only way the next request learns which skill was chosen
		return directive.ReadVoice(skill.Prompt(), FieldQuery, directive.Param{Name: FieldMenu, Value: skill.Digit()})

	case StateExecuting:
		if sig.KeypadInput == nil {
			log.Warn().Msg("speech without menu echo")
			return directive.MessageGoto(r.texts.Trouble, directive.MenuRoot)
		}
		skill, ok := r.skills[*sig.KeypadInput]
		if !ok {
			log.Warn().Str("digit", *sig.KeypadInput).Msg("speech for unbound digit")
			return directive.MessageGoto(r.texts.Trouble, directive.MenuRoot)
		}
		out := r.execute(ctx, skill, *sig.SpokenText)
		log.Info().
			Str("skill", skill.Digit()).
			Bool("ok", out.OK).
			Str("kind", out.Kind.String()).
			Str("provider", out.Provider).
			Bool("fallback", out.Fallback).
			Msg("skill executed")
		return r.render(out)

	default:
		return r.menu
	}
}

// execute recovers skill panics into a failed outcome
func (r *Router) execute(ctx context.Context, s Skill, text string) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.C(ctx).Error().Interface("panic", rec).Str("skill", s.Digit()).Msg("skill panic recovered")
			out = Outcome{Kind: gateway.KindFatal}
		}
	}()
	return s.Execute(ctx, text)
}

// render is the only place an error kind becomes words
func (r *Router) render(o Outcome) directive.Directive {
	if o.OK {
		return o.Directive
	}
	switch o.Kind {
	case gateway.KindUnsafe:
		return directive.MessageGoto(r.texts.Blocked, directive.MenuRoot)
	case gateway.KindNoResult:
		return directive.MessageGoto(r.texts.NotFound, directive.MenuRoot)
	case gateway.KindThrottled:
		return directive.MessageGoto(r.texts.TooMany, directive.MenuRoot)
	default:
		return directive.MessageGoto(r.texts.Trouble, directive.MenuRoot)
	}
}
