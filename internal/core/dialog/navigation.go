package dialog

import (
	"context"
	"strings"

	"navline/internal/core/directive"
	"navline/internal/core/gateway"
	"navline/internal/core/provider"
)

// Navigation plans a route from "origin to destination" speech
type Navigation struct {
	base
	gw            *gateway.Gateway
	links         []Provider[provider.Router]
	defaultOrigin string
	texts         Texts
}

// NavigationOptions configures Navigation
type NavigationOptions struct {
	Digit         string
	DefaultOrigin string
	Texts         Texts
}

// NewNavigation builds the skill; links are tried in order
func NewNavigation(gw *gateway.Gateway, o NavigationOptions, links ...Provider[provider.Router]) *Navigation {
	return &Navigation{
		base:          base{digit: o.Digit, name: "ניווט", prompt: "אמרו מאיפה ולאן, למשל תל אביב עד חיפה"},
		gw:            gw,
		links:         links,
		defaultOrigin: o.DefaultOrigin,
		texts:         o.Texts.withDefaults(),
	}
}

// separators split origin from destination, first match wins
var separators = []string{" to ", " עד ", " אל "}

// walkingWords flip the travel mode and are removed before parsing
var walkingWords = []string{"walking", "on foot", "ברגל", "הליכה"}

// ParseTrip splits spoken text into origin, destination and mode.
// With no separator the whole text is the destination and origin is def
func ParseTrip(text, def string) (origin, dest string, mode provider.Mode, ok bool) {
	mode = provider.Driving
	for _, w := range walkingWords {
		for i := indexFold(text, w); i >= 0; i = indexFold(text, w) {
			mode = provider.Walking
			text = text[:i] + " " + text[i+len(w):]
		}
	}
	text = " " + strings.Join(strings.Fields(text), " ") + " "

	for _, sep := range separators {
		if i := indexFold(text, sep); i >= 0 {
			origin = strings.TrimSpace(text[:i])
			dest = strings.TrimSpace(text[i+len(sep):])
			if indexFold(origin, "from ") == 0 {
				origin = strings.TrimSpace(origin[len("from "):])
			}
			break
		}
	}
	if dest == "" {
		origin, dest = def, strings.TrimSpace(text)
	}
	if origin == "" || dest == "" {
		return "", "", mode, false
	}
	return origin, dest, mode, true
}

// indexFold is an ASCII case-insensitive strings.Index that keeps byte offsets valid
func indexFold(s, sub string) int {
	n := len(sub)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}

// Execute routes through the chain; the raw speech is the gateway query
func (n *Navigation) Execute(ctx context.Context, spokenText string) Outcome {
	origin, dest, mode, ok := ParseTrip(spokenText, n.defaultOrigin)
	if !ok {
		return Outcome{OK: true, Directive: directive.ReadVoice(n.texts.NavUsage, FieldQuery, directive.Param{Name: FieldMenu, Value: n.digit})}
	}
	chain := chainOf(n.links, provider.Route.Empty, func(r provider.Router) gateway.Func[provider.Route] {
		return func(ctx context.Context, _ string) (provider.Route, error) {
			return r.Route(ctx, origin, dest, mode)
		}
	})
	res := gateway.Call(ctx, n.gw, gateway.Navigation, spokenText, chain)
	return fromResult(res, func(r provider.Route) directive.Directive {
		return directive.MessageGoto(directive.RouteText(r), directive.MenuRoot)
	})
}
