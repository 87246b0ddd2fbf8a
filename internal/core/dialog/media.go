package dialog

import (
	"context"

	"navline/internal/core/directive"
	"navline/internal/core/gateway"
	"navline/internal/core/provider"
)

// MediaSearch finds a track and plays its audio stream
type MediaSearch struct {
	base
	gw        *gateway.Gateway
	searchers []Provider[provider.MediaSearcher]
	resolvers []Provider[provider.AudioResolver]
}

// NewMediaSearch builds the skill
func NewMediaSearch(gw *gateway.Gateway, digit string, searchers []Provider[provider.MediaSearcher], resolvers []Provider[provider.AudioResolver]) *MediaSearch {
	return &MediaSearch{
		base:      base{digit: digit, name: "מוזיקה", prompt: "אמרו את שם השיר"},
		gw:        gw,
		searchers: searchers,
		resolvers: resolvers,
	}
}

func hitsEmpty(h []provider.Hit) bool { return len(h) == 0 }

func audioEmpty(a provider.Audio) bool { return a.URL == "" }

// Execute searches, takes the most relevant hit and resolves it to a stream
func (m *MediaSearch) Execute(ctx context.Context, spokenText string) Outcome {
	search := chainOf(m.searchers, hitsEmpty, func(s provider.MediaSearcher) gateway.Func[[]provider.Hit] {
		return s.Search
	})
	found := gateway.Call(ctx, m.gw, gateway.Media, spokenText, search)
	if !found.OK {
		return Outcome{Kind: found.Kind, Provider: found.Provider}
	}
	top := found.Payload[0]

	resolve := chainOf(m.resolvers, audioEmpty, func(r provider.AudioResolver) gateway.Func[provider.Audio] {
		return r.Resolve
	})
	audio := gateway.Call(ctx, m.gw, gateway.Audio, top.ID, resolve)
	out := fromResult(audio, func(a provider.Audio) directive.Directive {
		title := a.Title
		if title == "" {
			title = top.Title
		}
		return directive.Play(title, a.URL)
	})
	out.Fallback = out.Fallback || found.Fallback
	return out
}
