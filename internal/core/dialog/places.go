package dialog

import (
	"context"

	"navline/internal/core/directive"
	"navline/internal/core/gateway"
	"navline/internal/core/provider"
)

// PlaceLookup reads back places matching the spoken text
type PlaceLookup struct {
	base
	gw    *gateway.Gateway
	links []Provider[provider.PlaceSearcher]
	limit int
}

// NewPlaceLookup builds the skill; limit caps how many places are read
func NewPlaceLookup(gw *gateway.Gateway, digit string, limit int, links ...Provider[provider.PlaceSearcher]) *PlaceLookup {
	if limit <= 0 {
		limit = 3
	}
	return &PlaceLookup{
		base:  base{digit: digit, name: "חיפוש מקומות", prompt: "אמרו איזה מקום לחפש"},
		gw:    gw,
		links: links,
		limit: limit,
	}
}

func placesEmpty(p []provider.Place) bool { return len(p) == 0 }

// Execute searches places through the cacheable chain
func (p *PlaceLookup) Execute(ctx context.Context, spokenText string) Outcome {
	chain := chainOf(p.links, placesEmpty, func(s provider.PlaceSearcher) gateway.Func[[]provider.Place] {
		return s.SearchPlaces
	})
	res := gateway.Call(ctx, p.gw, gateway.Places, spokenText, chain)
	return fromResult(res, func(places []provider.Place) directive.Directive {
		return directive.MessageGoto(directive.PlacesText(places, p.limit), directive.MenuRoot)
	})
}
