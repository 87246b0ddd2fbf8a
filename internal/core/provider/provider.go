// Package provider declares the narrow interfaces the dialog core calls and the
// payloads external capabilities return. Adapters live under internal/adapters/providers
package provider

import "context"

// Mode is a travel mode
type Mode string

// Travel modes
const (
	Driving Mode = "driving"
	Walking Mode = "walking"
)

// Step is one maneuver. Primary providers fill DistanceText, fallbacks fill DistanceMeters
type Step struct {
	DistanceText   string  `json:"distance_text,omitempty"`
	DistanceMeters float64 `json:"distance_m,omitempty"`
	Instruction    string  `json:"instruction"`
}

// Leg is a primary-provider leg with provider-formatted text
type Leg struct {
	StartAddress string `json:"start_address"`
	EndAddress   string `json:"end_address"`
	DurationText string `json:"duration_text"`
	Steps        []Step `json:"steps"`
}

// Route is either leg-shaped (primary) or a raw summary with steps (fallback)
type Route struct {
	Legs            []Leg   `json:"legs,omitempty"`
	DistanceMeters  float64 `json:"distance_m,omitempty"`
	DurationSeconds float64 `json:"duration_s,omitempty"`
	Steps           []Step  `json:"steps,omitempty"`
}

// Empty reports a route without legs or steps
func (r Route) Empty() bool { return len(r.Legs) == 0 && len(r.Steps) == 0 }

// Coord is a WGS84 point
type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Hit is a media search result, ordered by relevance
type Hit struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

// Audio is a resolved playable stream
type Audio struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Place is a place lookup result
type Place struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Router plans a route between two free-text addresses
type Router interface {
	Route(ctx context.Context, origin, destination string, mode Mode) (Route, error)
}

// Geocoder resolves a free-text address
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coord, error)
}

// MediaSearcher finds media by free text
type MediaSearcher interface {
	Search(ctx context.Context, query string) ([]Hit, error)
}

// AudioResolver turns a media id into a playable stream
type AudioResolver interface {
	Resolve(ctx context.Context, id string) (Audio, error)
}

// Completer produces a conversational reply
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// PlaceSearcher finds places by free text
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, query string) ([]Place, error)
}
