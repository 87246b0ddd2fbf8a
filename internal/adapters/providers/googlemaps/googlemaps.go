// Package googlemaps adapts the Google Directions and Places Text Search APIs
package googlemaps

import (
	"context"
	"html"
	"net/url"
	"regexp"
	"strings"

	"navline/internal/adapters/providers/httpx"
	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

// DefaultBaseURL is the public Maps web service root
const DefaultBaseURL = "https://maps.googleapis.com"

// Options configures the client
type Options struct {
	APIKey   string
	BaseURL  string
	Language string
}

// Client implements provider.Router and provider.PlaceSearcher
type Client struct {
	http *httpx.Client
	key  string
	lang string
}

var (
	_ provider.Router        = (*Client)(nil)
	_ provider.PlaceSearcher = (*Client)(nil)
)

// New builds a client; a missing key surfaces per call as Unauthorized
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Language == "" {
		o.Language = "he"
	}
	return &Client{
		http: httpx.New(httpx.Options{Name: "googlemaps", BaseURL: o.BaseURL}),
		key:  o.APIKey,
		lang: o.Language,
	}
}

type textValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type directionsResp struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []struct {
			StartAddress string    `json:"start_address"`
			EndAddress   string    `json:"end_address"`
			Duration     textValue `json:"duration"`
			Distance     textValue `json:"distance"`
			Steps        []struct {
				HTMLInstructions string    `json:"html_instructions"`
				Distance         textValue `json:"distance"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route calls /maps/api/directions/json and keeps the first route
func (c *Client) Route(ctx context.Context, origin, destination string, mode provider.Mode) (provider.Route, error) {
	if err := httpx.RequireKey("googlemaps", c.key); err != nil {
		return provider.Route{}, err
	}
	if mode == "" {
		mode = provider.Driving
	}
	q := url.Values{
		"origin":      {origin},
		"destination": {destination},
		"mode":        {string(mode)},
		"language":    {c.lang},
		"key":         {c.key},
	}
	var out directionsResp
	if err := c.http.GetJSON(ctx, "/maps/api/directions/json", q, &out); err != nil {
		return provider.Route{}, err
	}
	if err := statusErr(out.Status, out.ErrorMessage); err != nil {
		return provider.Route{}, err
	}
	if len(out.Routes) == 0 {
		return provider.Route{}, nil
	}

	var r provider.Route
	for _, l := range out.Routes[0].Legs {
		leg := provider.Leg{
			StartAddress: l.StartAddress,
			EndAddress:   l.EndAddress,
			DurationText: l.Duration.Text,
		}
		for _, s := range l.Steps {
			leg.Steps = append(leg.Steps, provider.Step{
				DistanceText:   s.Distance.Text,
				DistanceMeters: s.Distance.Value,
				Instruction:    StripHTML(s.HTMLInstructions),
			})
		}
		r.DistanceMeters += l.Distance.Value
		r.DurationSeconds += l.Duration.Value
		r.Legs = append(r.Legs, leg)
	}
	return r, nil
}

type placesResp struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

// SearchPlaces calls /maps/api/place/textsearch/json
func (c *Client) SearchPlaces(ctx context.Context, query string) ([]provider.Place, error) {
	if err := httpx.RequireKey("googlemaps", c.key); err != nil {
		return nil, err
	}
	q := url.Values{"query": {query}, "language": {c.lang}, "key": {c.key}}
	var out placesResp
	if err := c.http.GetJSON(ctx, "/maps/api/place/textsearch/json", q, &out); err != nil {
		return nil, err
	}
	if err := statusErr(out.Status, out.ErrorMessage); err != nil {
		return nil, err
	}
	places := make([]provider.Place, 0, len(out.Results))
	for _, p := range out.Results {
		places = append(places, provider.Place{Name: p.Name, Address: p.FormattedAddress})
	}
	return places, nil
}

// statusErr maps the body-level status Maps returns alongside HTTP 200
func statusErr(status, msg string) error {
	switch status {
	case "OK", "":
		return nil
	case "ZERO_RESULTS", "NOT_FOUND":
		return perr.NotFoundf("googlemaps %s", strings.ToLower(status))
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		return perr.Newf(perr.ErrorCodeTooManyRequests, "googlemaps %s: %s", status, msg)
	case "REQUEST_DENIED":
		return perr.Unauthorizedf("googlemaps request denied: %s", msg)
	case "INVALID_REQUEST", "MAX_WAYPOINTS_EXCEEDED", "MAX_ROUTE_LENGTH_EXCEEDED":
		return perr.InvalidArgf("googlemaps %s: %s", status, msg)
	default:
		return perr.Unavailablef("googlemaps %s: %s", status, msg)
	}
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// StripHTML flattens html_instructions into plain text
func StripHTML(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}
