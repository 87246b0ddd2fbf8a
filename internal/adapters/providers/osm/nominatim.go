// Package osm adapts the OpenStreetMap services used as keyless fallbacks:
// Nominatim for geocoding and free-text place search, OSRM for routing
package osm

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"navline/internal/adapters/providers/httpx"
	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

// Public endpoints
const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultOSRMURL      = "https://router.project-osrm.org"
)

// Nominatim usage policy requires an identifying agent
const userAgent = "navline/1.0 (ivr navigation)"

// Nominatim implements provider.Geocoder and provider.PlaceSearcher
type Nominatim struct {
	http  *httpx.Client
	limit int
}

var (
	_ provider.Geocoder      = (*Nominatim)(nil)
	_ provider.PlaceSearcher = (*Nominatim)(nil)
)

// NewNominatim builds a client; limit caps free-text search results
func NewNominatim(baseURL string, limit int) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if limit <= 0 {
		limit = 5
	}
	return &Nominatim{
		http:  httpx.New(httpx.Options{Name: "nominatim", BaseURL: baseURL, UserAgent: userAgent}),
		limit: limit,
	}
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func (n *Nominatim) search(ctx context.Context, q string, limit int) ([]place, error) {
	v := url.Values{
		"q":               {q},
		"format":          {"json"},
		"limit":           {strconv.Itoa(limit)},
		"accept-language": {"he"},
	}
	var out []place
	if err := n.http.GetJSON(ctx, "/search", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Geocode resolves the best match for address
func (n *Nominatim) Geocode(ctx context.Context, address string) (provider.Coord, error) {
	hits, err := n.search(ctx, address, 1)
	if err != nil {
		return provider.Coord{}, err
	}
	if len(hits) == 0 {
		return provider.Coord{}, perr.NotFoundf("nominatim: no match for address")
	}
	lon, err1 := strconv.ParseFloat(hits[0].Lon, 64)
	lat, err2 := strconv.ParseFloat(hits[0].Lat, 64)
	if err1 != nil || err2 != nil {
		return provider.Coord{}, perr.JSONErrf("nominatim: bad coordinates %q,%q", hits[0].Lon, hits[0].Lat)
	}
	return provider.Coord{Lon: lon, Lat: lat}, nil
}

// SearchPlaces runs a free-text search; the first display_name segment is the name
func (n *Nominatim) SearchPlaces(ctx context.Context, query string) ([]provider.Place, error) {
	hits, err := n.search(ctx, query, n.limit)
	if err != nil {
		return nil, err
	}
	out := make([]provider.Place, 0, len(hits))
	for _, h := range hits {
		name, addr := h.Name, h.DisplayName
		if head, rest, ok := strings.Cut(h.DisplayName, ","); ok {
			if name == "" {
				name = strings.TrimSpace(head)
			}
			if name == strings.TrimSpace(head) {
				addr = strings.TrimSpace(rest)
			}
		}
		if name == "" {
			name = addr
		}
		out = append(out, provider.Place{Name: name, Address: addr})
	}
	return out, nil
}
