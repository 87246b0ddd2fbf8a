// Package youtube adapts the YouTube Data API v3 search endpoint
package youtube

import (
	"context"
	"html"
	"net/url"
	"strconv"

	"navline/internal/adapters/providers/httpx"
	"navline/internal/core/provider"
)

// DefaultBaseURL is the Data API root
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Options configures the searcher
type Options struct {
	APIKey     string
	BaseURL    string
	MaxResults int
	Region     string
}

// Searcher implements provider.MediaSearcher
type Searcher struct {
	http *httpx.Client
	o    Options
}

var _ provider.MediaSearcher = (*Searcher)(nil)

// New builds a Searcher
func New(o Options) *Searcher {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.MaxResults <= 0 {
		o.MaxResults = 5
	}
	if o.Region == "" {
		o.Region = "IL"
	}
	return &Searcher{http: httpx.New(httpx.Options{Name: "youtube", BaseURL: o.BaseURL}), o: o}
}

type searchResp struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns video hits in relevance order
func (s *Searcher) Search(ctx context.Context, query string) ([]provider.Hit, error) {
	if err := httpx.RequireKey("youtube", s.o.APIKey); err != nil {
		return nil, err
	}
	q := url.Values{
		"part":       {"snippet"},
		"type":       {"video"},
		"q":          {query},
		"maxResults": {strconv.Itoa(s.o.MaxResults)},
		"regionCode": {s.o.Region},
		"key":        {s.o.APIKey},
	}
	var out searchResp
	if err := s.http.GetJSON(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	hits := make([]provider.Hit, 0, len(out.Items))
	for _, it := range out.Items {
		if it.ID.VideoID == "" {
			continue
		}
		hits = append(hits, provider.Hit{Title: html.UnescapeString(it.Snippet.Title), ID: it.ID.VideoID})
	}
	return hits, nil
}
