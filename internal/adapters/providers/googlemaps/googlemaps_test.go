package googlemaps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

func serve(t *testing.T, path, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			t.Errorf("path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "k" {
			t.Errorf("missing key")
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const directionsOK = `{"status":"OK","routes":[{"legs":[{
 "start_address":"Tel Aviv","end_address":"Haifa",
 "duration":{"text":"1 hour 5 mins","value":3900},
 "distance":{"text":"95 km","value":95000},
 "steps":[
  {"html_instructions":"Head <b>north</b> on Ibn Gabirol","distance":{"text":"0.5 km","value":500}},
  {"html_instructions":"Turn &amp; merge<div style=\"x\">Toll road</div>","distance":{"text":"94 km","value":94500}}
 ]}]}]}`

func TestRoute_MapsLegs(t *testing.T) {
	srv := serve(t, "/maps/api/directions/json", directionsOK)
	c := New(Options{APIKey: "k", BaseURL: srv.URL})

	r, err := c.Route(context.Background(), "Tel Aviv", "Haifa", provider.Walking)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Legs) != 1 || r.Legs[0].DurationText != "1 hour 5 mins" || len(r.Legs[0].Steps) != 2 {
		t.Fatalf("route %+v", r)
	}
	if got := r.Legs[0].Steps[0].Instruction; got != "Head north on Ibn Gabirol" {
		t.Fatalf("instruction %q", got)
	}
	if got := r.Legs[0].Steps[1].Instruction; got != "Turn & merge Toll road" {
		t.Fatalf("instruction %q", got)
	}
	if r.DistanceMeters != 95000 || r.DurationSeconds != 3900 {
		t.Fatalf("totals %+v", r)
	}
}

func TestRoute_SendsMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("mode") != "walking" || r.URL.Query().Get("language") != "he" {
			t.Errorf("query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(directionsOK))
	}))
	defer srv.Close()
	if _, err := New(Options{APIKey: "k", BaseURL: srv.URL}).Route(context.Background(), "a", "b", provider.Walking); err != nil {
		t.Fatal(err)
	}
}

func TestRoute_BodyStatus(t *testing.T) {
	cases := map[string]perr.ErrorCode{
		"ZERO_RESULTS":     perr.ErrorCodeNotFound,
		"NOT_FOUND":        perr.ErrorCodeNotFound,
		"OVER_QUERY_LIMIT": perr.ErrorCodeTooManyRequests,
		"REQUEST_DENIED":   perr.ErrorCodeUnauthorized,
		"INVALID_REQUEST":  perr.ErrorCodeInvalidArgument,
		"UNKNOWN_ERROR":    perr.ErrorCodeUnavailable,
	}
	for status, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"` + status + `","routes":[]}`))
		}))
		_, err := New(Options{APIKey: "k", BaseURL: srv.URL}).Route(context.Background(), "a", "b", provider.Driving)
		srv.Close()
		if perr.CodeOf(err) != want {
			t.Fatalf("%s: got %v", status, err)
		}
	}
}

func TestMissingKeyIsFatal(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:1"})
	if _, err := c.Route(context.Background(), "a", "b", provider.Driving); !perr.Fatal(err) {
		t.Fatalf("route err %v", err)
	}
	if _, err := c.SearchPlaces(context.Background(), "pizza"); !perr.Fatal(err) {
		t.Fatalf("places err %v", err)
	}
}

func TestSearchPlaces(t *testing.T) {
	srv := serve(t, "/maps/api/place/textsearch/json", `{"status":"OK","results":[
	 {"name":"Cafe A","formatted_address":"Dizengoff 1"},
	 {"name":"Cafe B","formatted_address":"Allenby 2"}]}`)
	got, err := New(Options{APIKey: "k", BaseURL: srv.URL}).SearchPlaces(context.Background(), "cafe")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Name != "Cafe B" || got[1].Address != "Allenby 2" {
		t.Fatalf("places %+v", got)
	}
}
