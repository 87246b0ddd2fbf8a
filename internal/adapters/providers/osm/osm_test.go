package osm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

func nominatimServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "navline/") {
			t.Errorf("agent %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Query().Get("q") {
		case "Tel Aviv":
			_, _ = w.Write([]byte(`[{"lat":"32.0853","lon":"34.7818","name":"Tel Aviv","display_name":"Tel Aviv, Israel"}]`))
		case "Haifa":
			_, _ = w.Write([]byte(`[{"lat":"32.7940","lon":"34.9896","name":"","display_name":"Haifa, Israel"}]`))
		case "broken":
			_, _ = w.Write([]byte(`[{"lat":"x","lon":"y"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeocode(t *testing.T) {
	n := NewNominatim(nominatimServer(t).URL, 0)

	c, err := n.Geocode(context.Background(), "Tel Aviv")
	if err != nil {
		t.Fatal(err)
	}
	if c.Lon != 34.7818 || c.Lat != 32.0853 {
		t.Fatalf("coord %+v", c)
	}
	if _, err := n.Geocode(context.Background(), "Atlantis"); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("missing address err %v", err)
	}
	if _, err := n.Geocode(context.Background(), "broken"); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("bad coords err %v", err)
	}
}

func TestSearchPlaces_SplitsDisplayName(t *testing.T) {
	n := NewNominatim(nominatimServer(t).URL, 3)
	got, err := n.SearchPlaces(context.Background(), "Haifa")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Haifa" || got[0].Address != "Israel" {
		t.Fatalf("places %+v", got)
	}
}

const osrmOK = `{"code":"Ok","routes":[{"distance":12345.6,"duration":900,"legs":[{"steps":[
 {"distance":200,"name":"Herzl","maneuver":{"type":"depart"}},
 {"distance":1500,"name":"Begin","maneuver":{"type":"turn","modifier":"left"}},
 {"distance":0,"name":"","maneuver":{"type":"arrive"}}
]}]}]}`

func TestOSRMBetween(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route/v1/foot/34.781800,32.085300;34.989600,32.794000" {
			t.Errorf("path %s", r.URL.Path)
		}
		if r.URL.Query().Get("steps") != "true" {
			t.Errorf("steps not requested")
		}
		_, _ = w.Write([]byte(osrmOK))
	}))
	defer srv.Close()

	r, err := NewOSRM(srv.URL).Between(context.Background(),
		provider.Coord{Lon: 34.7818, Lat: 32.0853}, provider.Coord{Lon: 34.9896, Lat: 32.794}, provider.Walking)
	if err != nil {
		t.Fatal(err)
	}
	if r.DistanceMeters != 12345.6 || r.DurationSeconds != 900 || len(r.Steps) != 3 {
		t.Fatalf("route %+v", r)
	}
	if r.Steps[1].Instruction != "פנו שמאלה אל Begin" || r.Steps[2].Instruction != "הגעתם ליעד" {
		t.Fatalf("steps %+v", r.Steps)
	}
}

func TestOSRMNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","message":"Impossible route"}`))
	}))
	defer srv.Close()
	_, err := NewOSRM(srv.URL).Between(context.Background(), provider.Coord{}, provider.Coord{}, provider.Driving)
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("err %v", err)
	}
}

func TestInstruction(t *testing.T) {
	cases := []struct{ typ, mod, name, want string }{
		{"depart", "", "Herzl", "צאו לדרך אל Herzl"},
		{"turn", "right", "", "פנו ימינה"},
		{"turn", "slight left", "Ayalon", "פנו קלות שמאלה אל Ayalon"},
		{"turn", "uturn", "", "בצעו פניית פרסה"},
		{"turn", "straight", "", "המשיכו ישר"},
		{"roundabout", "right", "", "היכנסו לכיכר"},
		{"new name", "", "Jabotinsky", "המשיכו אל Jabotinsky"},
		{"end of road", "left", "", "בסוף הדרך פנו שמאלה"},
		{"arrive", "left", "Home", "הגעתם ליעד"},
	}
	for _, c := range cases {
		if got := Instruction(c.typ, c.mod, c.name); got != c.want {
			t.Errorf("%s/%s/%s: got %q want %q", c.typ, c.mod, c.name, got, c.want)
		}
	}
}

func TestRouterGeocodesThenRoutes(t *testing.T) {
	nom := nominatimServer(t)
	osrm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/route/v1/driving/") {
			t.Errorf("path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(osrmOK))
	}))
	defer osrm.Close()

	rt := NewRouter(NewNominatim(nom.URL, 1), NewOSRM(osrm.URL))
	r, err := rt.Route(context.Background(), "Tel Aviv", "Haifa", provider.Driving)
	if err != nil || r.Empty() {
		t.Fatalf("route %+v err %v", r, err)
	}

	_, _, err = rt.Endpoints(context.Background(), "Tel Aviv", "Atlantis")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("err %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "end" {
		t.Fatalf("expected field end, got %v", err)
	}
}
