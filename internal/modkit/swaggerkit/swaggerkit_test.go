package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "navline/internal/platform/net/http"
	"navline/internal/platform/testkit"
)

func mux(enabled bool) *chi.Mux {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), enabled)
	return m
}

func fetch(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestMount_Disabled(t *testing.T) {
	if rr := fetch(t, mux(false), DocsPath+"/doc.json"); rr.Code != http.StatusNotFound {
		t.Fatalf("docs served while disabled: %d", rr.Code)
	}
}

func TestMount_RedirectsToUI(t *testing.T) {
	rr := fetch(t, mux(true), DocsPath)
	if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != DocsPath+"/" {
		t.Fatalf("code %d location %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestDocJSON_ServesDocumentedEndpoints(t *testing.T) {
	t.Setenv("CORE_API_DOCS_TITLE_SUFFIX", "(dev)")

	rr := fetch(t, mux(true), DocsPath+"/doc.json")
	if rr.Code != http.StatusOK {
		t.Fatalf("code %d", rr.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatal(err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi %v", spec["openapi"])
	}
	servers, _ := spec["servers"].([]any)
	if len(servers) != 1 || servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers %v", spec["servers"])
	}
	if title := spec["info"].(map[string]any)["title"]; title != "Navline API (dev)" {
		t.Fatalf("title %v", title)
	}
	paths := spec["paths"].(map[string]any)
	for _, p := range []string{"/route", "/meta/health", "/meta/ready", "/meta/version"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}
	post := paths["/route"].(map[string]any)["post"].(map[string]any)
	if _, ok := post["responses"].(map[string]any)["500"]; !ok {
		t.Fatal("default 500 not injected")
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("error schema missing")
	}
}

func TestDocJSON_MutatorsApply(t *testing.T) {
	testkit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { spec["x-navline"] = true })
	Register(nil)

	var spec map[string]any
	if err := json.Unmarshal(fetch(t, mux(true), DocsPath+"/doc.json").Body.Bytes(), &spec); err != nil {
		t.Fatal(err)
	}
	if spec["x-navline"] != true {
		t.Fatalf("mutator not applied: %v", spec["x-navline"])
	}
}

func TestDocJSON_BadDocument(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })
	if rr := fetch(t, mux(true), DocsPath+"/doc.json"); rr.Code != http.StatusInternalServerError {
		t.Fatalf("code %d", rr.Code)
	}
}
