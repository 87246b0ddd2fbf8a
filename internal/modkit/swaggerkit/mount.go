// Package swaggerkit provides helpers to mount Swagger UI and the JSON spec
package swaggerkit

import (
	"net/http"

	phttp "navline/internal/platform/net/http"
)

// DocsPath is where the UI and spec are served
const DocsPath = "/api/docs"

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON("/api/v1"))
	phttp.MountSwagger(r, DocsPath, DocsPath+"/doc.json")
}
