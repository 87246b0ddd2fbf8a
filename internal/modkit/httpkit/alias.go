// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "navline/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type for JSON endpoints
	Envelope = phttp.Envelope

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Text writes a text/plain body
func Text(w http.ResponseWriter, status int, body string) { phttp.Text(w, status, body) }

// OK writes a 200 envelope
func OK(w http.ResponseWriter, r *http.Request, data any) { phttp.RespondOK(w, r, data) }

// Error writes an error envelope with the mapped status
func Error(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }

// JSON writes v as-is without the envelope
func JSON(w http.ResponseWriter, status int, v any) { phttp.JSON(w, status, v) }
