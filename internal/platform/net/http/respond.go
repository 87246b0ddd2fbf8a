// Package http provides the server wrapper, router seam and response writers.
// The telephony entry point speaks text/plain; auxiliary endpoints use a JSON envelope
package http

import (
	"encoding/json"
	"io"
	stdhttp "net/http"

	perr "navline/internal/platform/errors"
	pnet "navline/internal/platform/net"
	"navline/internal/platform/net/http/bind"
)

// Text writes body as text/plain with the given status
func Text(w stdhttp.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// Envelope is the standard response body for JSON endpoints
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, Envelope{
		StatusCode: stdhttp.StatusOK,
		Status:     stdhttp.StatusText(stdhttp.StatusOK),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       data,
	})
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wr := perr.WireFrom(err)
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Error:      wr.Message,
		RequestID:  pnet.RequestID(r.Context()),
	})
}

// GetJSON mounts a body-less JSON handler under GET
func GetJSON(r Router, path string, h func(*stdhttp.Request) (any, error)) {
	r.Get(path, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		out, err := h(req)
		if err != nil {
			RespondError(w, req, err)
			return
		}
		RespondOK(w, req, out)
	})
}

// PostJSON mounts a JSON handler under POST; the body is bound and validated into T
func PostJSON[T any](r Router, path string, h func(*stdhttp.Request, T) (any, error)) {
	r.Post(path, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		in, err := bind.ParseJSON[T](req)
		if err != nil {
			RespondError(w, req, err)
			return
		}
		out, err := h(req, in)
		if err != nil {
			RespondError(w, req, err)
			return
		}
		RespondOK(w, req, out)
	})
}
