// Package domain holds the IVR request shape and service port
package domain

import (
	"context"

	"navline/internal/core/dialog"
)

// Request is one platform callback. Absent and empty fields bind the same;
// sentinel handling happens in dialog.Normalize
type Request struct {
	CallID   string `query:"ApiCallId" validate:"max=64"`
	ApiPhone string `query:"ApiPhone"  validate:"max=32"`
	Menu     string `query:"menu"      validate:"max=16"`
	Query    string `query:"query"     validate:"max=2000"`
	Hangup   string `query:"hangup"    validate:"max=16"`
}

// Raw maps the request onto the platform-agnostic signal
func (r Request) Raw() dialog.RawSignal {
	return dialog.RawSignal{
		CallerID:    r.ApiPhone,
		KeypadInput: r.Menu,
		SpokenText:  r.Query,
		Hangup:      r.Hangup,
	}
}

// ServicePort is consumed by the http transport
type ServicePort interface {
	// Answer returns the rendered directive line for one request
	Answer(ctx context.Context, req Request) string
	// Trouble is the line served when the request itself is unusable
	Trouble() string
}
