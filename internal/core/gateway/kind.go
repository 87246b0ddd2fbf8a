package gateway

import (
	"context"
	"errors"

	perr "navline/internal/platform/errors"

	"github.com/sony/gobreaker"
)

// Capability names one external capability; it prefixes cache keys
type Capability string

// Capabilities served by the provider chains
const (
	Navigation Capability = "navigation"
	Media      Capability = "media"
	Audio      Capability = "audio"
	Chat       Capability = "chat"
	Places     Capability = "places"
)

// ErrorKind is the failure taxonomy the dialog layer turns into caller-facing text
type ErrorKind uint8

// Kinds; KindNone accompanies successful results
const (
	KindNone ErrorKind = iota
	KindUnsafe
	KindNoResult
	KindThrottled
	KindTransient
	KindFatal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnsafe:
		return "unsafe"
	case KindNoResult:
		return "no_result"
	case KindThrottled:
		return "throttled"
	case KindTransient:
		return "transient"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// errEmpty marks a provider that answered without usable data
var errEmpty = perr.NotFoundf("empty result")

// Classify maps a provider error to an ErrorKind
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return KindTransient
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return KindNoResult
	case perr.IsCode(err, perr.ErrorCodeTooManyRequests):
		return KindThrottled
	case perr.Fatal(err):
		return KindFatal
	case perr.Retryable(err), errors.Is(err, context.Canceled):
		return KindTransient
	default:
		return KindFatal
	}
}
