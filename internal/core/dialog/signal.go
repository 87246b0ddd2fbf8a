// Package dialog is the per-request IVR state machine. Nothing is kept between
// requests: the platform echoes the selected digit back and that echo is the
// only continuity there is
package dialog

import "strings"

// Platform field names
const (
	FieldCaller = "ApiPhone"
	FieldMenu   = "menu"
	FieldQuery  = "query"
	FieldHangup = "hangup"
)

// RawSignal holds platform strings exactly as received
type RawSignal struct {
	CallerID    string
	KeypadInput string
	SpokenText  string
	Hangup      string
}

// InboundSignal is a normalized request; nil means not provided
type InboundSignal struct {
	CallerID        *string
	KeypadInput     *string
	SpokenText      *string
	HangupRequested bool
}

// Sentinels are the values the platform sends for fields it did not collect
type Sentinels map[string]struct{}

// DefaultSentinels are None, null and undefined; blank values are always absent
func DefaultSentinels() Sentinels { return NewSentinels("None", "null", "undefined") }

// NewSentinels builds a set; matching ignores case and surrounding space
func NewSentinels(vals ...string) Sentinels {
	s := make(Sentinels, len(vals))
	for _, v := range vals {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			s[v] = struct{}{}
		}
	}
	return s
}

// present returns nil for blank or sentinel values, else the trimmed value
func (s Sentinels) present(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if _, ok := s[strings.ToLower(v)]; ok {
		return nil
	}
	return &v
}

// Normalize turns platform strings into an InboundSignal; runs before any routing decision
func Normalize(raw RawSignal, s Sentinels) InboundSignal {
	if s == nil {
		s = DefaultSentinels()
	}
	return InboundSignal{
		CallerID:        s.present(raw.CallerID),
		KeypadInput:     s.present(raw.KeypadInput),
		SpokenText:      s.present(raw.SpokenText),
		HangupRequested: hangupFlag(raw.Hangup),
	}
}

// renormalize applies the sentinel rule to an already built signal
func (sig InboundSignal) renormalize(s Sentinels) InboundSignal {
	out := sig
	out.CallerID = s.present(deref(sig.CallerID))
	out.KeypadInput = s.present(deref(sig.KeypadInput))
	out.SpokenText = s.present(deref(sig.SpokenText))
	return out
}

func hangupFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Ptr is a helper for building signals in callers and tests
func Ptr(s string) *string { return &s }
