package directive

import (
	"strings"
	"sync"
	"unicode"

	pstrings "navline/internal/platform/strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxBody is the longest free-text body the platform tolerates, in runes
const MaxBody = 400

// TruncatedSuffix is appended only when a body was cut
const TruncatedSuffix = " (truncated)"

// metachar maps grammar separators and line breaks to spaces
func metachar(r rune) rune {
	switch r {
	case '&', '=', '.', ',', '-', '\n', '\r', '\t':
		return ' '
	}
	return r
}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Map(metachar),
			runes.Remove(runes.In(unicode.Cc)),
			runes.Remove(runes.In(unicode.Cf)),
		)
	},
}

// Sanitize makes free text safe to embed after t-: NFC, separators and line
// breaks become spaces, control and format runes go, whitespace collapses
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return ""
	}
	return pstrings.CollapseSpace(out)
}

// Truncate cuts s so that s plus TruncatedSuffix fits MaxBody runes
func Truncate(s string) string {
	if pstrings.RuneLen(s) <= MaxBody {
		return s
	}
	keep := MaxBody - pstrings.RuneLen(TruncatedSuffix)
	return strings.TrimRight(pstrings.TruncateRunes(s, keep), " ") + TruncatedSuffix
}

// Body is Sanitize then Truncate
func Body(s string) string { return Truncate(Sanitize(s)) }
