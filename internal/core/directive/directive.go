// Package directive renders the single response line the telephony platform
// executes: read a prompt, play a message or audio, or hang up
package directive

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind is the directive form
type Kind uint8

// Kinds
const (
	KindHangUp Kind = iota
	KindRead
	KindMessage
	KindPlay
	KindPlayFile
)

// Capture selects what a read directive collects
type Capture uint8

// Capture modes
const (
	Digits Capture = iota
	Voice
)

// DefaultLang is the speech recognition language for voice reads
const DefaultLang = "he-IL"

// MenuRoot is the goto target of the main menu
const MenuRoot = "/0"

// Param is one api_add echo pair the platform sends back on the next request
type Param struct {
	Name  string
	Value string
}

// Directive is one router decision. The zero value hangs up
type Directive struct {
	Kind    Kind
	Text    string // prompt, message or title
	Field   string // read target
	Capture Capture
	Digits  int // max keypad digits
	Lang    string
	Echo    []Param
	Goto    string
	URL     string
	Path    string
}

// ReadDigits prompts and captures up to n keypad digits into field
func ReadDigits(prompt, field string, n int) Directive {
	if n < 1 {
		n = 1
	}
	return Directive{Kind: KindRead, Text: prompt, Field: field, Capture: Digits, Digits: n}
}

// ReadVoice prompts and captures speech into field, echoing params back
func ReadVoice(prompt, field string, echo ...Param) Directive {
	return Directive{Kind: KindRead, Text: prompt, Field: field, Capture: Voice, Lang: DefaultLang, Echo: echo}
}

// Message speaks text and waits for the caller
func Message(text string) Directive { return Directive{Kind: KindMessage, Text: text} }

// MessageGoto speaks text then jumps to target
func MessageGoto(text, target string) Directive {
	return Directive{Kind: KindMessage, Text: text, Goto: target}
}

// Play announces title and streams url with caller playback control
func Play(title, u string) Directive { return Directive{Kind: KindPlay, Text: title, URL: u} }

// PlayFile plays a file stored on the platform
func PlayFile(path string) Directive { return Directive{Kind: KindPlayFile, Path: path} }

// HangUp ends the call
func HangUp() Directive { return Directive{Kind: KindHangUp} }

// Render returns exactly one line in the platform grammar
func (d Directive) Render() string {
	switch d.Kind {
	case KindRead:
		return d.renderRead()
	case KindMessage:
		line := "id_list_message=t-" + Body(d.Text)
		if d.Goto != "" {
			line += "&goto=" + safePath(d.Goto)
		}
		return line
	case KindPlay:
		return "id_list_message=t-" + Body(d.Text) +
			"&play_url=" + url.QueryEscape(d.URL) +
			"&play_url_control=yes"
	case KindPlayFile:
		return "playfile=" + safePath(d.Path)
	default:
		return ""
	}
}

func (d Directive) String() string { return d.Render() }

func (d Directive) renderRead() string {
	var b strings.Builder
	b.WriteString("read=t-")
	b.WriteString(Body(d.Text))
	b.WriteByte('=')
	b.WriteString(token(d.Field))

	switch d.Capture {
	case Voice:
		lang := d.Lang
		if lang == "" {
			lang = DefaultLang
		}
		b.WriteString(",no,voice,")
		b.WriteString(token(lang))
		b.WriteString(",no")
	default:
		n := max(d.Digits, 1)
		fmt.Fprintf(&b, ",no,%d,1,7,No,no,no", n)
	}

	for i, p := range d.Echo {
		fmt.Fprintf(&b, "&api_add_%d=%s=%s", i, token(p.Name), token(p.Value))
	}
	return b.String()
}

// token keeps only characters that cannot break the grammar in names and echo values
func token(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return -1
		}
	}, s)
}

// safePath allows platform folder paths like /0 or /2/15
func safePath(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' {
			return r
		}
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}
		return -1
	}, s)
}
