// Package blocklist screens free text against a fixed list of blocked terms.
// Matching is lower-cased substring containment; there are no word boundaries
// and no normalization beyond casing
package blocklist

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed terms.txt
var defaultTerms string

// Filter is immutable after New and safe for concurrent use
type Filter struct {
	terms []string
	ac    *automaton
}

// DefaultTerms returns the embedded list
func DefaultTerms() []string { return parseTerms(defaultTerms) }

// New builds a filter over terms; blank terms are ignored and terms are lower-cased
func New(terms ...string) *Filter {
	f := &Filter{ac: newAutomaton()}
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		f.ac.add([]byte(t), len(f.terms))
		f.terms = append(f.terms, t)
	}
	f.ac.build()
	return f
}

// Default builds a filter from the embedded list plus extra
func Default(extra ...string) *Filter {
	return New(append(DefaultTerms(), extra...)...)
}

// Match reports the first blocked term found in text
func (f *Filter) Match(text string) (string, bool) {
	if f == nil || len(f.terms) == 0 || text == "" {
		return "", false
	}
	id := f.ac.first([]byte(strings.ToLower(text)))
	if id < 0 {
		return "", false
	}
	return f.terms[id], true
}

// Unsafe reports whether any of texts contains a blocked term
func (f *Filter) Unsafe(texts ...string) bool {
	for _, t := range texts {
		if _, hit := f.Match(t); hit {
			return true
		}
	}
	return false
}

// Len returns the number of distinct terms
func (f *Filter) Len() int { return len(f.terms) }

func parseTerms(src string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
