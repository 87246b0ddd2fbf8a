package gateway

import "context"

// Func is one provider call for a capability
type Func[T any] func(ctx context.Context, query string) (T, error)

// Handle is a named link in a fallback chain
type Handle[T any] struct {
	Name string
	Call Func[T]
}

// Link builds a Handle
func Link[T any](name string, fn Func[T]) Handle[T] { return Handle[T]{Name: name, Call: fn} }

// Chain is an ordered primary-then-fallback list of providers. Empty reports
// results that count as "nothing found" and move the chain along
type Chain[T any] struct {
	Links []Handle[T]
	Empty func(T) bool
}

// NewChain builds a chain; a nil empty func treats every value as usable
func NewChain[T any](empty func(T) bool, links ...Handle[T]) Chain[T] {
	return Chain[T]{Links: links, Empty: empty}
}

func (c Chain[T]) isEmpty(v T) bool {
	if c.Empty == nil {
		return false
	}
	return c.Empty(v)
}

// Result is created fresh per call and never shared across requests
type Result[T any] struct {
	OK       bool
	Payload  T
	Kind     ErrorKind
	Provider string
	Fallback bool
}
