package dialog

import (
	"context"

	"navline/internal/core/directive"
	"navline/internal/core/gateway"
)

// Outcome is what a skill hands back to the router. Failed outcomes carry only
// a Kind; the router picks the words
type Outcome struct {
	OK        bool
	Directive directive.Directive
	Kind      gateway.ErrorKind
	Provider  string
	Fallback  bool
}

// Skill is one menu choice
type Skill interface {
	Digit() string
	Name() string
	Prompt() string
	Execute(ctx context.Context, spokenText string) Outcome
}

// Provider names one implementation of a capability inside a chain
type Provider[P any] struct {
	Name string
	Impl P
}

// Named builds a Provider
func Named[P any](name string, impl P) Provider[P] { return Provider[P]{Name: name, Impl: impl} }

// chainOf adapts named providers to a gateway chain; call picks the method to run
func chainOf[P, T any](links []Provider[P], empty func(T) bool, call func(P) gateway.Func[T]) gateway.Chain[T] {
	handles := make([]gateway.Handle[T], 0, len(links))
	for _, l := range links {
		handles = append(handles, gateway.Link(l.Name, call(l.Impl)))
	}
	return gateway.NewChain(empty, handles...)
}

// fromResult turns a gateway result into an Outcome using render on success
func fromResult[T any](r gateway.Result[T], render func(T) directive.Directive) Outcome {
	if !r.OK {
		return Outcome{Kind: r.Kind, Provider: r.Provider}
	}
	return Outcome{OK: true, Directive: render(r.Payload), Provider: r.Provider, Fallback: r.Fallback}
}

// base carries the fields every skill shares
type base struct {
	digit  string
	name   string
	prompt string
}

func (b base) Digit() string  { return b.digit }
func (b base) Name() string   { return b.name }
func (b base) Prompt() string { return b.prompt }
