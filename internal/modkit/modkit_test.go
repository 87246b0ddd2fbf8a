package modkit

import (
	"testing"

	"navline/internal/modkit/httpkit"
	"navline/internal/platform/testkit"
)

// stub module that satisfies Module and records calls
type stub struct {
	mounted bool
	ports   any
}

func (s *stub) MountRoutes(_ httpkit.Router) { s.mounted = true }
func (s *stub) Ports() any                   { return s.ports }
func (s *stub) Name() string                 { return "stub" }

var _ Module = (*stub)(nil)

func TestModule_InterfaceSurface(t *testing.T) {
	t.Parallel()

	m := &stub{ports: 42}

	var r httpkit.Router
	m.MountRoutes(r)

	if !m.mounted {
		t.Fatal("expected MountRoutes to be called")
	}
	if got := m.Ports(); got != 42 {
		t.Fatalf("unexpected Ports value: got=%v want=42", got)
	}
}

func TestBuilder_TypeSignatureAndUse(t *testing.T) {
	t.Parallel()

	var b Builder = func(_ Deps, _ ...Option) Module {
		return &stub{ports: "ok"}
	}

	m := b(Deps{})
	if p := m.Ports(); p != "ok" {
		t.Fatalf("unexpected Ports value from built module: got=%v want=ok", p)
	}
}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type ports struct{ N int }
	m := &stub{ports: ports{N: 3}}

	if p, ok := PortsOf[ports](m); !ok || p.N != 3 {
		t.Fatalf("PortsOf = %+v, %v", p, ok)
	}
	if _, ok := PortsOf[string](m); ok {
		t.Fatal("PortsOf should fail on type mismatch")
	}
	testkit.MustPanic(t, func() { MustPortsOf[string](m) })
	testkit.MustNotPanic(t, func() { _ = MustPortsOf[ports](m) })
}
