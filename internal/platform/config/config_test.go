package config

import (
	"testing"
	"time"

	kit "navline/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	ivr := New().Prefix("IVR_")
	if got := ivr.key("THROTTLE_LIMIT"); got != "IVR_THROTTLE_LIMIT" {
		t.Fatalf("key() = %q, want %q", got, "IVR_THROTTLE_LIMIT")
	}
	nested := ivr.Prefix("NAV_")
	if got := nested.key("MODE"); got != "IVR_NAV_MODE" {
		t.Fatalf("nested key() = %q, want %q", got, "IVR_NAV_MODE")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("PROVIDER_")
	t.Setenv("PROVIDER_GEMINI_KEY", "  k-123 ")
	if got := c.MustString("GEMINI_KEY"); got != "k-123" {
		t.Fatalf("MustString = %q, want %q", got, "k-123")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustDuration(t *testing.T) {
	c := New().Prefix("D_")
	t.Setenv("D_TIMEOUT", " 12s ")
	if got := c.MustDuration("TIMEOUT"); got != 12*time.Second {
		t.Fatalf("MustDuration = %v, want %v", got, 12*time.Second)
	}
	t.Setenv("D_BAD", "soon")
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " navline ")
	if got := c.MayString("NAME", "x"); got != "navline" {
		t.Fatalf("MayString value = %q, want %q", got, "navline")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 30); got != 30 {
		t.Fatalf("MayInt default = %d, want %d", got, 30)
	}
	t.Setenv("I_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d, want %d", got, 7)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d, want %d", got, 3)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if !c.MayBool("T", false) {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v, want %v", got, 150*time.Millisecond)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"None", "null"}
	if got := c.MayCSV("MISS", def); len(got) != 2 || got[0] != "None" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	t.Setenv("CSV_EMPTY", " , ,  ,")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV all-empty -> default mismatch: %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "memory", "memory", "redis"); got != "memory" {
		t.Fatalf("MayEnum default = %q, want %q", got, "memory")
	}
	t.Setenv("E_BACKEND", "Redis")
	if got := c.MayEnum("BACKEND", "memory", "memory", "redis"); got != "redis" {
		t.Fatalf("MayEnum allowed value = %q, want %q", got, "redis")
	}
	t.Setenv("E_BAD", "memcached")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "memory", "memory", "redis") })
}
