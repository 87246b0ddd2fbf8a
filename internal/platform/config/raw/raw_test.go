package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " debug ")
	t.Setenv("LOG_SERVICE", " navline ")

	lc := New().Prefix("LOG_")

	tests := []struct {
		name string
		key  string
		def  string
		want string
	}{
		{name: "prefixed hit", key: "LEVEL", def: "info", want: "debug"},
		{name: "trimmed", key: "SERVICE", def: "x", want: "navline"},
		{name: "missing returns default", key: "MISSING", def: "defv", want: "defv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lc.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("RB_")
	for _, v := range []string{"1", "true", "YES", "on"} {
		t.Setenv("RB_FLAG", v)
		if !c.GetBool("FLAG", false) {
			t.Fatalf("GetBool(%q) = false, want true", v)
		}
	}
	t.Setenv("RB_FLAG", "nah")
	if c.GetBool("FLAG", true) {
		t.Fatalf("GetBool(nah) = true, want false")
	}
	if !c.GetBool("MISSING", true) {
		t.Fatalf("GetBool missing should return default")
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("RI_")
	t.Setenv("RI_N", " 42 ")
	if got := c.GetInt("N", 1); got != 42 {
		t.Fatalf("GetInt = %d, want 42", got)
	}
	t.Setenv("RI_BAD", "4x")
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt bad = %d, want 7", got)
	}
	t.Setenv("RI_NEG", "-3")
	if got := c.GetInt("NEG", 5); got != 5 {
		t.Fatalf("GetInt negative = %d, want 5", got)
	}
}
