package raw

import "testing"

func TestGet(t *testing.T) {
	c := New().Prefix("LOG_")
	if got := c.Get("MISSING", "info"); got != "info" {
		t.Fatalf("Get default = %q", got)
	}
	t.Setenv("LOG_LEVEL", " debug ")
	if got := c.Get("LEVEL", "info"); got != "debug" {
		t.Fatalf("Get = %q, want debug", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("LOG_")
	if !c.GetBool("MISSING", true) {
		t.Fatalf("GetBool default expected true")
	}
	for _, v := range []string{"1", "true", "yes"} {
		t.Setenv("LOG_PRETTY", v)
		if !c.GetBool("PRETTY", false) {
			t.Fatalf("GetBool(%q) expected true", v)
		}
	}
	t.Setenv("LOG_PRETTY", "0")
	if c.GetBool("PRETTY", true) {
		t.Fatalf("GetBool(0) expected false")
	}
}

func TestGetInt(t *testing.T) {
	c := New()
	if got := c.GetInt("RAW_MISSING", 7); got != 7 {
		t.Fatalf("GetInt default = %d", got)
	}
	t.Setenv("RAW_N", "42")
	if got := c.GetInt("RAW_N", 7); got != 42 {
		t.Fatalf("GetInt = %d", got)
	}
	t.Setenv("RAW_BAD", "-3")
	if got := c.GetInt("RAW_BAD", 7); got != 7 {
		t.Fatalf("GetInt non-numeric = %d, want default", got)
	}
}
