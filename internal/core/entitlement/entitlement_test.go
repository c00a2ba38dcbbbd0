package entitlement

import "testing"

func TestDecide(t *testing.T) {
	cases := []struct {
		name     string
		roles    []string
		required string
		allowed  bool
		reason   Reason
	}{
		{"required role held", []string{"a", "role_y", "b"}, "role_y", true, ReasonNone},
		{"only role held", []string{"role_y"}, "role_y", true, ReasonNone},
		{"wrong role", []string{"role_x"}, "role_y", false, ReasonMissingRole},
		{"no roles at all", nil, "role_y", false, ReasonMissingRole},
		{"case sensitive match", []string{"ROLE_Y"}, "role_y", false, ReasonMissingRole},
		{"no prefix matching", []string{"role_y2"}, "role_y", false, ReasonMissingRole},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dec := Decide(Record{RoleIDs: c.roles}, c.required)
			if dec.Allowed != c.allowed {
				t.Fatalf("Allowed = %v, want %v", dec.Allowed, c.allowed)
			}
			if dec.Reason != c.reason {
				t.Fatalf("Reason = %q, want %q", dec.Reason, c.reason)
			}
		})
	}
}

func TestAllowDenyConstructors(t *testing.T) {
	if a := Allow(); !a.Allowed || a.Reason != ReasonNone {
		t.Fatalf("Allow() = %+v", a)
	}
	if d := Deny(ReasonNotMember); d.Allowed || d.Reason != ReasonNotMember {
		t.Fatalf("Deny() = %+v", d)
	}
}
