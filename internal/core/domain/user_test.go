package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "jeng", "user"} {
		role, ok := ParseRole(valid)
		if !ok {
			t.Fatalf("expected %q to parse", valid)
		}
		if string(role) != valid {
			t.Fatalf("expected %q, got %q", valid, role)
		}
	}

	for _, invalid := range []string{"", "Admin", "jEng", "root", "engineer"} {
		if _, ok := ParseRole(invalid); ok {
			t.Fatalf("expected %q to be rejected", invalid)
		}
	}
}

func TestLandingPath(t *testing.T) {
	cases := map[Role]string{
		RoleAdmin: "/admin",
		RoleJeng:  "/jeng",
		RoleUser:  "/",
	}
	for role, want := range cases {
		if got := role.LandingPath(); got != want {
			t.Fatalf("role %s: expected %s, got %s", role, want, got)
		}
	}

	// Unknown roles fall through to home.
	if got := Role("ghost").LandingPath(); got != "/" {
		t.Fatalf("unknown role: expected /, got %s", got)
	}
}
