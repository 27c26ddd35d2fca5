package core

import (
	"regexp"
	"testing"
)

func TestDeriveID(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		a := DeriveID("Miskolc", "Ady Endre utca")
		b := DeriveID("Miskolc", "Ady Endre utca")
		if a != b {
			t.Errorf("Expected identical ids for identical parts, got %s and %s", a, b)
		}
	})

	t.Run("Is 16 Hex Chars", func(t *testing.T) {
		id := DeriveID("anything")
		if !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(id) {
			t.Errorf("Expected 16 lowercase hex chars, got %q", id)
		}
	})

	t.Run("Sensitive to Part Boundaries", func(t *testing.T) {
		// "ab"+"c" and "a"+"bc" must not collide, the separator sees to it.
		a := DeriveID("ab", "c")
		b := DeriveID("a", "bc")
		if a == b {
			t.Errorf("Expected distinct ids for different part splits, both were %s", a)
		}
	})

	t.Run("Distinct Inputs Distinct IDs", func(t *testing.T) {
		a := DeriveID("Miskolc", "Ady Endre utca")
		b := DeriveID("Miskolc", "Áfonyás utca")
		if a == b {
			t.Errorf("Expected distinct ids, both were %s", a)
		}
	})
}
