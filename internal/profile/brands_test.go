package profile

import "testing"

func TestBrandFilterSetBlockWins(t *testing.T) {
	b := NewBrandFilterSet()
	b.Prefer("Toyota")
	b.Block("Toyota")

	if b.Allows("Toyota") {
		t.Fatalf("blocked brand must never be allowed")
	}
	if len(b.Preferred()) != 0 {
		t.Fatalf("blocking must clear the brand from preferred, got %v", b.Preferred())
	}
}

func TestBrandFilterSetPreferClearsBlocked(t *testing.T) {
	b := NewBrandFilterSet()
	b.Block("Honda")
	b.Prefer("Honda")

	if !b.Allows("Honda") {
		t.Fatalf("preferring must re-allow the brand")
	}
	if len(b.Blocked()) != 0 {
		t.Fatalf("preferring must clear the brand from blocked, got %v", b.Blocked())
	}
}

func TestBrandFilterSetPreferredRestricts(t *testing.T) {
	b := NewBrandFilterSet()
	b.Prefer("Subaru")

	if b.Allows("Mazda") {
		t.Fatalf("non-preferred brand must be rejected when preferred is non-empty")
	}
	if !b.Allows("SUBARU") {
		t.Fatalf("brand matching must be case-insensitive")
	}
}

func TestBrandFilterSetEmptyAllowsEverything(t *testing.T) {
	b := NewBrandFilterSet()
	if !b.Allows("Anything") {
		t.Fatalf("empty sets must allow every brand")
	}
}

func TestBrandFilterSetReset(t *testing.T) {
	b := NewBrandFilterSet()
	b.Block("Honda")
	b.Prefer("Subaru")
	b.Reset()

	if !b.Allows("Honda") {
		t.Fatalf("reset must clear the blocked set")
	}
	if len(b.Preferred()) != 0 {
		t.Fatalf("reset must clear the preferred set")
	}
}

func TestBrandFilterSetIgnoresBlankNames(t *testing.T) {
	b := NewBrandFilterSet()
	b.Block("  ")
	b.Prefer("")

	if len(b.Blocked()) != 0 || len(b.Preferred()) != 0 {
		t.Fatalf("blank brand names must be ignored")
	}
}
