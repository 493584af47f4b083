package matching

import "testing"

func TestParseBudget(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"under $50k, maybe less", 50000},
		{"$25,000", 25000},
		{"25k", 25000},
		{"30K tops", 30000},
		{"around 42000", 42000},
		{"1.5k", 1500},
	}

	for _, tc := range cases {
		if got := ParseBudget(tc.text, 45000); got != tc.want {
			t.Fatalf("ParseBudget(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParseBudgetFallback(t *testing.T) {
	if got := ParseBudget("no idea", 45000); got != 45000 {
		t.Fatalf("expected the default ceiling, got %v", got)
	}
	if got := ParseBudget("", 45000); got != 45000 {
		t.Fatalf("expected the default ceiling for empty text, got %v", got)
	}
}
