package profile

import "testing"

func TestPromptedExtractorAnswersCurrentField(t *testing.T) {
	e := NewPromptedExtractor()

	got := e.Extract("  Compact  ", FieldCarSize)
	if got.Action != ActionAnswer {
		t.Fatalf("expected an answer action")
	}
	if got.Field != FieldCarSize {
		t.Fatalf("expected the current field, got %q", got.Field)
	}
	if got.Value != "Compact" {
		t.Fatalf("expected trimmed value, got %q", got.Value)
	}
}

func TestKeywordExtractorChangeRequest(t *testing.T) {
	e := NewKeywordExtractor([]string{"Toyota", "Honda"})

	got := e.Extract("change my budget", FieldCarSize)
	if got.Action != ActionUnlock {
		t.Fatalf("expected an unlock action")
	}
	if got.Field != FieldBudget {
		t.Fatalf("expected budget field, got %q", got.Field)
	}
}

func TestKeywordExtractorBrandStatements(t *testing.T) {
	e := NewKeywordExtractor([]string{"Toyota", "Honda"})

	got := e.Extract("exclude toyota", FieldCarSize)
	if got.Action != ActionBlockBrand || got.Value != "Toyota" {
		t.Fatalf("expected toyota block, got %+v", got)
	}

	got = e.Extract("only Honda", FieldCarSize)
	if got.Action != ActionPreferBrand || got.Value != "Honda" {
		t.Fatalf("expected honda preference, got %+v", got)
	}
}

func TestKeywordExtractorFallsBackToAnswer(t *testing.T) {
	e := NewKeywordExtractor([]string{"Toyota"})

	// "no" alone reads like an answer, not an unknown-brand exclusion.
	got := e.Extract("no towing at all", FieldTowingNeeds)
	if got.Action != ActionAnswer {
		t.Fatalf("expected a plain answer, got %+v", got)
	}
	if got.Field != FieldTowingNeeds {
		t.Fatalf("expected the current field, got %q", got.Field)
	}
	if got.Value != "no towing at all" {
		t.Fatalf("unexpected value: %q", got.Value)
	}
}

func TestKeywordExtractorUnknownFieldChangeIsAnswer(t *testing.T) {
	e := NewKeywordExtractor(nil)

	got := e.Extract("change my mind", FieldRegion)
	if got.Action != ActionAnswer {
		t.Fatalf("unknown field change must fall back to an answer, got %+v", got)
	}
}
