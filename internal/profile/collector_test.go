package profile

import (
	"strings"
	"testing"
)

func newTestCollector(t *testing.T, cfg *CollectorConfig) (*Collector, *Profile) {
	t.Helper()
	p := NewProfile()
	c, err := NewCollector(p, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c, p
}

func TestCollectorAsksFieldsInStaticOrder(t *testing.T) {
	c, _ := newTestCollector(t, nil)

	field, ok := c.Current()
	if !ok || field != FieldRegion {
		t.Fatalf("expected %q first, got %q", FieldRegion, field)
	}

	result := c.SubmitAnswer("Northeast")
	if !result.Accepted {
		t.Fatalf("expected answer to be accepted")
	}
	if result.Field != FieldRegion {
		t.Fatalf("answer recorded under %q", result.Field)
	}
	if result.Next != FieldUseCategory {
		t.Fatalf("expected %q next, got %q", FieldUseCategory, result.Next)
	}
}

func TestCollectorRejectsBlankAnswers(t *testing.T) {
	c, p := newTestCollector(t, nil)

	result := c.SubmitAnswer("   \t ")
	if result.Accepted {
		t.Fatalf("blank input must be rejected")
	}
	if result.Next != FieldRegion {
		t.Fatalf("expected re-prompt for the same field, got %q", result.Next)
	}
	if p.LockedCount() != 0 {
		t.Fatalf("rejection must not change lock state")
	}
}

func TestCollectorAcceptFuncReprompts(t *testing.T) {
	c, p := newTestCollector(t, &CollectorConfig{
		Accept: map[string]AcceptFunc{
			FieldRegion: func(answer string) bool {
				return strings.Contains(strings.ToLower(answer), "east")
			},
		},
	})

	if result := c.SubmitAnswer("somewhere"); result.Accepted {
		t.Fatalf("expected rejection by the acceptance check")
	}
	if p.LockedCount() != 0 {
		t.Fatalf("rejected answers must not lock anything")
	}

	if result := c.SubmitAnswer("Northeast"); !result.Accepted {
		t.Fatalf("expected acceptance on retry")
	}
}

func TestCollectorCompletionThreshold(t *testing.T) {
	c, _ := newTestCollector(t, &CollectorConfig{CompletionThreshold: 5})

	answers := []string{"Northeast", "commuting", "80000", "720", "yes"}
	for i, answer := range answers {
		result := c.SubmitAnswer(answer)
		if !result.Accepted {
			t.Fatalf("answer %d rejected", i)
		}
		wantComplete := i == len(answers)-1
		if result.Complete != wantComplete {
			t.Fatalf("after answer %d expected complete=%v", i, wantComplete)
		}
	}

	if !c.IsComplete() {
		t.Fatalf("expected completion at threshold")
	}

	// Over-collection past the threshold stays allowed.
	result := c.SubmitAnswer("no")
	if !result.Accepted {
		t.Fatalf("submitting past the threshold must not fail")
	}
	if !c.IsComplete() {
		t.Fatalf("completion must be monotonic over the threshold")
	}
}

func TestCollectorThresholdValidation(t *testing.T) {
	if _, err := NewCollector(NewProfile(), &CollectorConfig{CompletionThreshold: 100}); err == nil {
		t.Fatalf("expected an error for a threshold above the field count")
	}
	if _, err := NewCollector(NewProfile(), &CollectorConfig{Fields: []string{"Mystery"}}); err == nil {
		t.Fatalf("expected an error for an unknown field")
	}
}

func TestCollectorUnlockReasksThatFieldNext(t *testing.T) {
	c, p := newTestCollector(t, &CollectorConfig{CompletionThreshold: 2})

	c.SubmitAnswer("Northeast")
	c.SubmitAnswer("commuting")
	if !c.IsComplete() {
		t.Fatalf("expected completion")
	}

	if !c.RequestUnlock(FieldRegion) {
		t.Fatalf("expected unlock to report a change")
	}
	if c.IsComplete() {
		t.Fatalf("unlock must drop below the threshold")
	}

	field, ok := c.Current()
	if !ok || field != FieldRegion {
		t.Fatalf("expected the unlocked field next, got %q", field)
	}

	result := c.SubmitAnswer("Southwest")
	if result.Field != FieldRegion {
		t.Fatalf("answer recorded under %q", result.Field)
	}
	if got := p.Get(FieldUseCategory); got != "commuting" {
		t.Fatalf("other locks must stay intact, got %q", got)
	}
	if !c.IsComplete() {
		t.Fatalf("expected completion after re-answer")
	}
}

func TestCollectorResetForgetsPendingUnlock(t *testing.T) {
	c, p := newTestCollector(t, nil)

	c.SubmitAnswer("Northeast")
	c.SubmitAnswer("commuting")
	c.RequestUnlock(FieldUseCategory)

	p.Reset()
	c.Reset()

	field, ok := c.Current()
	if !ok || field != FieldRegion {
		t.Fatalf("expected a fresh interview to start at %q, got %q", FieldRegion, field)
	}
}

func TestCollectorUnlockUnknownFieldNoOp(t *testing.T) {
	c, _ := newTestCollector(t, nil)
	if c.RequestUnlock("Horsepower") {
		t.Fatalf("unknown field unlock must be a no-op")
	}
}

func TestCollectorPrioritizesByWeight(t *testing.T) {
	c, _ := newTestCollector(t, &CollectorConfig{PrioritizeByWeight: true})

	// Budget carries the highest default weight.
	field, ok := c.Current()
	if !ok || field != FieldBudget {
		t.Fatalf("expected %q first, got %q", FieldBudget, field)
	}

	c.SubmitAnswer("30k")

	field, _ = c.Current()
	if field != FieldRegion && field != FieldUseCategory && field != FieldDriveType {
		t.Fatalf("expected a weight-1.0 field next, got %q", field)
	}
}

func TestCollectorExhaustsAllFields(t *testing.T) {
	c, _ := newTestCollector(t, nil)

	for range Fields() {
		if _, ok := c.Current(); !ok {
			t.Fatalf("ran out of fields early")
		}
		if result := c.SubmitAnswer("answer"); !result.Accepted {
			t.Fatalf("unexpected rejection")
		}
	}

	if _, ok := c.Current(); ok {
		t.Fatalf("expected no field left to ask")
	}
	if result := c.SubmitAnswer("extra"); result.Accepted {
		t.Fatalf("submitting with every field locked must be a no-op")
	}
	if !c.IsComplete() {
		t.Fatalf("expected completion with all fields locked")
	}
}
