package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/carwise/vehicle-advisor/internal/catalog"
	"github.com/carwise/vehicle-advisor/internal/matching"
	"github.com/carwise/vehicle-advisor/internal/profile"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testShortlist() []*matching.ScoredVehicle {
	return []*matching.ScoredVehicle{{
		Vehicle: &catalog.Vehicle{
			Brand:     "Toyota",
			Model:     "RAV4",
			ModelYear: 2023,
			MSRPRange: "$28,000 - $38,000",
		},
		Score: 2.7,
	}}
}

func TestExplainerBuildsPromptAndReturnsText(t *testing.T) {
	stub := &stubGenerator{response: "  The RAV4 fits your budget.  "}
	explainer := NewExplainer(stub, zap.NewNop(), 0)

	answers := map[string]string{
		profile.FieldBudget:  "30k",
		profile.FieldCarSize: "SUV",
	}

	text, err := explainer.Explain(context.Background(), answers, testShortlist())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "The RAV4 fits your budget." {
		t.Fatalf("expected trimmed response, got %q", text)
	}

	if !strings.Contains(stub.lastPrompt, "a budget of 30k") {
		t.Fatalf("expected the budget in the prompt:\n%s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, `"Car Size": "SUV"`) {
		t.Fatalf("expected the preferences in the prompt:\n%s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, `"model": "RAV4"`) {
		t.Fatalf("expected the shortlist in the prompt:\n%s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, `"msrp_range": "$28,000 - $38,000"`) {
		t.Fatalf("expected the msrp range in the prompt:\n%s", stub.lastPrompt)
	}
}

func TestExplainerUnknownBudget(t *testing.T) {
	stub := &stubGenerator{response: "ok"}
	explainer := NewExplainer(stub, zap.NewNop(), 0)

	if _, err := explainer.Explain(context.Background(), map[string]string{}, testShortlist()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stub.lastPrompt, "a budget of unknown") {
		t.Fatalf("expected the unknown budget placeholder:\n%s", stub.lastPrompt)
	}
}

func TestExplainerEmptyShortlist(t *testing.T) {
	explainer := NewExplainer(&stubGenerator{response: "ok"}, zap.NewNop(), 0)

	if _, err := explainer.Explain(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected an error for an empty shortlist")
	}
}

func TestExplainerPropagatesGeneratorError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	explainer := NewExplainer(&stubGenerator{err: wantErr}, zap.NewNop(), 0)

	_, err := explainer.Explain(context.Background(), map[string]string{}, testShortlist())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the generator error, got %v", err)
	}
}
