package ai

import (
	"context"

	"github.com/carwise/vehicle-advisor/internal/matching"
)

// Explainer phrases a natural-language explanation of the shortlist for
// the collected profile. The deterministic core never calls a live service
// directly; implementations are injected so tests can stub them.
type Explainer interface {
	Explain(ctx context.Context, profile map[string]string, shortlist []*matching.ScoredVehicle) (string, error)
}

// ExplainerFunc adapts a plain function to the Explainer interface.
type ExplainerFunc func(ctx context.Context, profile map[string]string, shortlist []*matching.ScoredVehicle) (string, error)

func (f ExplainerFunc) Explain(ctx context.Context, profile map[string]string, shortlist []*matching.ScoredVehicle) (string, error) {
	return f(ctx, profile, shortlist)
}
