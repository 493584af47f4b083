package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/carwise/vehicle-advisor/internal/matching"
	"github.com/carwise/vehicle-advisor/internal/profile"
	"github.com/carwise/vehicle-advisor/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Explainer asks Gemini to phrase why the shortlisted vehicles fit the
// collected profile.
type Explainer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewExplainer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Explainer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Explainer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (e *Explainer) Explain(ctx context.Context, answers map[string]string, shortlist []*matching.ScoredVehicle) (string, error) {
	if len(shortlist) == 0 {
		return "", fmt.Errorf("shortlist is empty")
	}

	prompt, err := buildPrompt(answers, shortlist)
	if err != nil {
		return "", err
	}

	e.logger.Debug("gemini explanation request",
		zap.Int("shortlist_size", len(shortlist)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	e.logger.Debug("gemini explanation response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, e.maxLogLen)),
	)

	return strings.TrimSpace(raw), nil
}

func buildPrompt(answers map[string]string, shortlist []*matching.ScoredVehicle) (string, error) {
	profileJSON, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile payload: %w", err)
	}

	entries := make([]map[string]any, 0, len(shortlist))
	for _, candidate := range shortlist {
		entries = append(entries, map[string]any{
			"brand":      candidate.Brand,
			"model":      candidate.Model,
			"model_year": candidate.ModelYear,
			"msrp_range": candidate.MSRPRange,
			"score":      candidate.Score,
		})
	}

	shortlistJSON, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal shortlist payload: %w", err)
	}

	budget := strings.TrimSpace(answers[profile.FieldBudget])
	if budget == "" {
		budget = "unknown"
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Budget: {{BUDGET}}\n\nPreferences:\n{{PROFILE_JSON}}\n\nMatches:\n{{SHORTLIST_JSON}}\n\nExplanation:"
	}

	prompt := strings.ReplaceAll(template, "{{BUDGET}}", budget)
	prompt = strings.ReplaceAll(prompt, "{{PROFILE_JSON}}", string(profileJSON))
	prompt = strings.ReplaceAll(prompt, "{{SHORTLIST_JSON}}", string(shortlistJSON))
	return prompt, nil
}
