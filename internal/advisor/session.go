// Package advisor ties the profile interview, brand filters, and vehicle
// matcher into a single per-session facade. Each session owns its own
// state; nothing here is shared between sessions.
package advisor

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/carwise/vehicle-advisor/internal/ai"
	"github.com/carwise/vehicle-advisor/internal/catalog"
	"github.com/carwise/vehicle-advisor/internal/matching"
	"github.com/carwise/vehicle-advisor/internal/profile"
)

// ErrNoExplainer is returned by Explain when no text generator was
// injected into the session.
var ErrNoExplainer = errors.New("explainer is not configured")

// Config tunes a session. Zero values fall back to the package defaults.
type Config struct {
	Collector *profile.CollectorConfig
	Matcher   *matching.Config
	// TopN is the default shortlist size. Zero means matching.DefaultTopN.
	TopN int
}

// Session drives one conversation: it collects answers, maintains the
// brand filter sets, and recomputes the shortlist on demand.
type Session struct {
	logger    *zap.Logger
	catalog   *catalog.Vehicles
	profile   *profile.Profile
	brands    *profile.BrandFilterSet
	collector *profile.Collector
	matcher   *matching.Matcher
	explainer ai.Explainer
	topN      int
}

// NewSession builds a session over a loaded catalog. The explainer may be
// nil; Explain then reports ErrNoExplainer.
func NewSession(cat *catalog.Vehicles, cfg *Config, explainer ai.Explainer, logger *zap.Logger) (*Session, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	matcher, err := matching.NewMatcher(cat, cfg.Matcher, logger)
	if err != nil {
		return nil, err
	}

	userProfile := profile.NewProfile()
	collector, err := profile.NewCollector(userProfile, cfg.Collector)
	if err != nil {
		return nil, err
	}

	topN := cfg.TopN
	if topN <= 0 {
		topN = matching.DefaultTopN
	}

	return &Session{
		logger:    logger,
		catalog:   cat,
		profile:   userProfile,
		brands:    profile.NewBrandFilterSet(),
		collector: collector,
		matcher:   matcher,
		explainer: explainer,
		topN:      topN,
	}, nil
}

// CurrentQuestion returns the field being asked and its question text.
// ok is false once every field is locked.
func (s *Session) CurrentQuestion() (field, question string, ok bool) {
	field, ok = s.collector.Current()
	if !ok {
		return "", "", false
	}
	return field, profile.Question(field), true
}

// SubmitAnswer records free text against the current field.
func (s *Session) SubmitAnswer(raw string) profile.AdvanceResult {
	result := s.collector.SubmitAnswer(raw)
	if result.Accepted {
		s.logger.Debug("answer recorded",
			zap.String("field", result.Field),
			zap.Bool("complete", result.Complete),
		)
	}
	return result
}

// RequestUnlock re-opens exactly one answered field.
func (s *Session) RequestUnlock(field string) bool {
	changed := s.collector.RequestUnlock(field)
	if changed {
		s.logger.Debug("field unlocked", zap.String("field", field))
	}
	return changed
}

func (s *Session) IsComplete() bool {
	return s.collector.IsComplete()
}

// Profile returns a copy of the collected answers.
func (s *Session) Profile() map[string]string {
	return s.profile.Snapshot()
}

// ComputeMatches returns the ranked shortlist for the current profile and
// brand filters. topN <= 0 uses the session default.
func (s *Session) ComputeMatches(topN int) ([]*matching.ScoredVehicle, error) {
	if topN <= 0 {
		topN = s.topN
	}
	return s.matcher.Shortlist(s.profile, s.brands, topN)
}

func (s *Session) SetBlockedBrands(brands ...string) {
	s.brands.Block(brands...)
}

func (s *Session) SetPreferredBrands(brands ...string) {
	s.brands.Prefer(brands...)
}

func (s *Session) BlockedBrands() []string   { return s.brands.Blocked() }
func (s *Session) PreferredBrands() []string { return s.brands.Preferred() }

// CatalogBrands returns the distinct brand names present in the catalog.
func (s *Session) CatalogBrands() []string {
	return s.catalog.Brands()
}

// Explain asks the injected text generator to phrase the shortlist.
func (s *Session) Explain(ctx context.Context, shortlist []*matching.ScoredVehicle) (string, error) {
	if s.explainer == nil {
		return "", ErrNoExplainer
	}
	return s.explainer.Explain(ctx, s.profile.Snapshot(), shortlist)
}

// Reset discards every answer, lock, and brand filter.
func (s *Session) Reset() {
	s.profile.Reset()
	s.brands.Reset()
	s.collector.Reset()
	s.logger.Debug("session reset")
}
