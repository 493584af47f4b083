package matching

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/carwise/vehicle-advisor/internal/catalog"
	"github.com/carwise/vehicle-advisor/internal/profile"
)

const (
	// DefaultTopN is the shortlist size when the caller passes none.
	DefaultTopN = 3
	// DefaultBudgetCeiling applies when the budget answer is missing or
	// unparsable.
	DefaultBudgetCeiling = 45000
	// DefaultSlackMultiplier admits near-budget vehicles.
	DefaultSlackMultiplier = 1.2
)

// Filter represents a single filtering step applied to catalog vehicles.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(deps Deps, v *catalog.Vehicles) (*catalog.Vehicles, Step, error)
}

// Deps aggregates the per-session state shared across filtering steps.
type Deps struct {
	Logger  *zap.Logger
	Profile *profile.Profile
	Brands  *profile.BrandFilterSet
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains the matcher tuning shared by filters and scoring.
type Config struct {
	// Weights maps field name to importance weight. Defaults to
	// profile.DefaultWeights().
	Weights map[string]float64
	// SlackMultiplier stretches the budget ceiling. Zero means the
	// default 1.2.
	SlackMultiplier float64
	// DefaultBudget is the ceiling used when no budget can be parsed.
	// Zero means 45000.
	DefaultBudget float64
}

func (c *Config) withDefaults() *Config {
	cfg := &Config{
		Weights:         profile.DefaultWeights(),
		SlackMultiplier: DefaultSlackMultiplier,
		DefaultBudget:   DefaultBudgetCeiling,
	}
	if c == nil {
		return cfg
	}
	if c.Weights != nil {
		cfg.Weights = c.Weights
	}
	if c.SlackMultiplier > 0 {
		cfg.SlackMultiplier = c.SlackMultiplier
	}
	if c.DefaultBudget > 0 {
		cfg.DefaultBudget = c.DefaultBudget
	}
	return cfg
}

// Run executes the supplied filters sequentially, returning the surviving
// vehicles.
func Run(cfg *Config, deps Deps, steps []Filter, v *catalog.Vehicles) (*catalog.Vehicles, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(deps, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		v = next
	}

	return v, nil
}
