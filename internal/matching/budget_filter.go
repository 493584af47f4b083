package matching

import (
	"go.uber.org/zap"

	"github.com/carwise/vehicle-advisor/internal/catalog"
	"github.com/carwise/vehicle-advisor/internal/profile"
)

type budgetFilter struct {
	ceiling float64
	slack   float64
}

// NewBudgetFilter creates a filter that drops vehicles whose minimum MSRP
// exceeds the slack-adjusted budget ceiling. Records with an unknown price
// carry the PriceUnknown sentinel and never pass.
func NewBudgetFilter() Filter {
	return &budgetFilter{}
}

func (f *budgetFilter) Name() string { return "budget" }

func (f *budgetFilter) Disable(string) {}

func (f *budgetFilter) IsEnabled() bool { return true }

func (f *budgetFilter) Validate(cfg *Config) error {
	cfg = cfg.withDefaults()
	f.ceiling = cfg.DefaultBudget
	f.slack = cfg.SlackMultiplier
	return nil
}

func (f *budgetFilter) Apply(deps Deps, v *catalog.Vehicles) (*catalog.Vehicles, Step, error) {
	initial := v.Len()

	ceiling := f.ceiling
	if deps.Profile != nil {
		ceiling = ParseBudget(deps.Profile.Get(profile.FieldBudget), f.ceiling)
	}
	limit := ceiling * f.slack

	kept := v.Select(func(vehicle *catalog.Vehicle) bool {
		return vehicle.MSRPMin <= limit
	})

	dropped := initial - kept.Len()
	if deps.Logger != nil && dropped > 0 {
		deps.Logger.Debug("excluding vehicles over budget",
			zap.Float64("ceiling", ceiling),
			zap.Float64("slack_multiplier", f.slack),
			zap.Int("vehicles_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: dropped, Left: kept.Len()}, nil
}
