package matching

import (
	"go.uber.org/zap"

	"github.com/carwise/vehicle-advisor/internal/catalog"
)

type brandFilter struct{}

// NewBrandFilter creates a filter that removes blocked brands and, when a
// preferred set exists, everything outside it. Blocking wins.
func NewBrandFilter() Filter {
	return &brandFilter{}
}

func (f *brandFilter) Name() string { return "brands" }

func (f *brandFilter) Disable(string) {}

func (f *brandFilter) IsEnabled() bool { return true }

func (f *brandFilter) Validate(*Config) error { return nil }

func (f *brandFilter) Apply(deps Deps, v *catalog.Vehicles) (*catalog.Vehicles, Step, error) {
	initial := v.Len()
	if deps.Brands == nil {
		return v, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := v.Select(func(vehicle *catalog.Vehicle) bool {
		return deps.Brands.Allows(vehicle.Brand)
	})

	dropped := initial - kept.Len()
	if deps.Logger != nil && dropped > 0 {
		deps.Logger.Debug("excluding vehicles by brand",
			zap.Strings("blocked_brands", deps.Brands.Blocked()),
			zap.Strings("preferred_brands", deps.Brands.Preferred()),
			zap.Int("vehicles_left", kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: dropped, Left: kept.Len()}, nil
}
