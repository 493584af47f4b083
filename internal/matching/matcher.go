package matching

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/carwise/vehicle-advisor/internal/catalog"
	"github.com/carwise/vehicle-advisor/internal/profile"
)

// ErrNoCatalog is returned when a shortlist is requested before the
// catalog is loaded.
var ErrNoCatalog = errors.New("catalog is not loaded")

// ScoredVehicle annotates a catalog record with its match score for one
// shortlist computation.
type ScoredVehicle struct {
	*catalog.Vehicle
	Score float64
}

// Matcher ranks catalog vehicles against the current profile. It holds no
// per-turn state; the same profile and brand sets always produce the same
// ordered shortlist.
type Matcher struct {
	catalog *catalog.Vehicles
	cfg     *Config
	logger  *zap.Logger
}

func NewMatcher(cat *catalog.Vehicles, cfg *Config, logger *zap.Logger) (*Matcher, error) {
	if cat == nil {
		return nil, ErrNoCatalog
	}

	return &Matcher{
		catalog: cat,
		cfg:     cfg.withDefaults(),
		logger:  logger,
	}, nil
}

// Shortlist filters the catalog by brand and budget, scores the survivors
// by weighted partial matches, and returns the top N ranked by score
// descending with model year descending as the tie-break. An empty result
// means nothing fits the current constraints.
func (m *Matcher) Shortlist(p *profile.Profile, brands *profile.BrandFilterSet, topN int) ([]*ScoredVehicle, error) {
	if m == nil || m.catalog == nil {
		return nil, ErrNoCatalog
	}

	if topN <= 0 {
		topN = DefaultTopN
	}

	deps := Deps{
		Logger:  m.logger,
		Profile: p,
		Brands:  brands,
	}

	steps := []Filter{
		NewBrandFilter(),
		NewBudgetFilter(),
	}

	survivors, err := Run(m.cfg, deps, steps, m.catalog)
	if err != nil {
		return nil, err
	}

	scored := make([]*ScoredVehicle, 0, survivors.Len())
	for _, vehicle := range survivors.Items {
		scored = append(scored, &ScoredVehicle{
			Vehicle: vehicle,
			Score:   m.score(p, vehicle),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ModelYear > scored[j].ModelYear
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	return scored, nil
}

// score sums the weight of every answered field whose answer text appears,
// case-insensitively, inside the vehicle's matching catalog column. The
// budget field has no catalog column to match; its weight is credited to
// every vehicle that fits the parsed ceiling.
func (m *Matcher) score(p *profile.Profile, vehicle *catalog.Vehicle) float64 {
	if p == nil {
		return 0
	}

	total := 0.0
	for _, field := range profile.Fields() {
		weight, weighted := m.cfg.Weights[field]
		if !weighted {
			continue
		}

		answer := strings.TrimSpace(p.Get(field))
		if answer == "" {
			continue
		}

		if field == profile.FieldBudget {
			ceiling := ParseBudget(answer, m.cfg.DefaultBudget)
			if vehicle.MSRPMin <= ceiling*m.cfg.SlackMultiplier {
				total += weight
			}
			continue
		}

		column := vehicle.Field(field)
		if column == "" {
			continue
		}

		if strings.Contains(strings.ToLower(column), strings.ToLower(answer)) {
			total += weight
		}
	}

	return total
}
