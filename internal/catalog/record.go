package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

const (
	BrandColumn     = "Brand"
	ModelColumn     = "Model"
	ModelYearColumn = "Model Year"
	MSRPRangeColumn = "MSRP Range"
)

// PriceUnknown marks records whose MSRP range carried no dollar figure.
// Such records are effectively priced out of any budget instead of in.
const PriceUnknown = math.MaxFloat64

type Vehicles struct {
	Items []*Vehicle
}

type Vehicle struct {
	Brand     string `mapstructure:"Brand"`
	Model     string `mapstructure:"Model"`
	ModelYear int    `mapstructure:"Model Year"`
	MSRPRange string `mapstructure:"MSRP Range"`

	// MSRPMin and MSRPMax are derived from MSRPRange once at load time.
	MSRPMin float64 `mapstructure:"-"`
	MSRPMax float64 `mapstructure:"-"`

	// Attributes holds every catalog column without a dedicated field,
	// keyed by the cleaned header name. Unknown columns stay matchable
	// as opaque strings.
	Attributes map[string]string `mapstructure:",remain"`
}

// Field returns the textual value of a catalog column by name. Missing
// columns yield an empty string, never an error.
func (v *Vehicle) Field(name string) string {
	name = CleanColumnName(name)
	switch {
	case strings.EqualFold(name, BrandColumn):
		return v.Brand
	case strings.EqualFold(name, ModelColumn):
		return v.Model
	case strings.EqualFold(name, ModelYearColumn):
		if v.ModelYear == 0 {
			return ""
		}
		return fmt.Sprintf("%d", v.ModelYear)
	case strings.EqualFold(name, MSRPRangeColumn):
		return v.MSRPRange
	}

	for key, value := range v.Attributes {
		if strings.EqualFold(key, name) {
			return value
		}
	}

	return ""
}

// Label renders the vehicle the way it is shown to the user.
func (v *Vehicle) Label() string {
	return fmt.Sprintf("%s %s (%d)", v.Brand, v.Model, v.ModelYear)
}

func (v *Vehicles) Len() int {
	return len(v.Items)
}

// Select returns a new list holding the vehicles the keep function accepts.
// The catalog itself is never mutated after load.
func (v *Vehicles) Select(keep func(*Vehicle) bool) *Vehicles {
	selected := &Vehicles{Items: make([]*Vehicle, 0, len(v.Items))}
	for _, vehicle := range v.Items {
		if keep(vehicle) {
			selected.Items = append(selected.Items, vehicle)
		}
	}
	return selected
}

// Brands returns the distinct brand names present in the catalog, sorted.
func (v *Vehicles) Brands() []string {
	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, vehicle := range v.Items {
		if _, ok := seen[vehicle.Brand]; ok {
			continue
		}
		seen[vehicle.Brand] = struct{}{}
		brands = append(brands, vehicle.Brand)
	}
	sort.Strings(brands)
	return brands
}

func (v *Vehicles) FindByModel(model string) *Vehicle {
	for _, vehicle := range v.Items {
		if strings.EqualFold(vehicle.Model, model) {
			return vehicle
		}
	}
	return nil
}

// Report by brand.
func (v *Vehicles) ReportByBrand() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, vehicle := range v.Items {
		report[vehicle.Brand] = append(report[vehicle.Brand], map[string]string{
			"model":      vehicle.Model,
			"model year": fmt.Sprintf("%d", vehicle.ModelYear),
			"msrp range": vehicle.MSRPRange,
		})
	}
	return report
}

func (v *Vehicles) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "vehicles_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}
