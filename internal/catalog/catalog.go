package catalog

import (
	"strings"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
)

// Coefficients are a species' base yearly environmental contributions at
// full maturity. Values are illustrative domain constants, not literature
// figures; they are preserved as-is for output compatibility.
type Coefficients struct {
	CarbonKgPerYear    float64 `json:"carbonKgPerYear"`
	OxygenKgPerYear    float64 `json:"oxygenKgPerYear"`
	PollutantsGPerYear float64 `json:"pollutantsGPerYear"`
}

// DefaultCoefficients are used when a tracked plant references a species
// name the catalog does not know. A bad reference degrades to a default
// contribution instead of failing the whole impact calculation.
var DefaultCoefficients = Coefficients{
	CarbonKgPerYear:    5.0,
	OxygenKgPerYear:    8.0,
	PollutantsGPerYear: 50.0,
}

// Species is one immutable catalog entry. Outdoor trees carry climate/soil
// suitability; balcony plants carry space/sunlight/care attributes instead.
type Species struct {
	ID             int                  `json:"id"`
	Name           string               `json:"name"`
	ScientificName string               `json:"scientificName"`
	Category       models.PlantCategory `json:"category"`
	GrowthRate     string               `json:"growthRate"` // Fast | Medium | Slow
	MatureHeight   string               `json:"matureHeight,omitempty"`
	Lifespan       string               `json:"lifespan,omitempty"`
	NativeRegion   string               `json:"nativeRegion,omitempty"`

	// Outdoor suitability
	ClimateSuitability []string `json:"climateSuitability,omitempty"`
	SoilSuitability    []string `json:"soilSuitability,omitempty"`
	DroughtTolerance   string   `json:"droughtTolerance,omitempty"` // High | Medium | Low
	WaterNeeds         string   `json:"waterNeeds,omitempty"`       // High | Medium | Low

	// Balcony suitability
	SpaceRequired  string   `json:"spaceRequired,omitempty"` // Very Small | Small | Medium | Large
	SunlightNeed   []string `json:"sunlightNeed,omitempty"`  // Low | Medium | High
	CareDifficulty string   `json:"careDifficulty,omitempty"`

	Purposes         []string `json:"purposes"`
	MaintenanceLevel string   `json:"maintenanceLevel,omitempty"`
	Benefits         string   `json:"benefits,omitempty"`

	Coefficients Coefficients `json:"coefficients"`
}

// HasPurpose reports whether the species carries the given purpose tag.
func (s *Species) HasPurpose(purpose string) bool {
	for _, p := range s.Purposes {
		if p == purpose {
			return true
		}
	}
	return false
}

// SuitsClimate reports membership of the climate zone in the suitability set.
func (s *Species) SuitsClimate(zone string) bool {
	for _, z := range s.ClimateSuitability {
		if z == zone {
			return true
		}
	}
	return false
}

// SuitsSoil reports membership of the soil type in the suitability set.
func (s *Species) SuitsSoil(soil string) bool {
	for _, t := range s.SoilSuitability {
		if t == soil {
			return true
		}
	}
	return false
}

// NeedsSunlight reports whether the species lists the given sunlight band.
func (s *Species) NeedsSunlight(band string) bool {
	for _, b := range s.SunlightNeed {
		if b == band {
			return true
		}
	}
	return false
}

// OutdoorTrees returns the outdoor tree catalog in insertion order.
// The slice is shared; callers must not mutate it.
func OutdoorTrees() []Species {
	return outdoorTrees
}

// BalconyPlants returns the balcony plant catalog in insertion order.
func BalconyPlants() []Species {
	return balconyPlants
}

// All returns every catalog entry, outdoor trees first.
func All() []Species {
	all := make([]Species, 0, len(outdoorTrees)+len(balconyPlants))
	all = append(all, outdoorTrees...)
	all = append(all, balconyPlants...)
	return all
}

// Lookup finds a species by common name, case-insensitively. Display names
// carrying a parenthetical alias, like "Tulsi (Holy Basil)", also match on
// the base name alone.
func Lookup(name string) (*Species, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, set := range [][]Species{outdoorTrees, balconyPlants} {
		for i := range set {
			full := strings.ToLower(set[i].Name)
			if full == key {
				return &set[i], true
			}
			if base, _, found := strings.Cut(full, " ("); found && base == key {
				return &set[i], true
			}
		}
	}
	return nil, false
}

// CoefficientsFor resolves base coefficients by species name, falling back
// to DefaultCoefficients for unknown names.
func CoefficientsFor(name string) Coefficients {
	if sp, ok := Lookup(name); ok {
		return sp.Coefficients
	}
	return DefaultCoefficients
}

// CategoryFor resolves the plant category by species name. Unknown names
// default to outdoor, matching the conservative watering advisory class.
func CategoryFor(name string) models.PlantCategory {
	if sp, ok := Lookup(name); ok {
		return sp.Category
	}
	return models.CategoryOutdoor
}
