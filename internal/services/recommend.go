package services

import (
	"sort"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/catalog"
)

// Environment is the resolved environmental context for a location. It is
// treated as opaque input: geocoding and weather lookups live outside this
// core. PollutionLevel may be empty when the collaborator did not supply one.
type Environment struct {
	ClimateZone    string  `json:"climateZone"`
	AnnualRainfall float64 `json:"annualRainfall"` // mm/year
	PollutionLevel string  `json:"pollutionLevel,omitempty"`
	SoilType       string  `json:"soilType"`
}

// Filters narrow an already-scored recommendation list. Absent filters
// impose no constraint.
type Filters struct {
	Purposes    []string `json:"purposes,omitempty"`
	GrowthRates []string `json:"growthRates,omitempty"`
}

// ScoredSpecies is a catalog entry plus its recommendation score.
type ScoredSpecies struct {
	catalog.Species
	Score int `json:"recommendationScore"`
}

const minSoilMatches = 3

// Recommend ranks outdoor tree species for an environment. Pure function of
// (catalog, env, filters): identical inputs always yield identical output.
// An empty result is a valid "no matches" answer, never an error.
func Recommend(env Environment, filters Filters) []ScoredSpecies {
	trees := catalog.OutdoorTrees()

	climateSuitable := make([]catalog.Species, 0, len(trees))
	for _, tree := range trees {
		if tree.SuitsClimate(env.ClimateZone) {
			climateSuitable = append(climateSuitable, tree)
		}
	}

	soilSuitable := make([]catalog.Species, 0, len(climateSuitable))
	for _, tree := range climateSuitable {
		if tree.SuitsSoil(env.SoilType) {
			soilSuitable = append(soilSuitable, tree)
		}
	}

	// Too few matches over-constrains the result; relax the soil filter
	// and fall back to the climate-only set.
	candidates := soilSuitable
	if len(soilSuitable) < minSoilMatches {
		candidates = climateSuitable
	}

	scored := make([]ScoredSpecies, 0, len(candidates))
	for _, tree := range candidates {
		scored = append(scored, ScoredSpecies{Species: tree, Score: scoreOutdoor(tree, env)})
	}

	// Stable sort keeps catalog insertion order on ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return applyFilters(scored, filters)
}

func scoreOutdoor(tree catalog.Species, env Environment) int {
	score := 0

	// Dry areas favor drought tolerance
	if env.AnnualRainfall < 800 {
		switch tree.DroughtTolerance {
		case "High":
			score += 3
		case "Medium":
			score++
		}
	}

	// Wet areas favor thirsty species
	if env.AnnualRainfall > 1500 {
		switch tree.WaterNeeds {
		case "High":
			score += 2
		case "Medium":
			score++
		}
	}

	// Polluted areas favor air purifiers
	if env.PollutionLevel == "High" && tree.HasPurpose("Air Purification") {
		score += 3
	}

	return score
}

func applyFilters(scored []ScoredSpecies, filters Filters) []ScoredSpecies {
	if len(filters.Purposes) == 0 && len(filters.GrowthRates) == 0 {
		return scored
	}

	filtered := make([]ScoredSpecies, 0, len(scored))
	for _, entry := range scored {
		if len(filters.Purposes) > 0 && !matchesAnyPurpose(entry.Species, filters.Purposes) {
			continue
		}
		if len(filters.GrowthRates) > 0 && !contains(filters.GrowthRates, entry.GrowthRate) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

func matchesAnyPurpose(sp catalog.Species, purposes []string) bool {
	for _, p := range purposes {
		if sp.HasPurpose(p) {
			return true
		}
	}
	return false
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// BalconyQuery describes an urban growing space.
type BalconyQuery struct {
	SpaceSize     string   `json:"spaceSize"` // band name or labeled form ("Small (0.5-2 m²)")
	SunlightHours float64  `json:"sunlightHours"`
	Purposes      []string `json:"purposes,omitempty"`
}

const maxBalconyResults = 9

// allowedSpaceBands maps the user's space to the plant space bands it can
// host. Bands widen upward: a larger space also satisfies smaller plants.
func allowedSpaceBands(spaceSize string) []string {
	switch normalizeSpaceBand(spaceSize) {
	case "Very Small":
		return []string{"Very Small"}
	case "Small":
		return []string{"Small"}
	case "Medium":
		return []string{"Small", "Medium"}
	case "Large":
		return []string{"Small", "Medium", "Large"}
	default:
		return []string{"Small"}
	}
}

// normalizeSpaceBand strips the measurement suffix from labeled forms like
// "Medium (2-5 m²)" so plain band names and UI labels resolve identically.
func normalizeSpaceBand(spaceSize string) string {
	for _, band := range []string{"Very Small", "Small", "Medium", "Large"} {
		if spaceSize == band {
			return band
		}
	}
	// Labeled form: longest prefix wins ("Very Small (...)" before "Small").
	for _, band := range []string{"Very Small", "Medium", "Large", "Small"} {
		if len(spaceSize) >= len(band) && spaceSize[:len(band)] == band {
			return band
		}
	}
	return ""
}

// RecommendBalcony ranks balcony plants for a space. Low sunlight (<4h)
// excludes species that cannot tolerate low light; abundant sunlight never
// excludes low-need species. Returns at most 9 results.
func RecommendBalcony(query BalconyQuery) []ScoredSpecies {
	allowed := allowedSpaceBands(query.SpaceSize)

	var recommendations []ScoredSpecies
	for _, plant := range catalog.BalconyPlants() {
		if !contains(allowed, plant.SpaceRequired) {
			continue
		}

		if query.SunlightHours < 4 && !plant.NeedsSunlight("Low") {
			continue
		}

		if len(query.Purposes) > 0 && !matchesAnyPurpose(plant, query.Purposes) {
			continue
		}

		recommendations = append(recommendations, ScoredSpecies{
			Species: plant,
			Score:   scoreBalcony(plant, query.Purposes),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > maxBalconyResults {
		recommendations = recommendations[:maxBalconyResults]
	}
	return recommendations
}

func scoreBalcony(plant catalog.Species, purposes []string) int {
	score := 0
	if plant.CareDifficulty == "Very Easy" || plant.CareDifficulty == "Easy" {
		score += 2
	}
	for _, p := range purposes {
		if plant.HasPurpose(p) {
			score += 3
		}
	}
	return score
}
