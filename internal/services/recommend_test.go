package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(scored []ScoredSpecies) []string {
	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.Name)
	}
	return out
}

func TestRecommend_SoilFilterRelaxation(t *testing.T) {
	// Rocky soil suits a single tree, which is below the minimum match
	// count, so the soil constraint is dropped and the full climate set
	// comes back.
	result := Recommend(Environment{
		ClimateZone:    "Tropical",
		AnnualRainfall: 1000,
		SoilType:       "Rocky",
	}, Filters{})

	assert.Len(t, result, 12)
	assert.Contains(t, names(result), "Banyan")
}

func TestRecommend_SoilFilterKeptWhenEnoughMatches(t *testing.T) {
	result := Recommend(Environment{
		ClimateZone:    "Temperate",
		AnnualRainfall: 1000,
		SoilType:       "Loamy",
	}, Filters{})

	assert.ElementsMatch(t, []string{"Amla", "Silver Oak", "Eucalyptus"}, names(result))
}

func TestRecommend_DrySmoggyScoring(t *testing.T) {
	result := Recommend(Environment{
		ClimateZone:    "Tropical",
		AnnualRainfall: 600,
		PollutionLevel: "High",
		SoilType:       "Loamy",
	}, Filters{})
	require.Len(t, result, 12)

	// Drought tolerance and air purification both score here. Neem,
	// Peepal, and Gulmohar tie at the top; the stable sort keeps them in
	// catalog order.
	assert.Equal(t, []string{"Neem", "Peepal", "Gulmohar"}, names(result[:3]))
	assert.Equal(t, 6, result[0].Score)
	assert.Equal(t, 6, result[1].Score)
	assert.Equal(t, 6, result[2].Score)

	byName := make(map[string]int, len(result))
	for _, s := range result {
		byName[s.Name] = s.Score
	}
	assert.Equal(t, 1, byName["Banyan"], "medium drought tolerance scores one")
	assert.Equal(t, 3, byName["Amaltas"], "high drought tolerance without air purification")
	assert.Equal(t, 3, byName["Ashoka"], "air purifier with low drought tolerance")
}

func TestRecommend_WetClimateScoring(t *testing.T) {
	result := Recommend(Environment{
		ClimateZone:    "Tropical",
		AnnualRainfall: 1600,
		SoilType:       "Loamy",
	}, Filters{})
	require.NotEmpty(t, result)

	// Heavy rainfall favors thirsty species.
	assert.Equal(t, "Ashoka", result[0].Name)
	assert.Equal(t, 2, result[0].Score)
}

func TestRecommend_Filters(t *testing.T) {
	env := Environment{ClimateZone: "Tropical", AnnualRainfall: 1000, SoilType: "Loamy"}

	fast := Recommend(env, Filters{GrowthRates: []string{"Fast"}})
	assert.ElementsMatch(t, []string{"Peepal", "Gulmohar", "Silver Oak", "Eucalyptus"}, names(fast))

	windbreak := Recommend(env, Filters{Purposes: []string{"Windbreak"}})
	require.Len(t, windbreak, 1)
	assert.Equal(t, "Silver Oak", windbreak[0].Name)

	both := Recommend(env, Filters{Purposes: []string{"Windbreak"}, GrowthRates: []string{"Slow"}})
	assert.Empty(t, both)
}

func TestRecommend_EmptyResultIsNotAnError(t *testing.T) {
	result := Recommend(Environment{ClimateZone: "Arctic", SoilType: "Loamy"}, Filters{})
	assert.Empty(t, result)
}

func TestRecommend_Deterministic(t *testing.T) {
	env := Environment{ClimateZone: "Subtropical", AnnualRainfall: 700, PollutionLevel: "High", SoilType: "Sandy"}
	first := Recommend(env, Filters{})
	second := Recommend(env, Filters{})
	assert.Equal(t, first, second)
}

func TestRecommendBalcony_SpaceBands(t *testing.T) {
	verySmall := RecommendBalcony(BalconyQuery{SpaceSize: "Very Small", SunlightHours: 6})
	assert.ElementsMatch(t, []string{
		"Snake Plant (Sansevieria)",
		"Tulsi (Holy Basil)",
		"Money Plant (Pothos)",
		"Aloe Vera",
		"Jade Plant",
	}, names(verySmall))

	// Larger spaces host small and medium plants but not the very small
	// band; the result caps at nine entries.
	large := RecommendBalcony(BalconyQuery{SpaceSize: "Large", SunlightHours: 8})
	assert.Len(t, large, 9)
	assert.NotContains(t, names(large), "Snake Plant (Sansevieria)")
}

func TestRecommendBalcony_LabeledSpaceForm(t *testing.T) {
	plain := RecommendBalcony(BalconyQuery{SpaceSize: "Medium", SunlightHours: 6})
	labeled := RecommendBalcony(BalconyQuery{SpaceSize: "Medium (2-5 m²)", SunlightHours: 6})
	assert.Equal(t, names(plain), names(labeled))
}

func TestRecommendBalcony_LowSunlight(t *testing.T) {
	result := RecommendBalcony(BalconyQuery{SpaceSize: "Very Small", SunlightHours: 2})
	assert.ElementsMatch(t, []string{"Snake Plant (Sansevieria)", "Money Plant (Pothos)"}, names(result))

	// Abundant sunlight never excludes low-need species.
	sunny := RecommendBalcony(BalconyQuery{SpaceSize: "Very Small", SunlightHours: 12})
	assert.Contains(t, names(sunny), "Snake Plant (Sansevieria)")
}

func TestRecommendBalcony_PurposeScoring(t *testing.T) {
	result := RecommendBalcony(BalconyQuery{
		SpaceSize:     "Very Small",
		SunlightHours: 6,
		Purposes:      []string{"Medicinal"},
	})
	require.Len(t, result, 2)

	// Both are easy-care medicinal plants, so they tie and keep catalog
	// order.
	assert.Equal(t, "Tulsi (Holy Basil)", result[0].Name)
	assert.Equal(t, "Aloe Vera", result[1].Name)
	assert.Equal(t, 5, result[0].Score)
}
