package catalog

import (
	"testing"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	neem, ok := Lookup("Neem")
	assert.True(t, ok)
	assert.Equal(t, "Azadirachta indica", neem.ScientificName)

	// Case-insensitive
	also, ok := Lookup("  neem ")
	assert.True(t, ok)
	assert.Equal(t, neem.Name, also.Name)

	// Base name matches display names with a parenthetical alias
	tulsi, ok := Lookup("Tulsi")
	assert.True(t, ok)
	assert.Equal(t, "Tulsi (Holy Basil)", tulsi.Name)

	_, ok = Lookup("Triffid")
	assert.False(t, ok)
}

func TestCoefficientsFor(t *testing.T) {
	neem := CoefficientsFor("Neem")
	assert.Equal(t, 15.3, neem.CarbonKgPerYear)
	assert.Equal(t, 20.7, neem.OxygenKgPerYear)

	// Unknown species fall back to defaults instead of zeroes
	unknown := CoefficientsFor("Triffid")
	assert.Equal(t, DefaultCoefficients, unknown)
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, models.CategoryOutdoor, CategoryFor("Banyan"))
	assert.Equal(t, models.CategoryBalcony, CategoryFor("Peace Lily"))
	assert.Equal(t, models.CategoryOutdoor, CategoryFor("Triffid"))
}

func TestCatalogSets(t *testing.T) {
	assert.Len(t, OutdoorTrees(), 12)
	assert.Len(t, BalconyPlants(), 14)
	assert.Len(t, All(), 26)

	for _, sp := range OutdoorTrees() {
		assert.Equal(t, models.CategoryOutdoor, sp.Category, sp.Name)
		assert.NotEmpty(t, sp.ClimateSuitability, sp.Name)
		assert.Greater(t, sp.Coefficients.CarbonKgPerYear, 0.0, sp.Name)
	}
	for _, sp := range BalconyPlants() {
		assert.Equal(t, models.CategoryBalcony, sp.Category, sp.Name)
		assert.NotEmpty(t, sp.SpaceRequired, sp.Name)
		assert.NotEmpty(t, sp.SunlightNeed, sp.Name)
	}
}

func TestGuides(t *testing.T) {
	steps := PlantingGuide("Neem")
	assert.NotEmpty(t, steps)

	maintenance := MaintenanceGuide("Neem")
	assert.Contains(t, maintenance, "Summer")

	// Unknown species still get the common guidance
	generic := PlantingGuide("Triffid")
	assert.NotEmpty(t, generic)
}

func TestSpeciesPredicates(t *testing.T) {
	neem, _ := Lookup("Neem")
	assert.True(t, neem.SuitsClimate("Tropical"))
	assert.False(t, neem.SuitsClimate("Temperate"))
	assert.True(t, neem.SuitsSoil("Sandy"))
	assert.False(t, neem.SuitsSoil("Rocky"))
	assert.True(t, neem.HasPurpose("Air Purification"))

	snake, _ := Lookup("Snake Plant (Sansevieria)")
	assert.True(t, snake.NeedsSunlight("Low"))
	assert.False(t, snake.NeedsSunlight("High"))
}
