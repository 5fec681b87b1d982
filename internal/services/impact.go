package services

import (
	"math"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/catalog"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
)

// ImpactSnapshot is the aggregate yearly environmental contribution of a
// set of tracked plants. It is derived on demand and never persisted as a
// source of truth: it must always be recomputable from the current plants
// and the catalog, so it cannot drift.
type ImpactSnapshot struct {
	CarbonSequesteredKg float64 `json:"carbonSequesteredKg"`
	OxygenProducedKg    float64 `json:"oxygenProducedKg"`
	PollutantsRemovedG  float64 `json:"pollutantsRemovedG"`
}

// growthFactors scale a species' base coefficients by maturity. An immature
// plant contributes a fraction of its full-grown yearly values.
var growthFactors = map[models.GrowthStage]float64{
	models.StageNewlyPlanted: 0.1,
	models.StageSeedling:     0.3,
	models.StageSapling:      0.5,
	models.StageYoungTree:    0.8,
	models.StageMatureTree:   1.0,
}

// defaultGrowthFactor applies when a stored stage value is unrecognized.
const defaultGrowthFactor = 0.5

// GrowthFactor returns the maturity multiplier for a growth stage.
func GrowthFactor(stage models.GrowthStage) float64 {
	if f, ok := growthFactors[stage]; ok {
		return f
	}
	return defaultGrowthFactor
}

// CalculateImpact sums each plant's contribution: base species coefficient
// times the growth factor of its current stage. Unknown species names fall
// back to default coefficients rather than failing the whole calculation.
// Pure function: calling it twice without intervening mutation yields
// identical results.
func CalculateImpact(plants []models.TrackedPlant) ImpactSnapshot {
	var snapshot ImpactSnapshot

	for _, plant := range plants {
		coeff := catalog.CoefficientsFor(plant.Name)
		factor := GrowthFactor(plant.GrowthStage)

		snapshot.CarbonSequesteredKg += coeff.CarbonKgPerYear * factor
		snapshot.OxygenProducedKg += coeff.OxygenKgPerYear * factor
		snapshot.PollutantsRemovedG += coeff.PollutantsGPerYear * factor
	}

	return snapshot
}

// YearlyProjection is one year of projected cumulative benefit.
type YearlyProjection struct {
	Year     int     `json:"year"`
	CarbonKg float64 `json:"carbonKg"`
	OxygenKg float64 `json:"oxygenKg"`
}

// ProjectOverYears models compounding canopy and root development with
// sub-linear growth: carbon scales as year^0.8, oxygen as year^0.7. The
// exponents are design constants, not re-derived ecology.
func ProjectOverYears(snapshot ImpactSnapshot, years int) []YearlyProjection {
	if years <= 0 {
		return nil
	}

	projections := make([]YearlyProjection, 0, years)
	for year := 1; year <= years; year++ {
		projections = append(projections, YearlyProjection{
			Year:     year,
			CarbonKg: snapshot.CarbonSequesteredKg * math.Pow(float64(year), 0.8),
			OxygenKg: snapshot.OxygenProducedKg * math.Pow(float64(year), 0.7),
		})
	}
	return projections
}

// Equivalency translates raw impact numbers into everyday comparisons for
// the presentation layer.
type Equivalency struct {
	CarKmAvoided      float64 `json:"carKmAvoided"`
	SmartphoneCharges float64 `json:"smartphoneCharges"`
	BreathingDays     float64 `json:"breathingDays"` // person-days of oxygen
}

// Equivalencies converts a snapshot into relatable figures.
func Equivalencies(snapshot ImpactSnapshot) Equivalency {
	return Equivalency{
		CarKmAvoided:      snapshot.CarbonSequesteredKg * 5,
		SmartphoneCharges: snapshot.CarbonSequesteredKg * 200,
		BreathingDays:     snapshot.OxygenProducedKg / 0.8,
	}
}
