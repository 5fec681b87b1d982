package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// healthyLeaf has comfortable margins on every rule.
var healthyLeaf = LeafAnalysis{
	GreenRatio:  0.60,
	BrownRatio:  0.01,
	YellowRatio: 0.01,
	Contrast:    55,
	Brightness:  140,
}

func TestDiagnose_Healthy(t *testing.T) {
	diagnosis := Diagnose(healthyLeaf)
	assert.True(t, diagnosis.Healthy)
	assert.Len(t, diagnosis.Issues, 1)
	assert.Contains(t, diagnosis.Issues[0], "healthy")
}

func TestDiagnose_SevereStressOutranksModerate(t *testing.T) {
	leaf := healthyLeaf
	leaf.GreenRatio = 0.10
	diagnosis := Diagnose(leaf)
	assert.False(t, diagnosis.Healthy)
	assert.Contains(t, diagnosis.Issues[0], "severely stressed")

	leaf.GreenRatio = 0.30
	diagnosis = Diagnose(leaf)
	assert.Contains(t, diagnosis.Issues[0], "Moderate stress")
}

func TestDiagnose_BrowningAndChlorosis(t *testing.T) {
	leaf := healthyLeaf
	leaf.BrownRatio = 0.12
	leaf.YellowRatio = 0.09

	diagnosis := Diagnose(leaf)
	assert.False(t, diagnosis.Healthy)
	assert.Len(t, diagnosis.Issues, 2)
	assert.Contains(t, diagnosis.Issues[0], "browning")
	assert.Contains(t, diagnosis.Issues[1], "chlorosis")
}

func TestDiagnose_DustTriggersPollutionAdvice(t *testing.T) {
	leaf := healthyLeaf
	leaf.Contrast = 20

	diagnosis := Diagnose(leaf)
	assert.False(t, diagnosis.Healthy)
	assert.Contains(t, diagnosis.Issues[0], "dust")

	var pollutionAdvice bool
	for _, rec := range diagnosis.Recommendations {
		if rec == "🏭 In high pollution areas:" {
			pollutionAdvice = true
		}
	}
	assert.True(t, pollutionAdvice)
}

func TestDiagnose_MildBrowningStillGetsPollutionAdvice(t *testing.T) {
	// Between the pollution trigger (5%) and the browning issue (8%):
	// advice without a browning issue line.
	leaf := healthyLeaf
	leaf.BrownRatio = 0.06

	diagnosis := Diagnose(leaf)
	assert.True(t, diagnosis.Healthy)

	leaf.GreenRatio = 0.30
	diagnosis = Diagnose(leaf)
	assert.Len(t, diagnosis.Issues, 1)
	assert.Contains(t, diagnosis.Recommendations, "🏭 In high pollution areas:")
}

func TestDiagnose_DarkImage(t *testing.T) {
	leaf := healthyLeaf
	leaf.Brightness = 60

	diagnosis := Diagnose(leaf)
	assert.False(t, diagnosis.Healthy)
	assert.Contains(t, diagnosis.Issues[0], "dark image")
}
