package services

// LeafAnalysis is a pre-computed color analysis of a plant photo. The
// client extracts the ratios from the image; the server only interprets
// them. Ratios are fractions of total pixel count.
type LeafAnalysis struct {
	GreenRatio  float64 `json:"greenRatio"`
	BrownRatio  float64 `json:"brownRatio"`
	YellowRatio float64 `json:"yellowRatio"`
	Contrast    float64 `json:"contrast"`
	Brightness  float64 `json:"brightness"`
}

// Diagnosis is advisory output only. It never mutates plant state;
// the user decides whether to change a health status afterwards.
type Diagnosis struct {
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Healthy         bool     `json:"healthy"`
}

// A contrast below this threshold reads as a dust-covered leaf surface.
const dustyContrastThreshold = 30.0

// Diagnose applies fixed heuristic rules to a leaf color analysis and
// returns detected issues with care recommendations. An empty rule hit
// set yields a healthy verdict.
func Diagnose(analysis LeafAnalysis) Diagnosis {
	var issues, recommendations []string

	dusty := analysis.Contrast < dustyContrastThreshold

	switch {
	case analysis.GreenRatio < 0.20:
		issues = append(issues, "⚠️ Low green coverage - plant may be severely stressed or dying")
		recommendations = append(recommendations, "Check soil moisture, lighting, and recent care history")
	case analysis.GreenRatio < 0.35:
		issues = append(issues, "⚠️ Moderate stress detected")
		recommendations = append(recommendations, "Review watering schedule and light exposure")
	}

	if analysis.BrownRatio > 0.08 {
		issues = append(issues, "🟤 Significant browning detected")
		recommendations = append(recommendations,
			"Possible causes: overwatering, root rot, sunburn, or pest damage",
			"Check for: mushy roots, burnt leaf edges, tiny insects")
	}

	if analysis.YellowRatio > 0.05 {
		issues = append(issues, "🟡 Yellowing detected (chlorosis)")
		recommendations = append(recommendations,
			"Likely nitrogen deficiency - add balanced fertilizer",
			"Could also indicate overwatering or poor drainage")
	}

	if dusty {
		issues = append(issues, "💨 Heavy dust accumulation detected")
		recommendations = append(recommendations,
			"Wipe leaves gently with damp cloth",
			"Dust blocks sunlight and clogs pores")
	}

	if analysis.Brightness < 80 {
		issues = append(issues, "🌑 Very dark image - may indicate low light conditions")
		recommendations = append(recommendations, "Move plant to brighter location if possible")
	}

	if dusty || analysis.BrownRatio > 0.05 {
		recommendations = append(recommendations,
			"🏭 In high pollution areas:",
			"• Clean leaves weekly",
			"• Increase watering slightly (plants work harder)",
			"• Check soil pH monthly")
	}

	if len(issues) == 0 {
		return Diagnosis{
			Issues:          []string{"✅ Plant appears healthy!"},
			Recommendations: []string{"Continue current care routine", "Monitor weekly for any changes"},
			Healthy:         true,
		}
	}

	return Diagnosis{Issues: issues, Recommendations: recommendations}
}
