package services

import "math"

// ClimateZone labels used throughout the species catalog.
const (
	ClimateTropical    = "Tropical"
	ClimateSubtropical = "Subtropical"
	ClimateTemperate   = "Temperate"
)

// ClimateEstimate is a heuristic climate profile for a latitude band.
// Values are representative midpoints, not live weather data.
type ClimateEstimate struct {
	ClimateZone    string  `json:"climateZone"`
	AvgTempC       float64 `json:"avgTempC"`
	AnnualRainfall float64 `json:"annualRainfall"`
	Humidity       float64 `json:"humidity"`
}

// EstimateClimate maps absolute latitude to a climate zone with typical
// temperature, rainfall and humidity figures for that band. The bands are
// Tropical below 15°, Subtropical below 30°, Temperate otherwise.
func EstimateClimate(lat float64) ClimateEstimate {
	switch abs := math.Abs(lat); {
	case abs < 15:
		return ClimateEstimate{
			ClimateZone:    ClimateTropical,
			AvgTempC:       26,
			AnnualRainfall: 2250,
			Humidity:       80,
		}
	case abs < 30:
		return ClimateEstimate{
			ClimateZone:    ClimateSubtropical,
			AvgTempC:       21.5,
			AnnualRainfall: 1150,
			Humidity:       60,
		}
	default:
		return ClimateEstimate{
			ClimateZone:    ClimateTemperate,
			AvgTempC:       14,
			AnnualRainfall: 900,
			Humidity:       50,
		}
	}
}

// ClimateZoneInfo describes one climate zone for the reference endpoint.
type ClimateZoneInfo struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	AvgTempRange  string   `json:"avgTempRange"`
	RainfallRange string   `json:"rainfallRange"`
	SuitableTrees []string `json:"suitableTrees"`
}

// ClimateZones returns the static climate zone reference list.
func ClimateZones() []ClimateZoneInfo {
	return []ClimateZoneInfo{
		{
			Name:          ClimateTropical,
			Description:   "Hot and humid climate with high rainfall, typically found near the equator.",
			AvgTempRange:  "24-28°C",
			RainfallRange: "1500-3000mm",
			SuitableTrees: []string{"Neem", "Banyan", "Peepal", "Mango", "Jamun"},
		},
		{
			Name:          ClimateSubtropical,
			Description:   "Warm climate with distinct wet and dry seasons, found in regions near the Tropics.",
			AvgTempRange:  "18-25°C",
			RainfallRange: "800-1500mm",
			SuitableTrees: []string{"Neem", "Gulmohar", "Ashoka", "Amaltas", "Silver Oak"},
		},
		{
			Name:          ClimateTemperate,
			Description:   "Moderate climate with distinct seasons, typically found in mid-latitudes.",
			AvgTempRange:  "10-18°C",
			RainfallRange: "600-1200mm",
			SuitableTrees: []string{"Silver Oak", "Eucalyptus", "Amla"},
		},
	}
}

// SoilTypeInfo describes one soil type for the reference endpoint.
type SoilTypeInfo struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	WaterRetention  string   `json:"waterRetention"`
	NutrientContent string   `json:"nutrientContent"`
	Texture         string   `json:"texture"`
	SuitableTrees   []string `json:"suitableTrees"`
}

// SoilTypes returns the static soil type reference list.
func SoilTypes() []SoilTypeInfo {
	return []SoilTypeInfo{
		{
			Name:            "Sandy",
			Description:     "Sandy soil has large particles and feels gritty. It drains quickly but doesn't hold nutrients well.",
			WaterRetention:  "Low",
			NutrientContent: "Low",
			Texture:         "Gritty with large particles",
			SuitableTrees:   []string{"Neem", "Eucalyptus", "Amla", "Amaltas"},
		},
		{
			Name:            "Loamy",
			Description:     "Loamy soil has medium-sized particles and feels crumbly. It has good drainage while retaining moisture and nutrients.",
			WaterRetention:  "Medium",
			NutrientContent: "High",
			Texture:         "Crumbly with medium-sized particles",
			SuitableTrees:   []string{"Most trees", "Ideal for majority of species"},
		},
		{
			Name:            "Clay",
			Description:     "Clay soil has small particles and feels sticky when wet. It retains water and nutrients well but drains poorly.",
			WaterRetention:  "High",
			NutrientContent: "High",
			Texture:         "Sticky when wet, hard when dry",
			SuitableTrees:   []string{"Neem", "Banyan", "Peepal", "Jamun", "Arjuna"},
		},
		{
			Name:            "Silty",
			Description:     "Silty soil has medium to small particles and feels smooth. It holds moisture well but can be compacted easily.",
			WaterRetention:  "Medium-High",
			NutrientContent: "Medium",
			Texture:         "Smooth and flour-like when dry",
			SuitableTrees:   []string{"Neem", "Mango", "Jamun", "Arjuna", "Ashoka"},
		},
		{
			Name:            "Rocky",
			Description:     "Rocky soil contains stones and rocks with little fine material. It drains quickly and doesn't hold nutrients well.",
			WaterRetention:  "Very Low",
			NutrientContent: "Low",
			Texture:         "Contains stones and little fine material",
			SuitableTrees:   []string{"Amla", "Silver Oak", "Eucalyptus"},
		},
		{
			Name:            "Riverbed",
			Description:     "Soil found near rivers, typically a mix of sand, silt, and organic matter. It's usually fertile and well-drained.",
			WaterRetention:  "Medium",
			NutrientContent: "High",
			Texture:         "Mixed texture with sand and silt",
			SuitableTrees:   []string{"Arjuna", "Jamun", "Banyan", "Peepal", "Mango"},
		},
	}
}
