package catalog

import "github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"

// outdoorTrees is the reference dataset for full-size trees. In production
// this would be fetched from a database; the dataset is small and read-only
// so it ships in-code.
var outdoorTrees = []Species{
	{
		ID:                 1,
		Name:               "Neem",
		ScientificName:     "Azadirachta indica",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Medium",
		MatureHeight:       "15-20 m",
		Lifespan:           "150-200 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Sandy", "Clay"},
		DroughtTolerance:   "High",
		WaterNeeds:         "Low",
		Purposes:           []string{"Air Purification", "Shade", "Medicinal", "Carbon Sequestration"},
		MaintenanceLevel:   "Low",
		Benefits:           "Excellent air purifier, natural pest repellent, medicinal properties",
		Coefficients:       Coefficients{CarbonKgPerYear: 15.3, OxygenKgPerYear: 20.7, PollutantsGPerYear: 135.6},
	},
	{
		ID:                 2,
		Name:               "Banyan",
		ScientificName:     "Ficus benghalensis",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Medium",
		MatureHeight:       "20-30 m",
		Lifespan:           "200-300 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Clay"},
		DroughtTolerance:   "Medium",
		WaterNeeds:         "Medium",
		Purposes:           []string{"Shade", "Biodiversity", "Carbon Sequestration"},
		MaintenanceLevel:   "Medium",
		Benefits:           "Significant carbon sequestration, habitat for wildlife, soil conservation",
		Coefficients:       Coefficients{CarbonKgPerYear: 22.1, OxygenKgPerYear: 29.8, PollutantsGPerYear: 187.5},
	},
	{
		ID:                 3,
		Name:               "Arjuna",
		ScientificName:     "Terminalia arjuna",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Medium",
		MatureHeight:       "20-25 m",
		Lifespan:           "100-150 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Sandy", "Riverbed"},
		DroughtTolerance:   "Medium",
		WaterNeeds:         "Medium",
		Purposes:           []string{"Medicinal", "Biodiversity", "Carbon Sequestration", "Erosion Control"},
		MaintenanceLevel:   "Low",
		Benefits:           "Strong carbon sequestration, supports riparian ecosystems, medicinal bark",
		Coefficients:       Coefficients{CarbonKgPerYear: 16.5, OxygenKgPerYear: 22.3, PollutantsGPerYear: 124.8},
	},
	{
		ID:                 4,
		Name:               "Peepal",
		ScientificName:     "Ficus religiosa",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Fast",
		MatureHeight:       "20-30 m",
		Lifespan:           "100-150 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Sandy", "Clay"},
		DroughtTolerance:   "High",
		WaterNeeds:         "Low",
		Purposes:           []string{"Air Purification", "Shade", "Biodiversity", "Carbon Sequestration"},
		MaintenanceLevel:   "Low",
		Benefits:           "Exceptional oxygen production, significant carbon sequestration, habitat for wildlife",
		Coefficients:       Coefficients{CarbonKgPerYear: 21.2, OxygenKgPerYear: 28.6, PollutantsGPerYear: 173.4},
	},
	{
		ID:                 5,
		Name:               "Gulmohar",
		ScientificName:     "Delonix regia",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Fast",
		MatureHeight:       "10-15 m",
		Lifespan:           "40-50 years",
		NativeRegion:       "Madagascar",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Sandy"},
		DroughtTolerance:   "High",
		WaterNeeds:         "Low",
		Purposes:           []string{"Shade", "Ornamental", "Air Purification"},
		MaintenanceLevel:   "Medium",
		Benefits:           "Provides shade, reduces heat island effect, ornamental value",
		Coefficients:       Coefficients{CarbonKgPerYear: 12.8, OxygenKgPerYear: 17.3, PollutantsGPerYear: 95.2},
	},
	{
		ID:                 6,
		Name:               "Ashoka",
		ScientificName:     "Saraca asoca",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Slow",
		MatureHeight:       "6-9 m",
		Lifespan:           "60-80 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Clay"},
		DroughtTolerance:   "Low",
		WaterNeeds:         "High",
		Purposes:           []string{"Medicinal", "Ornamental", "Air Purification"},
		MaintenanceLevel:   "Medium",
		Benefits:           "Air purification, medicinal properties, ornamental value",
		Coefficients:       Coefficients{CarbonKgPerYear: 10.2, OxygenKgPerYear: 13.8, PollutantsGPerYear: 82.6},
	},
	{
		ID:                 7,
		Name:               "Mango",
		ScientificName:     "Mangifera indica",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Medium",
		MatureHeight:       "10-15 m",
		Lifespan:           "100-200 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Sandy", "Clay"},
		DroughtTolerance:   "Medium",
		WaterNeeds:         "Medium",
		Purposes:           []string{"Fruit Production", "Shade", "Biodiversity"},
		MaintenanceLevel:   "High",
		Benefits:           "Fruit production, carbon sequestration, habitat for birds",
		Coefficients:       Coefficients{CarbonKgPerYear: 14.7, OxygenKgPerYear: 19.8, PollutantsGPerYear: 108.3},
	},
	{
		ID:                 8,
		Name:               "Amaltas",
		ScientificName:     "Cassia fistula",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Medium",
		MatureHeight:       "8-15 m",
		Lifespan:           "50-100 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Sandy"},
		DroughtTolerance:   "High",
		WaterNeeds:         "Low",
		Purposes:           []string{"Medicinal", "Ornamental", "Soil Improvement"},
		MaintenanceLevel:   "Low",
		Benefits:           "Nitrogen fixation, medicinal properties, ornamental value",
		Coefficients:       Coefficients{CarbonKgPerYear: 11.6, OxygenKgPerYear: 15.7, PollutantsGPerYear: 91.4},
	},
	{
		ID:                 9,
		Name:               "Jamun",
		ScientificName:     "Syzygium cumini",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Medium",
		MatureHeight:       "10-15 m",
		Lifespan:           "80-100 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical"},
		SoilSuitability:    []string{"Loamy", "Sandy", "Clay"},
		DroughtTolerance:   "Medium",
		WaterNeeds:         "Medium",
		Purposes:           []string{"Fruit Production", "Shade", "Carbon Sequestration"},
		MaintenanceLevel:   "Medium",
		Benefits:           "Fruit production, carbon sequestration, erosion control",
		Coefficients:       Coefficients{CarbonKgPerYear: 13.9, OxygenKgPerYear: 18.7, PollutantsGPerYear: 103.7},
	},
	{
		ID:                 10,
		Name:               "Amla",
		ScientificName:     "Phyllanthus emblica",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Medium",
		MatureHeight:       "8-18 m",
		Lifespan:           "60-70 years",
		NativeRegion:       "Indian Subcontinent",
		ClimateSuitability: []string{"Tropical", "Subtropical", "Temperate"},
		SoilSuitability:    []string{"Loamy", "Sandy", "Rocky"},
		DroughtTolerance:   "High",
		WaterNeeds:         "Low",
		Purposes:           []string{"Fruit Production", "Medicinal", "Soil Improvement"},
		MaintenanceLevel:   "Low",
		Benefits:           "Medicinal fruit, soil improvement, hardy in poor conditions",
		Coefficients:       Coefficients{CarbonKgPerYear: 10.8, OxygenKgPerYear: 14.6, PollutantsGPerYear: 87.2},
	},
	{
		ID:                 11,
		Name:               "Silver Oak",
		ScientificName:     "Grevillea robusta",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Fast",
		MatureHeight:       "18-35 m",
		Lifespan:           "60-80 years",
		NativeRegion:       "Australia",
		ClimateSuitability: []string{"Tropical", "Subtropical", "Temperate"},
		SoilSuitability:    []string{"Loamy", "Sandy"},
		DroughtTolerance:   "High",
		WaterNeeds:         "Low",
		Purposes:           []string{"Windbreak", "Shade", "Timber"},
		MaintenanceLevel:   "Low",
		Benefits:           "Windbreak, erosion control, timber production",
		Coefficients:       Coefficients{CarbonKgPerYear: 18.4, OxygenKgPerYear: 24.8, PollutantsGPerYear: 132.8},
	},
	{
		ID:                 12,
		Name:               "Eucalyptus",
		ScientificName:     "Eucalyptus globulus",
		Category:           models.CategoryOutdoor,
		GrowthRate:         "Fast",
		MatureHeight:       "30-55 m",
		Lifespan:           "50-100 years",
		NativeRegion:       "Australia",
		ClimateSuitability: []string{"Tropical", "Subtropical", "Temperate"},
		SoilSuitability:    []string{"Loamy", "Sandy", "Clay"},
		DroughtTolerance:   "High",
		WaterNeeds:         "Low",
		Purposes:           []string{"Carbon Sequestration", "Timber", "Medicinal"},
		MaintenanceLevel:   "Low",
		Benefits:           "Fast carbon sequestration, timber, medicinal oil",
		Coefficients:       Coefficients{CarbonKgPerYear: 20.6, OxygenKgPerYear: 27.8, PollutantsGPerYear: 128.5},
	},
}
