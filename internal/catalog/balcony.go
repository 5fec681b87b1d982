package catalog

import "github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"

// balconyPlants is the reference dataset for urban/balcony growing. Space
// bands widen upward: a plant that fits "Small" also fits any larger space.
var balconyPlants = []Species{
	{
		ID:             101,
		Name:           "Snake Plant (Sansevieria)",
		ScientificName: "Dracaena trifasciata",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Slow",
		SpaceRequired:  "Very Small",
		SunlightNeed:   []string{"Low", "Medium"},
		CareDifficulty: "Very Easy",
		Purposes:       []string{"Air Purification", "Ornamental"},
		Benefits:       "Filters indoor air, releases oxygen at night, nearly indestructible",
		Coefficients:   Coefficients{CarbonKgPerYear: 2.0, OxygenKgPerYear: 2.7, PollutantsGPerYear: 18.0},
	},
	{
		ID:             102,
		Name:           "Tulsi (Holy Basil)",
		ScientificName: "Ocimum tenuiflorum",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Fast",
		SpaceRequired:  "Very Small",
		SunlightNeed:   []string{"Medium", "High"},
		CareDifficulty: "Easy",
		Purposes:       []string{"Medicinal", "Air Purification", "Aromatic"},
		Benefits:       "Medicinal leaves, mosquito repellent, purifies surrounding air",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.5, OxygenKgPerYear: 2.0, PollutantsGPerYear: 15.0},
	},
	{
		ID:             103,
		Name:           "Money Plant (Pothos)",
		ScientificName: "Epipremnum aureum",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Fast",
		SpaceRequired:  "Very Small",
		SunlightNeed:   []string{"Low", "Medium"},
		CareDifficulty: "Very Easy",
		Purposes:       []string{"Air Purification", "Ornamental"},
		Benefits:       "Removes indoor toxins, thrives in water or soil, trailing greenery",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.8, OxygenKgPerYear: 2.4, PollutantsGPerYear: 22.0},
	},
	{
		ID:             104,
		Name:           "Aloe Vera",
		ScientificName: "Aloe barbadensis miller",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Slow",
		SpaceRequired:  "Very Small",
		SunlightNeed:   []string{"Medium", "High"},
		CareDifficulty: "Very Easy",
		Purposes:       []string{"Medicinal", "Air Purification"},
		Benefits:       "Healing gel, drought hardy, improves indoor air quality",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.2, OxygenKgPerYear: 1.6, PollutantsGPerYear: 12.0},
	},
	{
		ID:             105,
		Name:           "Mint (Pudina)",
		ScientificName: "Mentha spicata",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Fast",
		SpaceRequired:  "Small",
		SunlightNeed:   []string{"Medium"},
		CareDifficulty: "Easy",
		Purposes:       []string{"Edible", "Medicinal", "Aromatic"},
		Benefits:       "Fresh kitchen herb, digestive aid, fast spreading cover",
		Coefficients:   Coefficients{CarbonKgPerYear: 0.8, OxygenKgPerYear: 1.1, PollutantsGPerYear: 8.0},
	},
	{
		ID:             106,
		Name:           "Spider Plant",
		ScientificName: "Chlorophytum comosum",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Fast",
		SpaceRequired:  "Small",
		SunlightNeed:   []string{"Low", "Medium"},
		CareDifficulty: "Very Easy",
		Purposes:       []string{"Air Purification", "Ornamental"},
		Benefits:       "Strong formaldehyde remover, pet safe, easy propagation",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.6, OxygenKgPerYear: 2.2, PollutantsGPerYear: 20.0},
	},
	{
		ID:             107,
		Name:           "Coriander (Dhania)",
		ScientificName: "Coriandrum sativum",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Fast",
		SpaceRequired:  "Small",
		SunlightNeed:   []string{"Medium", "High"},
		CareDifficulty: "Moderate",
		Purposes:       []string{"Edible", "Aromatic"},
		Benefits:       "Kitchen staple, quick harvest cycles, ideal for planter boxes",
		Coefficients:   Coefficients{CarbonKgPerYear: 0.5, OxygenKgPerYear: 0.7, PollutantsGPerYear: 5.0},
	},
	{
		ID:             108,
		Name:           "Peace Lily",
		ScientificName: "Spathiphyllum wallisii",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Medium",
		SpaceRequired:  "Small",
		SunlightNeed:   []string{"Low", "Medium"},
		CareDifficulty: "Easy",
		Purposes:       []string{"Air Purification", "Ornamental"},
		Benefits:       "Top NASA air cleaner, elegant white blooms, shade tolerant",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.9, OxygenKgPerYear: 2.6, PollutantsGPerYear: 25.0},
	},
	{
		ID:             109,
		Name:           "Tomato (Dwarf Variety)",
		ScientificName: "Solanum lycopersicum",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Fast",
		SpaceRequired:  "Medium",
		SunlightNeed:   []string{"High"},
		CareDifficulty: "Moderate",
		Purposes:       []string{"Edible"},
		Benefits:       "Homegrown produce, compact bush habit suited to containers",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.0, OxygenKgPerYear: 1.4, PollutantsGPerYear: 10.0},
	},
	{
		ID:             110,
		Name:           "Areca Palm",
		ScientificName: "Dypsis lutescens",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Medium",
		SpaceRequired:  "Medium",
		SunlightNeed:   []string{"Medium", "High"},
		CareDifficulty: "Easy",
		Purposes:       []string{"Air Purification", "Ornamental"},
		Benefits:       "Natural humidifier, large leaf surface for pollutant capture",
		Coefficients:   Coefficients{CarbonKgPerYear: 3.5, OxygenKgPerYear: 4.7, PollutantsGPerYear: 30.0},
	},
	{
		ID:             111,
		Name:           "Curry Leaves (Kadi Patta)",
		ScientificName: "Murraya koenigii",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Medium",
		SpaceRequired:  "Small",
		SunlightNeed:   []string{"High"},
		CareDifficulty: "Easy",
		Purposes:       []string{"Edible", "Medicinal", "Aromatic"},
		Benefits:       "Fresh curry leaves year round, aromatic foliage",
		Coefficients:   Coefficients{CarbonKgPerYear: 2.2, OxygenKgPerYear: 3.0, PollutantsGPerYear: 16.0},
	},
	{
		ID:             112,
		Name:           "Jade Plant",
		ScientificName: "Crassula ovata",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Slow",
		SpaceRequired:  "Very Small",
		SunlightNeed:   []string{"Medium", "High"},
		CareDifficulty: "Very Easy",
		Purposes:       []string{"Ornamental"},
		Benefits:       "Long-lived succulent, minimal watering, compact form",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.1, OxygenKgPerYear: 1.5, PollutantsGPerYear: 11.0},
	},
	{
		ID:             113,
		Name:           "Rubber Plant",
		ScientificName: "Ficus elastica",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Medium",
		SpaceRequired:  "Medium",
		SunlightNeed:   []string{"Medium"},
		CareDifficulty: "Easy",
		Purposes:       []string{"Air Purification", "Ornamental"},
		Benefits:       "Broad glossy leaves absorb airborne pollutants effectively",
		Coefficients:   Coefficients{CarbonKgPerYear: 3.0, OxygenKgPerYear: 4.0, PollutantsGPerYear: 35.0},
	},
	{
		ID:             114,
		Name:           "Boston Fern",
		ScientificName: "Nephrolepis exaltata",
		Category:       models.CategoryBalcony,
		GrowthRate:     "Medium",
		SpaceRequired:  "Small",
		SunlightNeed:   []string{"Low", "Medium"},
		CareDifficulty: "Moderate",
		Purposes:       []string{"Air Purification"},
		Benefits:       "Excellent humidity regulator and formaldehyde filter",
		Coefficients:   Coefficients{CarbonKgPerYear: 1.7, OxygenKgPerYear: 2.3, PollutantsGPerYear: 28.0},
	},
}
