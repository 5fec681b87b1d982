package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
)

// splitCSV parses a comma-separated query value into trimmed parts.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetRecommendations scores the outdoor catalog against an environment
// profile. The climate zone may be given directly or estimated from a
// latitude; rainfall, pollution and soil refine the scoring.
func GetRecommendations(c *gin.Context) {
	env := services.Environment{
		ClimateZone:    c.Query("climateZone"),
		PollutionLevel: c.DefaultQuery("pollution", "Medium"),
		SoilType:       c.Query("soil"),
	}

	var estimate *services.ClimateEstimate
	if latStr := c.Query("lat"); latStr != "" && env.ClimateZone == "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
			return
		}
		est := services.EstimateClimate(lat)
		estimate = &est
		env.ClimateZone = est.ClimateZone
		env.AnnualRainfall = est.AnnualRainfall
	}
	if env.ClimateZone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide climateZone or lat"})
		return
	}

	if rainStr := c.Query("rainfall"); rainStr != "" {
		rain, err := strconv.ParseFloat(rainStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rainfall"})
			return
		}
		env.AnnualRainfall = rain
	}

	filters := services.Filters{
		Purposes:    splitCSV(c.Query("purposes")),
		GrowthRates: splitCSV(c.Query("growthRates")),
	}

	results := services.Recommend(env, filters)

	response := gin.H{
		"environment":     env,
		"recommendations": results,
		"count":           len(results),
	}
	if estimate != nil {
		response["climateEstimate"] = estimate
	}
	c.JSON(http.StatusOK, response)
}

// GetBalconyRecommendations scores the balcony catalog against available
// space, daily sunlight and desired purposes.
func GetBalconyRecommendations(c *gin.Context) {
	query := services.BalconyQuery{
		SpaceSize:     c.DefaultQuery("space", "Small"),
		SunlightHours: 6,
		Purposes:      splitCSV(c.Query("purposes")),
	}

	if sunStr := c.Query("sunlightHours"); sunStr != "" {
		sun, err := strconv.ParseFloat(sunStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sunlightHours"})
			return
		}
		query.SunlightHours = sun
	}

	results := services.RecommendBalcony(query)

	c.JSON(http.StatusOK, gin.H{
		"query":           query,
		"recommendations": results,
		"count":           len(results),
	})
}
