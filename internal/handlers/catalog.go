package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/catalog"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
)

// GetCatalog lists the species catalog, optionally filtered by category.
func GetCatalog(c *gin.Context) {
	var species []catalog.Species
	switch c.DefaultQuery("category", "all") {
	case "outdoor":
		species = catalog.OutdoorTrees()
	case "balcony":
		species = catalog.BalconyPlants()
	case "all":
		species = catalog.All()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be outdoor, balcony, or all"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"species": species,
		"count":   len(species),
	})
}

// GetSpecies returns a single catalog entry by name, case-insensitively.
func GetSpecies(c *gin.Context) {
	species, ok := catalog.Lookup(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Species not found in catalog"})
		return
	}
	c.JSON(http.StatusOK, species)
}

// GetSpeciesGuide returns planting steps and a seasonal maintenance
// schedule for a species.
func GetSpeciesGuide(c *gin.Context) {
	name := c.Param("name")
	species, ok := catalog.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Species not found in catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"species":     species.Name,
		"planting":    catalog.PlantingGuide(species.Name),
		"maintenance": catalog.MaintenanceGuide(species.Name),
	})
}

// GetEnvironment estimates a climate profile for a latitude and returns
// the static climate and soil reference lists.
func GetEnvironment(c *gin.Context) {
	response := gin.H{
		"climateZones": services.ClimateZones(),
		"soilTypes":    services.SoilTypes(),
	}

	if latStr := c.Query("lat"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
			return
		}
		response["estimate"] = services.EstimateClimate(lat)
	}

	c.JSON(http.StatusOK, response)
}
