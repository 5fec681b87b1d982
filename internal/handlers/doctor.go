package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
)

// DiagnosePlant runs heuristic health rules against a client-computed
// leaf color analysis. Advisory only: no plant state changes here.
func DiagnosePlant(c *gin.Context) {
	var analysis services.LeafAnalysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.Diagnose(analysis))
}
