package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RunCommutingBatch computes emissions for every assignment without a
// calculation row and reports the aggregate.
func (h *Handler) RunCommutingBatch(c *gin.Context) {
	result, err := h.calc.CalculateAllAssignments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RunScope1 reapplies the fuel factor table to every stored purchase.
func (h *Handler) RunScope1(c *gin.Context) {
	result, err := h.calc.RecalculateScope1(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RunScope2 rewrites both scope 2 figures on every energy reading.
func (h *Handler) RunScope2(c *gin.Context) {
	result, err := h.calc.RecalculateScope2(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
