package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"esg-index-backend/internal/model"
)

// GetReadiness returns the strict GAP view: only Compliant requirements
// count toward the percentage.
func (h *Handler) GetReadiness(c *gin.Context) {
	summary, err := h.calc.Readiness(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

var validGapStatuses = map[string]bool{
	model.GapNotStarted:    true,
	model.GapInProgress:    true,
	model.GapPartial:       true,
	model.GapCompliant:     true,
	model.GapNotApplicable: true,
}

type putGapStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	Owner        string `json:"owner"`
	EvidenceLink string `json:"evidenceLink"`
}

// PutGapStatus upserts the GAP status for one requirement code.
func (h *Handler) PutGapStatus(c *gin.Context) {
	var req putGapStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validGapStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	status := &model.GapStatus{
		RequirementCode: c.Param("code"),
		Status:          req.Status,
		Owner:           req.Owner,
		EvidenceLink:    req.EvidenceLink,
	}
	if err := h.store.UpsertGapStatus(c.Request.Context(), status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetESRSIndex returns the data-presence index with its half-credit score.
// This diverges from GET /api/readiness by design; the two formulas serve
// different report views.
func (h *Handler) GetESRSIndex(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	result, err := h.calc.ESRSIndex(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
