package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"esg-index-backend/internal/model"
)

// policyResponse decorates a policy with its review status label.
type policyResponse struct {
	model.Policy
	ReviewStatus string `json:"reviewStatus"`
}

func (h *Handler) ListPolicies(c *gin.Context) {
	policies, err := h.store.ListPolicies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	out := make([]policyResponse, len(policies))
	for i := range policies {
		out[i] = policyResponse{
			Policy:       policies[i],
			ReviewStatus: policies[i].ReviewStatus(now),
		}
	}
	c.JSON(http.StatusOK, out)
}

type createPolicyRequest struct {
	Name            string `json:"name" binding:"required"`
	DocumentVersion string `json:"documentVersion"`
	Owner           string `json:"owner"`
	LastUpdated     string `json:"lastUpdated" binding:"required"`
	NextReviewDate  string `json:"nextReviewDate" binding:"required"`
	ESRSRequirement string `json:"esrsRequirement"`
	IsImplemented   bool   `json:"isImplemented"`
}

func (h *Handler) CreatePolicy(c *gin.Context) {
	var req createPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lastUpdated, err := parseDate(req.LastUpdated)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lastUpdated"})
		return
	}
	nextReview, err := parseDate(req.NextReviewDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nextReviewDate"})
		return
	}

	row := model.Policy{
		Name:            req.Name,
		DocumentVersion: req.DocumentVersion,
		Owner:           req.Owner,
		LastUpdated:     lastUpdated,
		NextReviewDate:  nextReview,
		ESRSRequirement: req.ESRSRequirement,
		IsImplemented:   req.IsImplemented,
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) DeletePolicy(c *gin.Context) {
	h.deleteByID(c, &model.Policy{})
}

// PutProcurementYear upserts the yearly G1 procurement summary.
func (h *Handler) PutProcurementYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	var data model.ProcurementYearData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data.Year = year

	if err := h.store.UpsertProcurementYearData(c.Request.Context(), &data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) ListRisks(c *gin.Context) {
	var rows []model.RiskItem
	if err := h.store.DB().Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createRiskRequest struct {
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
}

func (h *Handler) CreateRisk(c *gin.Context) {
	var req createRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = "Open"
	}

	row := model.RiskItem{Description: req.Description, Status: req.Status}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) ListMaterialityTopics(c *gin.Context) {
	var rows []model.MaterialityTopic
	if err := h.store.DB().Order("impact_score + financial_score DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createMaterialityRequest struct {
	Topic          string `json:"topic" binding:"required"`
	ImpactScore    int    `json:"impactScore" binding:"required,min=1,max=10"`
	FinancialScore int    `json:"financialScore" binding:"required,min=1,max=10"`
	Category       string `json:"category"`
}

// CreateMaterialityTopic stores a topic with its derived ESRS code and
// materiality flag.
func (h *Handler) CreateMaterialityTopic(c *gin.Context) {
	var req createMaterialityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := model.MaterialityTopic{
		Topic:          req.Topic,
		ImpactScore:    req.ImpactScore,
		FinancialScore: req.FinancialScore,
		Category:       req.Category,
	}
	row.Classify()

	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) DeleteMaterialityTopic(c *gin.Context) {
	h.deleteByID(c, &model.MaterialityTopic{})
}
