package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"esg-index-backend/internal/model"
)

func (h *Handler) GetHRYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	data, err := h.store.HRYear(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no HR data for year"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// PutHRYear upserts the yearly S1 summary; one row per year.
func (h *Handler) PutHRYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	var data model.HRYearData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data.Year = year

	if err := h.store.UpsertHRYearData(c.Request.Context(), &data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) ListSocialMetrics(c *gin.Context) {
	var rows []model.SocialMetric
	if err := h.store.DB().Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createSocialMetricRequest struct {
	MetricType       string  `json:"metricType" binding:"required"`
	Value            float64 `json:"value" binding:"required"`
	Period           string  `json:"period"`
	DataSource       string  `json:"dataSource"`
	EmployeeCategory string  `json:"employeeCategory"`
}

func (h *Handler) CreateSocialMetric(c *gin.Context) {
	var req createSocialMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := model.SocialMetric{
		MetricType:       req.MetricType,
		Value:            req.Value,
		Period:           req.Period,
		DataSource:       req.DataSource,
		EmployeeCategory: req.EmployeeCategory,
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}
