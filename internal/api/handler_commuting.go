package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"esg-index-backend/internal/model"
)

func (h *Handler) ListPersonnel(c *gin.Context) {
	var rows []model.Personnel
	if err := h.store.DB().Order("last_name, first_name").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createPersonnelRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	HomePostcode string `json:"homePostcode"`
}

func (h *Handler) CreatePersonnel(c *gin.Context) {
	var req createPersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := model.Personnel{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		HomePostcode: req.HomePostcode,
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) ListClientSites(c *gin.Context) {
	var rows []model.ClientSite
	if err := h.store.DB().Order("client_name").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createClientSiteRequest struct {
	ClientName string `json:"clientName" binding:"required"`
	Postcode   string `json:"postcode"`
}

func (h *Handler) CreateClientSite(c *gin.Context) {
	var req createClientSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := model.ClientSite{ClientName: req.ClientName, Postcode: req.Postcode}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) ListAssignments(c *gin.Context) {
	var rows []model.Assignment
	err := h.store.DB().
		Preload("Personnel").
		Preload("ClientSite").
		Order("start_date DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createAssignmentRequest struct {
	PersonnelID  int64    `json:"personnelId" binding:"required"`
	ClientSiteID int64    `json:"clientSiteId" binding:"required"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	DaysPerWeek  float64  `json:"daysPerWeek" binding:"required,gt=0,max=7"`
	DistanceKm   *float64 `json:"distanceKm"`
	Mode         string   `json:"mode"`
}

// CreateAssignment accepts missing dates and a missing distance on
// purpose: the calculators degrade those to quality labels instead of
// rejecting the entry.
func (h *Handler) CreateAssignment(c *gin.Context) {
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := model.Assignment{
		PersonnelID:  req.PersonnelID,
		ClientSiteID: req.ClientSiteID,
		DaysPerWeek:  req.DaysPerWeek,
		DistanceKm:   req.DistanceKm,
		Mode:         req.Mode,
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
			return
		}
		row.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		row.EndDate = &end
	}

	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) ListCommuteCalculations(c *gin.Context) {
	var rows []model.CommuteCalculation
	if err := h.store.DB().Order("assignment_id").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ClearCommuteCalculations drops every calculation row so the next batch
// run recomputes all assignments with the current factor table. The batch
// itself only ever processes assignments without a row.
func (h *Handler) ClearCommuteCalculations(c *gin.Context) {
	if err := h.store.ClearCommuteCalculations(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
