package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esg-index-backend/internal/calc"
	"esg-index-backend/internal/factor"
	"esg-index-backend/internal/model"
)

// parseDate accepts plain dates and full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *Handler) ListFuelPurchases(c *gin.Context) {
	var rows []model.FuelPurchase
	if err := h.store.DB().Order("date DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createFuelRequest struct {
	Date         string  `json:"date" binding:"required"`
	VolumeLiters float64 `json:"volumeLiters" binding:"required,gt=0"`
	FuelType     string  `json:"fuelType" binding:"required"`
	ReceiptRef   string  `json:"receiptRef"`
}

// CreateFuelPurchase stores a fuel receipt and derives its emissions with
// the current factor table. A later scope 1 recalculation may overwrite
// the derived figure.
func (h *Handler) CreateFuelPurchase(c *gin.Context) {
	var req createFuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	row := model.FuelPurchase{
		Date:         date,
		VolumeLiters: req.VolumeLiters,
		FuelType:     req.FuelType,
		CO2Kg:        req.VolumeLiters * factor.Fuel(req.FuelType),
		ReceiptRef:   req.ReceiptRef,
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) DeleteFuelPurchase(c *gin.Context) {
	h.deleteByID(c, &model.FuelPurchase{})
}

func (h *Handler) ListEnergyReadings(c *gin.Context) {
	var rows []model.EnergyReading
	if err := h.store.DB().Order("year DESC, month DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createEnergyRequest struct {
	Year              int     `json:"year" binding:"required"`
	Month             int     `json:"month" binding:"required,min=1,max=12"`
	FacilityID        string  `json:"facilityId"`
	ElectricityKWh    float64 `json:"electricityKwh" binding:"min=0"`
	DistrictHeatKWh   float64 `json:"districtHeatKwh" binding:"min=0"`
	ElectricitySource string  `json:"electricitySource"`
}

// CreateEnergyReading stores a facility-month and derives both scope 2
// figures. Dual reporting: the location- and market-based numbers are
// stored side by side, never merged.
func (h *Handler) CreateEnergyReading(c *gin.Context) {
	var req createEnergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	heat := req.DistrictHeatKWh * factor.DistrictHeating
	row := model.EnergyReading{
		Year:              req.Year,
		Month:             req.Month,
		FacilityID:        req.FacilityID,
		ElectricityKWh:    req.ElectricityKWh,
		DistrictHeatKWh:   req.DistrictHeatKWh,
		ElectricitySource: req.ElectricitySource,
		Scope2LocationKg:  req.ElectricityKWh*factor.GridLocationBased + heat,
		Scope2MarketKg:    req.ElectricityKWh*factor.MarketBased(req.ElectricitySource) + heat,
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) DeleteEnergyReading(c *gin.Context) {
	h.deleteByID(c, &model.EnergyReading{})
}

func (h *Handler) ListSpendItems(c *gin.Context) {
	db := h.store.DB()
	if period := c.Query("period"); period != "" {
		db = db.Where("reporting_period = ?", period)
	}
	var rows []model.SpendItem
	if err := db.Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createSpendRequest struct {
	Category        string  `json:"category" binding:"required"`
	Subcategory     string  `json:"subcategory"`
	SpendSEK        float64 `json:"spendSek" binding:"required,gt=0"`
	ReportingPeriod string  `json:"reportingPeriod" binding:"required"`
}

func (h *Handler) CreateSpendItem(c *gin.Context) {
	var req createSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.calc.AddSpendItem(c.Request.Context(), req.Category, req.Subcategory, req.SpendSEK, req.ReportingPeriod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) ListSpendCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": factor.SpendCategories()})
}

func (h *Handler) ListTravelLegs(c *gin.Context) {
	var rows []model.TravelLeg
	if err := h.store.DB().Order("date DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createTravelRequest struct {
	Date       string  `json:"date" binding:"required"`
	TravelType string  `json:"travelType" binding:"required"`
	ClassType  string  `json:"classType"`
	DistanceKm float64 `json:"distanceKm" binding:"required,gt=0"`
}

func (h *Handler) CreateTravelLeg(c *gin.Context) {
	var req createTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	row := model.TravelLeg{
		Date:       date,
		TravelType: req.TravelType,
		ClassType:  req.ClassType,
		DistanceKm: req.DistanceKm,
		CO2Kg:      calc.TravelEmissionsKg(req.TravelType, req.DistanceKm, req.ClassType),
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) ListWasteEntries(c *gin.Context) {
	var rows []model.WasteEntry
	if err := h.store.DB().Order("date DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": rows,
		"metrics": calc.AggregateWaste(rows),
	})
}

type createWasteRequest struct {
	Date            string  `json:"date" binding:"required"`
	WasteCategory   string  `json:"wasteCategory" binding:"required"`
	IsHazardous     bool    `json:"isHazardous"`
	WeightKg        float64 `json:"weightKg" binding:"required,gt=0"`
	TreatmentMethod string  `json:"treatmentMethod" binding:"required"`
	Supplier        string  `json:"supplier"`
}

func (h *Handler) CreateWasteEntry(c *gin.Context) {
	var req createWasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	row := model.WasteEntry{
		Date:            date,
		WasteCategory:   req.WasteCategory,
		IsHazardous:     req.IsHazardous,
		WeightKg:        req.WeightKg,
		TreatmentMethod: req.TreatmentMethod,
		Supplier:        req.Supplier,
		CO2Kg:           calc.WasteEmissionsKg(req.WasteCategory, req.WeightKg, req.TreatmentMethod),
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *Handler) ListWaterRecords(c *gin.Context) {
	var rows []model.WaterRecord
	if err := h.store.DB().Order("date DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records": rows,
		"metrics": calc.AggregateWater(rows),
	})
}

type createWaterRequest struct {
	Date             string  `json:"date" binding:"required"`
	WithdrawalM3     float64 `json:"withdrawalM3" binding:"required,gt=0"`
	WithdrawalSource string  `json:"withdrawalSource"`
	DischargeM3      float64 `json:"dischargeM3" binding:"min=0"`
	DischargeDest    string  `json:"dischargeDest"`
	RecycledM3       float64 `json:"recycledM3" binding:"min=0"`
}

func (h *Handler) CreateWaterRecord(c *gin.Context) {
	var req createWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	row := model.WaterRecord{
		Date:             date,
		WithdrawalM3:     req.WithdrawalM3,
		WithdrawalSource: req.WithdrawalSource,
		DischargeM3:      req.DischargeM3,
		DischargeDest:    req.DischargeDest,
		ConsumptionM3:    calc.WaterConsumptionM3(req.WithdrawalM3, req.DischargeM3),
		RecycledM3:       req.RecycledM3,
	}
	if err := h.store.DB().Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

// deleteByID removes a row by its path id parameter.
func (h *Handler) deleteByID(c *gin.Context, mdl any) {
	if err := h.store.DB().Delete(mdl, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
