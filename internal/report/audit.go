package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"esg-index-backend/internal/model"
	"esg-index-backend/internal/store"
)

// AuditWorkbook exports every activity table into one xlsx workbook, one
// sheet per table, for the auditor's raw-data review.
func AuditWorkbook(ctx context.Context, s store.Store, year int) (*excelize.File, error) {
	f := excelize.NewFile()
	db := s.DB().WithContext(ctx)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	inYear := func() *gorm.DB { return db.Where("date >= ? AND date < ?", from, to) }

	var fuel []model.FuelPurchase
	if err := inYear().Order("date").Find(&fuel).Error; err != nil {
		return nil, fmt.Errorf("failed to load fuel purchases: %w", err)
	}
	rows := [][]any{{"ID", "Date", "Volume (L)", "Fuel type", "CO2 (kg)", "Receipt"}}
	for _, r := range fuel {
		rows = append(rows, []any{r.ID, r.Date.Format("2006-01-02"), r.VolumeLiters, r.FuelType, r.CO2Kg, r.ReceiptRef})
	}
	if err := writeSheet(f, "Scope 1 Fuel", rows); err != nil {
		return nil, err
	}

	var energy []model.EnergyReading
	if err := db.Where("year = ?", year).Order("year, month").Find(&energy).Error; err != nil {
		return nil, fmt.Errorf("failed to load energy readings: %w", err)
	}
	rows = [][]any{{"ID", "Year", "Month", "Facility", "Electricity (kWh)", "District heat (kWh)", "Source", "Location-based (kg)", "Market-based (kg)"}}
	for _, r := range energy {
		rows = append(rows, []any{r.ID, r.Year, r.Month, r.FacilityID, r.ElectricityKWh, r.DistrictHeatKWh, r.ElectricitySource, r.Scope2LocationKg, r.Scope2MarketKg})
	}
	if err := writeSheet(f, "Scope 2 Energy", rows); err != nil {
		return nil, err
	}

	var calcs []model.CommuteCalculation
	if err := db.Order("assignment_id").Find(&calcs).Error; err != nil {
		return nil, fmt.Errorf("failed to load commute calculations: %w", err)
	}
	rows = [][]any{{"Assignment", "Working days", "Total km", "Factor (kg/km)", "CO2 (kg)", "Data quality"}}
	for _, r := range calcs {
		rows = append(rows, []any{r.AssignmentID, r.WorkingDays, r.TotalKm, r.FactorKgPerKm, r.TotalCO2Kg, r.DataQuality})
	}
	if err := writeSheet(f, "Scope 3 Commuting", rows); err != nil {
		return nil, err
	}

	var spend []model.SpendItem
	if err := db.Where("reporting_period = ?", fmt.Sprintf("%d", year)).Order("created_at").Find(&spend).Error; err != nil {
		return nil, fmt.Errorf("failed to load spend items: %w", err)
	}
	rows = [][]any{{"ID", "Category", "Subcategory", "Spend (SEK)", "Factor (kg/SEK)", "CO2e (tonnes)", "Quality", "Period"}}
	for _, r := range spend {
		rows = append(rows, []any{r.ID, r.Category, r.Subcategory, r.SpendSEK, r.EmissionFactor, r.CO2eTonnes, r.DataQuality, r.ReportingPeriod})
	}
	if err := writeSheet(f, "Scope 3 Spend", rows); err != nil {
		return nil, err
	}

	var travel []model.TravelLeg
	if err := inYear().Order("date").Find(&travel).Error; err != nil {
		return nil, fmt.Errorf("failed to load travel legs: %w", err)
	}
	rows = [][]any{{"ID", "Date", "Type", "Class", "Distance (km)", "CO2 (kg)"}}
	for _, r := range travel {
		rows = append(rows, []any{r.ID, r.Date.Format("2006-01-02"), r.TravelType, r.ClassType, r.DistanceKm, r.CO2Kg})
	}
	if err := writeSheet(f, "Scope 3 Travel", rows); err != nil {
		return nil, err
	}

	var waste []model.WasteEntry
	if err := inYear().Order("date").Find(&waste).Error; err != nil {
		return nil, fmt.Errorf("failed to load waste entries: %w", err)
	}
	rows = [][]any{{"ID", "Date", "Category", "Hazardous", "Weight (kg)", "Treatment", "Supplier", "CO2 (kg)"}}
	for _, r := range waste {
		rows = append(rows, []any{r.ID, r.Date.Format("2006-01-02"), r.WasteCategory, r.IsHazardous, r.WeightKg, r.TreatmentMethod, r.Supplier, r.CO2Kg})
	}
	if err := writeSheet(f, "Waste", rows); err != nil {
		return nil, err
	}

	var water []model.WaterRecord
	if err := inYear().Order("date").Find(&water).Error; err != nil {
		return nil, fmt.Errorf("failed to load water records: %w", err)
	}
	rows = [][]any{{"ID", "Date", "Withdrawal (m3)", "Source", "Discharge (m3)", "Destination", "Consumption (m3)", "Recycled (m3)"}}
	for _, r := range water {
		rows = append(rows, []any{r.ID, r.Date.Format("2006-01-02"), r.WithdrawalM3, r.WithdrawalSource, r.DischargeM3, r.DischargeDest, r.ConsumptionM3, r.RecycledM3})
	}
	if err := writeSheet(f, "Water", rows); err != nil {
		return nil, err
	}

	policies, err := s.ListPolicies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	rows = [][]any{{"ID", "Name", "Version", "Owner", "Last updated", "Next review", "ESRS"}}
	for _, p := range policies {
		rows = append(rows, []any{p.ID, p.Name, p.DocumentVersion, p.Owner, p.LastUpdated.Format("2006-01-02"), p.NextReviewDate.Format("2006-01-02"), p.ESRSRequirement})
	}
	if err := writeSheet(f, "Policies", rows); err != nil {
		return nil, err
	}

	// Drop the default sheet so the workbook opens on the fuel table.
	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, name, err)
		}
	}
	return nil
}
