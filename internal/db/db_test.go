package db_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg-index-backend/config"
	"esg-index-backend/internal/calc"
	"esg-index-backend/internal/db"
	"esg-index-backend/internal/model"
	"esg-index-backend/internal/report"
	"esg-index-backend/internal/store"
)

type fixedResolver struct{ km float64 }

func (r fixedResolver) Distance(ctx context.Context, from, to string) float64 { return r.km }

// TestLifecycle runs the whole reporting pipeline against an in-memory
// database: register activity data, run every calculator, score readiness
// and render the reports.
func TestLifecycle(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file:lifecycle?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}
	gormDB, err := db.Init(&cfg)
	require.NoError(t, err)

	ctx := context.Background()
	st := store.NewGormStore(gormDB)
	require.NoError(t, st.SeedRequirements(ctx, model.DefaultChecklist()))
	// Seeding twice must not duplicate or fail.
	require.NoError(t, st.SeedRequirements(ctx, model.DefaultChecklist()))

	svc := calc.NewService(st, fixedResolver{km: 15})

	// Activity data for 2024.
	require.NoError(t, gormDB.Create(&model.FuelPurchase{
		Date:         time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		VolumeLiters: 100,
		FuelType:     "Diesel (MK1)",
	}).Error)
	require.NoError(t, gormDB.Create(&model.EnergyReading{
		Year:              2024,
		Month:             1,
		ElectricityKWh:    1000,
		DistrictHeatKWh:   500,
		ElectricitySource: "Renewable",
	}).Error)

	person := model.Personnel{FirstName: "Anna", LastName: "Svensson", HomePostcode: "58222"}
	require.NoError(t, gormDB.Create(&person).Error)
	site := model.ClientSite{ClientName: "Nordic Client AB", Postcode: "60212"}
	require.NoError(t, gormDB.Create(&site).Error)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	distance := 30.0
	require.NoError(t, gormDB.Create(&model.Assignment{
		PersonnelID:  person.ID,
		ClientSiteID: site.ID,
		StartDate:    &start,
		EndDate:      &end,
		DaysPerWeek:  5,
		DistanceKm:   &distance,
		Mode:         "Car",
	}).Error)

	// Scope 1: 100 L Diesel (MK1) at 2.54 kg/L.
	s1, err := svc.RecalculateScope1(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s1.RowsUpdated)
	assert.InDelta(t, 254.0, s1.TotalCO2Kg, 1e-9)

	// Scope 2: renewable electricity counts zero market-based.
	s2, err := svc.RecalculateScope2(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1000*0.040+500*0.060, s2.TotalLocationKg, 1e-9)
	assert.InDelta(t, 500*0.060, s2.TotalMarketKg, 1e-9)

	// Scope 3 commuting: 90-day window at 5 days/week is 64 working days.
	batch, err := svc.CalculateAllAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Processed)
	assert.Equal(t, 1, batch.QualityBreakdown[calc.QualityVerified])
	assert.InDelta(t, 30*2*64*0.12/1000.0, batch.TotalCO2Tons, 1e-9)

	// A second run finds nothing pending.
	batch, err = svc.CalculateAllAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Processed)

	// Scope 3 spend.
	item, err := svc.AddSpendItem(ctx, "IT Hardware (Laptops, Monitors)", "Laptops", 100000, "2024")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, item.CO2eTonnes, 1e-9)

	// Social baseline and readiness.
	require.NoError(t, st.UpsertHRYearData(ctx, &model.HRYearData{
		Year:              2024,
		InternalHeadcount: 50,
		GenderPayGapPct:   3.2,
	}))
	require.NoError(t, st.UpsertGapStatus(ctx, &model.GapStatus{
		RequirementCode: "E1-6",
		Status:          model.GapCompliant,
		Owner:           "CFO",
	}))

	readiness, err := svc.Readiness(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, readiness.Total)
	assert.Equal(t, 1, readiness.Completed)

	// ESRS index: E1-6, S1-6, S1-14, S1-16 reported out of 12 entries.
	index, err := svc.ESRSIndex(ctx, 2024)
	require.NoError(t, err)
	byCode := make(map[string]calc.IndexEntry, len(index.Entries))
	for _, e := range index.Entries {
		byCode[e.Code] = e
	}
	assert.Equal(t, calc.IndexReported, byCode["E1-6"].Status)
	assert.Equal(t, calc.IndexReported, byCode["S1-16"].Status)
	assert.Equal(t, calc.IndexReported, byCode["S1-6"].Status)
	assert.Equal(t, calc.IndexMissing, byCode["S1-1"].Status)
	assert.Equal(t, calc.IndexMissing, byCode["G1-1"].Status)
	assert.InDelta(t, 33.3, index.ScorePct, 1e-9)

	// A registered policy flips the policy-backed requirements.
	require.NoError(t, gormDB.Create(&model.Policy{
		Name:            "Code of Conduct",
		DocumentVersion: "2.1",
		LastUpdated:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		NextReviewDate:  time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
		ESRSRequirement: "G1-1",
		IsImplemented:   true,
	}).Error)
	index, err = svc.ESRSIndex(ctx, 2024)
	require.NoError(t, err)
	byCode = make(map[string]calc.IndexEntry, len(index.Entries))
	for _, e := range index.Entries {
		byCode[e.Code] = e
	}
	assert.Equal(t, calc.IndexReported, byCode["G1-1"].Status)
	assert.Equal(t, calc.IndexReported, byCode["G1-3"].Status)

	// Report renders every section from the stored totals.
	md := report.CSRD(ctx, st, 2024, "Test AB", time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC))
	assert.Contains(t, md, "# Sustainability Report 2024")
	assert.Contains(t, md, "**Test AB**")
	assert.Contains(t, md, "**Scope 1:** 0.25 tonnes CO2e")
	assert.Contains(t, md, "**Renewable electricity share:** 100.0%")
	assert.Contains(t, md, "Verified: 100.0%")
	assert.Contains(t, md, "**Headcount:** 50 internal")
	assert.Contains(t, md, "Code of Conduct (version 2.1, OK)")

	wb, err := report.AuditWorkbook(ctx, st, 2024)
	require.NoError(t, err)
	sheets := wb.GetSheetList()
	for _, want := range []string{"Scope 1 Fuel", "Scope 2 Energy", "Scope 3 Commuting", "Scope 3 Spend", "Policies"} {
		assert.Contains(t, sheets, want)
	}
	fuelType, err := wb.GetCellValue("Scope 1 Fuel", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Diesel (MK1)", fuelType)

	// Clearing calculations makes the batch recompute from scratch.
	require.NoError(t, st.ClearCommuteCalculations(ctx))
	batch, err = svc.CalculateAllAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Processed)

	if !strings.Contains(md, "*Generated 2024-12-31") {
		t.Errorf("report footer missing generation stamp:\n%s", md)
	}
}
