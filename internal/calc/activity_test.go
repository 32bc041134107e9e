package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"esg-index-backend/internal/factor"
	"esg-index-backend/internal/model"
)

func TestTravelEmissionsKg(t *testing.T) {
	assert.InDelta(t, 150.0, TravelEmissionsKg(factor.TravelFlightShort, 1000, ""), 1e-9)
	// Business class multiplies the base factor by 1.5.
	assert.InDelta(t, 225.0, TravelEmissionsKg(factor.TravelFlightShort, 1000, "Business"), 1e-9)
	assert.InDelta(t, 30.0, TravelEmissionsKg(factor.TravelRail, 1000, ""), 1e-9)
	// Unknown travel types contribute nothing rather than failing.
	assert.Zero(t, TravelEmissionsKg("Teleportation", 1000, ""))
}

func TestWasteEmissionsKg(t *testing.T) {
	assert.InDelta(t, 100.0, WasteEmissionsKg("Food", 100, factor.DisposalLandfill), 1e-9)
	assert.InDelta(t, 10.0, WasteEmissionsKg("Paper/Cardboard", 100, factor.DisposalRecycled), 1e-9)
	// Unlisted type under a known method gets that method's default.
	assert.InDelta(t, 5.0, WasteEmissionsKg("Textiles", 100, factor.DisposalRecycled), 1e-9)
	assert.Zero(t, WasteEmissionsKg("Food", 100, "Composted"))
}

func TestAggregateWaste(t *testing.T) {
	entries := []model.WasteEntry{
		{WeightKg: 600, TreatmentMethod: factor.DisposalRecycled, CO2Kg: 30},
		{WeightKg: 300, TreatmentMethod: factor.DisposalLandfill, CO2Kg: 75},
		{WeightKg: 100, TreatmentMethod: factor.DisposalIncinerated, IsHazardous: true, CO2Kg: 15},
	}

	m := AggregateWaste(entries)
	assert.InDelta(t, 1000.0, m.TotalWeightKg, 1e-9)
	assert.InDelta(t, 60.0, m.RecyclingPct, 1e-9)
	assert.InDelta(t, 10.0, m.HazardousPct, 1e-9)
	assert.InDelta(t, 120.0, m.TotalCO2Kg, 1e-9)

	assert.Zero(t, AggregateWaste(nil).RecyclingPct)
}

func TestAggregateWater(t *testing.T) {
	records := []model.WaterRecord{
		{WithdrawalM3: 100, ConsumptionM3: 40, RecycledM3: 20},
		{WithdrawalM3: 50, ConsumptionM3: 10, RecycledM3: 10},
	}

	m := AggregateWater(records)
	assert.InDelta(t, 150.0, m.TotalWithdrawalM3, 1e-9)
	assert.InDelta(t, 50.0, m.TotalConsumptionM3, 1e-9)
	assert.InDelta(t, 20.0, m.RecyclingPct, 1e-9)

	assert.Zero(t, AggregateWater(nil).RecyclingPct)
}

func TestWaterConsumptionM3(t *testing.T) {
	assert.InDelta(t, 60.0, WaterConsumptionM3(100, 40), 1e-9)
}
