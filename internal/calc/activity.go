package calc

import (
	"esg-index-backend/internal/factor"
	"esg-index-backend/internal/model"
)

// TravelEmissionsKg converts a travel leg to kg CO2e. Unknown travel types
// carry a zero factor, so the leg is stored but contributes nothing.
func TravelEmissionsKg(travelType string, distanceKm float64, classType string) float64 {
	return distanceKm * factor.Travel(travelType, classType)
}

// WasteEmissionsKg converts a waste weight to kg CO2e from the nested
// disposal-method factor table.
func WasteEmissionsKg(wasteCategory string, weightKg float64, treatmentMethod string) float64 {
	return weightKg * factor.Waste(wasteCategory, treatmentMethod)
}

// WaterConsumptionM3 derives consumption as withdrawal minus discharge.
func WaterConsumptionM3(withdrawalM3, dischargeM3 float64) float64 {
	return withdrawalM3 - dischargeM3
}

// WasteMetrics aggregates waste rows for the dashboard.
type WasteMetrics struct {
	TotalWeightKg float64 `json:"totalWeightKg"`
	RecyclingPct  float64 `json:"recyclingPct"`
	HazardousPct  float64 `json:"hazardousPct"`
	TotalCO2Kg    float64 `json:"totalCo2Kg"`
}

// AggregateWaste computes summary metrics over waste entries. Recovery
// counts the Recycled treatment method.
func AggregateWaste(entries []model.WasteEntry) WasteMetrics {
	var m WasteMetrics
	var hazardous, recovered float64
	for _, e := range entries {
		m.TotalWeightKg += e.WeightKg
		m.TotalCO2Kg += e.CO2Kg
		if e.IsHazardous {
			hazardous += e.WeightKg
		}
		if e.TreatmentMethod == factor.DisposalRecycled {
			recovered += e.WeightKg
		}
	}
	if m.TotalWeightKg > 0 {
		m.RecyclingPct = recovered / m.TotalWeightKg * 100
		m.HazardousPct = hazardous / m.TotalWeightKg * 100
	}
	return m
}

// WaterMetrics aggregates water rows for the dashboard.
type WaterMetrics struct {
	TotalWithdrawalM3  float64 `json:"totalWithdrawalM3"`
	TotalConsumptionM3 float64 `json:"totalConsumptionM3"`
	RecyclingPct       float64 `json:"recyclingPct"`
}

// AggregateWater computes summary metrics over water records.
func AggregateWater(records []model.WaterRecord) WaterMetrics {
	var m WaterMetrics
	var recycled float64
	for _, r := range records {
		m.TotalWithdrawalM3 += r.WithdrawalM3
		m.TotalConsumptionM3 += r.ConsumptionM3
		recycled += r.RecycledM3
	}
	if m.TotalWithdrawalM3 > 0 {
		m.RecyclingPct = recycled / m.TotalWithdrawalM3 * 100
	}
	return m
}
