package calc

import (
	"context"

	"esg-index-backend/internal/factor"
	"esg-index-backend/internal/store"
)

// Scope1Result summarizes a scope 1 recalculation run.
type Scope1Result struct {
	RowsUpdated int     `json:"rowsUpdated"`
	TotalCO2Kg  float64 `json:"totalCo2Kg"`
}

// RecalculateScope1 reapplies the current fuel factor table to every fuel
// purchase and rewrites the derived co2_kg column in place. Input columns
// are never touched, so the operation is idempotent.
func (s *Service) RecalculateScope1(ctx context.Context) (*Scope1Result, error) {
	rows, err := s.store.ListFuelPurchases(ctx)
	if err != nil {
		return nil, err
	}

	updates := make(map[int64]float64, len(rows))
	result := &Scope1Result{}
	for _, row := range rows {
		co2 := row.VolumeLiters * factor.Fuel(row.FuelType)
		updates[row.ID] = co2
		result.TotalCO2Kg += co2
	}
	result.RowsUpdated = len(updates)

	if err := s.store.UpdateFuelEmissions(ctx, updates); err != nil {
		return nil, err
	}
	return result, nil
}

// Scope2Result summarizes a scope 2 recalculation run. Both accounting
// figures are reported; the GHG Protocol requires dual reporting and the
// two are never collapsed into one number.
type Scope2Result struct {
	RowsUpdated     int     `json:"rowsUpdated"`
	TotalLocationKg float64 `json:"totalLocationKg"`
	TotalMarketKg   float64 `json:"totalMarketKg"`
}

// RecalculateScope2 rewrites both scope 2 figures on every energy reading:
// location-based from the grid average, market-based from the declared
// electricity source. District heating is added flat to both.
func (s *Service) RecalculateScope2(ctx context.Context) (*Scope2Result, error) {
	rows, err := s.store.ListEnergyReadings(ctx)
	if err != nil {
		return nil, err
	}

	updates := make(map[int64]store.Scope2Figures, len(rows))
	result := &Scope2Result{}
	for _, row := range rows {
		heat := row.DistrictHeatKWh * factor.DistrictHeating
		figures := store.Scope2Figures{
			LocationKg: row.ElectricityKWh*factor.GridLocationBased + heat,
			MarketKg:   row.ElectricityKWh*factor.MarketBased(row.ElectricitySource) + heat,
		}
		updates[row.ID] = figures
		result.TotalLocationKg += figures.LocationKg
		result.TotalMarketKg += figures.MarketKg
	}
	result.RowsUpdated = len(updates)

	if err := s.store.UpdateScope2Figures(ctx, updates); err != nil {
		return nil, err
	}
	return result, nil
}
