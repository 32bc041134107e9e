package calc

import (
	"context"

	"esg-index-backend/internal/factor"
	"esg-index-backend/internal/model"
)

// SpendEmissionsTons converts a spend amount in SEK to tonnes CO2e using
// the category factor table. The factor used is returned alongside so it
// can be stored with the line for auditability.
func SpendEmissionsTons(category string, spendSEK float64) (tons, factorUsed float64) {
	factorUsed = factor.Spend(category)
	return spendSEK * factorUsed / 1000.0, factorUsed
}

// AddSpendItem computes and persists one spend-based scope 3 line.
// Spend-based figures are estimates by nature, so the quality label is
// always Estimated.
func (s *Service) AddSpendItem(ctx context.Context, category, subcategory string, spendSEK float64, period string) (*model.SpendItem, error) {
	tons, factorUsed := SpendEmissionsTons(category, spendSEK)

	item := &model.SpendItem{
		Category:        category,
		Subcategory:     subcategory,
		SpendSEK:        spendSEK,
		EmissionFactor:  factorUsed,
		CO2eTonnes:      tons,
		DataQuality:     QualityEstimated,
		ReportingPeriod: period,
	}
	if err := s.store.CreateSpendItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
