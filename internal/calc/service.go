package calc

import (
	"context"
	"log"

	"esg-index-backend/internal/model"
	"esg-index-backend/internal/store"
)

// DistanceResolver resolves a postcode pair to a one-way distance in km.
// Implementations must not fail; they fall back to an estimate instead.
type DistanceResolver interface {
	Distance(ctx context.Context, fromPostcode, toPostcode string) float64
}

// Service runs the batch calculators against the store.
type Service struct {
	store    store.Store
	resolver DistanceResolver
}

// NewService creates a calculation service.
func NewService(st store.Store, resolver DistanceResolver) *Service {
	return &Service{store: st, resolver: resolver}
}

// BatchResult is the aggregate outcome of a commuting batch run.
type BatchResult struct {
	Processed        int            `json:"processed"`
	TotalCO2Tons     float64        `json:"totalCo2Tons"`
	QualityBreakdown map[string]int `json:"qualityBreakdown"`
}

// CalculateAllAssignments computes emissions for every assignment that has
// no calculation row yet. Assignments without a stored distance are
// resolved from the home and site postcodes. A row that fails to persist
// is logged and skipped; one bad row never aborts the batch.
func (s *Service) CalculateAllAssignments(ctx context.Context) (*BatchResult, error) {
	pending, err := s.store.PendingAssignments(ctx)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Processed: len(pending),
		QualityBreakdown: map[string]int{
			QualityVerified:  0,
			QualityEstimated: 0,
			QualityTemplate:  0,
			QualityInvalid:   0,
		},
	}

	var totalKg float64
	for _, a := range pending {
		var distance float64
		if a.DistanceKm != nil {
			distance = *a.DistanceKm
		} else {
			distance = s.resolver.Distance(ctx, a.HomePostcode, a.SitePostcode)
		}

		res := CalculateCommute(distance, a.StartDate, a.EndDate, a.DaysPerWeek, a.Mode)

		row := &model.CommuteCalculation{
			AssignmentID:  a.AssignmentID,
			WorkingDays:   res.WorkingDays,
			TotalKm:       res.TotalKm,
			FactorKgPerKm: res.FactorKgPerKm,
			TotalCO2Kg:    res.TotalCO2Kg,
			DataQuality:   res.DataQuality,
		}
		if err := s.store.CreateCommuteCalculation(ctx, row); err != nil {
			log.Printf("skipping assignment %d: %v", a.AssignmentID, err)
			continue
		}

		totalKg += res.TotalCO2Kg
		result.QualityBreakdown[res.DataQuality]++
	}

	result.TotalCO2Tons = totalKg / 1000.0
	return result, nil
}
