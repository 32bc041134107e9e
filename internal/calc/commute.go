// Package calc holds the emission calculators and the readiness scorers.
// Calculators never return domain errors: missing or malformed input
// degrades to a data-quality label and a zero or fallback figure.
package calc

import (
	"time"

	"esg-index-backend/internal/factor"
)

// Data quality labels attached to every derived emission row.
const (
	QualityVerified  = "Verified"     // recognized travel mode
	QualityEstimated = "Estimated"    // free-text mode, generic factor applied
	QualityTemplate  = "Template"     // mode explicitly unknown
	QualityInvalid   = "Invalid Data" // dates missing, totals zeroed
)

// CommuteResult is the outcome of a single assignment calculation.
type CommuteResult struct {
	WorkingDays   int
	TotalKm       float64
	FactorKgPerKm float64
	TotalCO2Kg    float64
	DataQuality   string
}

// CalculateCommute derives the commute emissions for one assignment.
//
// Working days are the calendar weeks in the assignment window times the
// days-per-week figure, truncated. Total km doubles the one-way distance
// for the round trip.
func CalculateCommute(distanceKm float64, start, end *time.Time, daysPerWeek float64, mode string) CommuteResult {
	if start == nil || end == nil {
		return CommuteResult{DataQuality: QualityInvalid}
	}

	days := int(end.Sub(*start).Hours() / 24)
	workingDays := int(float64(days) / 7 * daysPerWeek)

	ef, recognized := factor.Commute(mode)
	totalKm := distanceKm * 2 * float64(workingDays)

	quality := QualityEstimated
	switch {
	case mode == factor.ModeUnknown:
		quality = QualityTemplate
	case recognized:
		quality = QualityVerified
	}

	return CommuteResult{
		WorkingDays:   workingDays,
		TotalKm:       totalKm,
		FactorKgPerKm: ef,
		TotalCO2Kg:    totalKm * ef,
		DataQuality:   quality,
	}
}
