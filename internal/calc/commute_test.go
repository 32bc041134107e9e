package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"esg-index-backend/internal/factor"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCalculateCommute(t *testing.T) {
	// 2024-01-01 to 2024-03-31 is 90 days: 90/7*5 = 64.28 -> 64 working days.
	start := date(2024, time.January, 1)
	end := date(2024, time.March, 31)

	testCases := []struct {
		name        string
		distanceKm  float64
		start, end  *time.Time
		daysPerWeek float64
		mode        string
		expected    CommuteResult
	}{
		{
			name:       "car commute is verified",
			distanceKm: 30, start: start, end: end, daysPerWeek: 5, mode: factor.ModeCar,
			expected: CommuteResult{
				WorkingDays:   64,
				TotalKm:       3840, // 30 * 2 * 64
				FactorKgPerKm: 0.12,
				TotalCO2Kg:    460.8,
				DataQuality:   QualityVerified,
			},
		},
		{
			name:       "bicycle is verified and emission free",
			distanceKm: 5, start: start, end: end, daysPerWeek: 5, mode: factor.ModeBicycle,
			expected: CommuteResult{
				WorkingDays:   64,
				TotalKm:       640,
				FactorKgPerKm: 0,
				TotalCO2Kg:    0,
				DataQuality:   QualityVerified,
			},
		},
		{
			name:       "unknown mode gets the template factor",
			distanceKm: 10, start: start, end: end, daysPerWeek: 5, mode: factor.ModeUnknown,
			expected: CommuteResult{
				WorkingDays:   64,
				TotalKm:       1280,
				FactorKgPerKm: 0.08,
				TotalCO2Kg:    102.4,
				DataQuality:   QualityTemplate,
			},
		},
		{
			name:       "free-text mode falls back to the generic factor",
			distanceKm: 10, start: start, end: end, daysPerWeek: 5, mode: "Kick scooter",
			expected: CommuteResult{
				WorkingDays:   64,
				TotalKm:       1280,
				FactorKgPerKm: 0.08,
				TotalCO2Kg:    102.4,
				DataQuality:   QualityEstimated,
			},
		},
		{
			name:       "missing start date zeroes everything",
			distanceKm: 30, start: nil, end: end, daysPerWeek: 5, mode: factor.ModeCar,
			expected:   CommuteResult{DataQuality: QualityInvalid},
		},
		{
			name:       "missing end date zeroes everything",
			distanceKm: 30, start: start, end: nil, daysPerWeek: 5, mode: factor.ModeCar,
			expected:   CommuteResult{DataQuality: QualityInvalid},
		},
		{
			name:       "part-time weeks are truncated",
			distanceKm: 20, start: date(2024, time.January, 1), end: date(2024, time.January, 15), daysPerWeek: 3, mode: factor.ModeRail,
			expected: CommuteResult{
				WorkingDays:   6, // 14 days / 7 * 3
				TotalKm:       240,
				FactorKgPerKm: 0.006,
				TotalCO2Kg:    1.44,
				DataQuality:   QualityVerified,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateCommute(tc.distanceKm, tc.start, tc.end, tc.daysPerWeek, tc.mode)
			assert.Equal(t, tc.expected.WorkingDays, got.WorkingDays)
			assert.InDelta(t, tc.expected.TotalKm, got.TotalKm, 1e-9)
			assert.InDelta(t, tc.expected.FactorKgPerKm, got.FactorKgPerKm, 1e-9)
			assert.InDelta(t, tc.expected.TotalCO2Kg, got.TotalCO2Kg, 1e-9)
			assert.Equal(t, tc.expected.DataQuality, got.DataQuality)
		})
	}
}

func TestCalculateCommute_Idempotent(t *testing.T) {
	start, end := date(2024, time.January, 1), date(2024, time.June, 30)
	first := CalculateCommute(42, start, end, 5, factor.ModeCar)
	second := CalculateCommute(42, start, end, 5, factor.ModeCar)
	assert.Equal(t, first, second)
}
