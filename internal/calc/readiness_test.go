package calc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg-index-backend/internal/model"
	"esg-index-backend/internal/store"
)

func gapRows(statuses ...string) []store.RequirementGap {
	rows := make([]store.RequirementGap, len(statuses))
	for i, s := range statuses {
		rows[i] = store.RequirementGap{Code: "X", Status: s}
	}
	return rows
}

// The strict score and the half-credit index score are two independently
// exposed metrics, not one metric with a bug. These tests pin both.
func TestGapScore_StrictCountsCompliantOnly(t *testing.T) {
	rows := gapRows(
		model.GapCompliant, model.GapCompliant, model.GapCompliant, model.GapCompliant,
		model.GapInProgress, model.GapInProgress,
		model.GapNotStarted, model.GapNotStarted, model.GapNotStarted, model.GapNotStarted,
	)

	pct, completed, total := GapScore(rows)
	assert.InDelta(t, 40.0, pct, 1e-9)
	assert.Equal(t, 4, completed)
	assert.Equal(t, 10, total)
}

func TestGapScore_EmptyChecklist(t *testing.T) {
	pct, completed, total := GapScore(nil)
	assert.Zero(t, pct)
	assert.Zero(t, completed)
	assert.Zero(t, total)
}

func TestIndexScore_GrantsHalfCreditForPartial(t *testing.T) {
	entries := make([]IndexEntry, 10)
	for i := 0; i < 4; i++ {
		entries[i].Status = IndexReported
	}
	entries[4].Status = IndexPartial
	entries[5].Status = IndexPartial
	for i := 6; i < 10; i++ {
		entries[i].Status = IndexMissing
	}

	// (4 + 0.5*2) / 10 * 100 = 50, diverging from the strict score for
	// the same underlying data.
	assert.Equal(t, 50.0, IndexScore(entries))
}

func TestIndexScore_RoundsToOneDecimal(t *testing.T) {
	entries := []IndexEntry{
		{Status: IndexReported},
		{Status: IndexMissing},
		{Status: IndexMissing},
	}
	assert.Equal(t, 33.3, IndexScore(entries))
}

func TestReadiness(t *testing.T) {
	fs := &fakeStore{
		gapRows: []store.RequirementGap{
			{Code: "E1-1", Status: model.GapCompliant},
			{Code: "E1-4", Status: model.GapNotStarted},
		},
	}
	svc := NewService(fs, &fixedResolver{})

	summary, err := svc.Readiness(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 50.0, summary.ScorePct, 1e-9)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 2, summary.Total)
	assert.Len(t, summary.Requirements, 2)
}

func TestESRSIndex_StatusRules(t *testing.T) {
	fs := &fakeStore{
		gapRows: []store.RequirementGap{
			{Code: "E1-6", Title: "Gross GHG emissions"},
			{Code: "S1-16", Title: "Pay gap"},
			{Code: "S1-6", Title: "Employee characteristics"},
			{Code: "S1-1", Title: "Workforce policies"},
			{Code: "G1-1", Title: "Business conduct policies"},
			{Code: "E3-4", Title: "Water consumption"},
		},
		activity:     store.ActivityCounts{Fuel: 3, Energy: 12, Spend: 0},
		hr:           &model.HRYearData{Year: 2024, InternalHeadcount: 45, GenderPayGapPct: 3.2},
		policyCounts: map[string]int64{"G1": 2, "S1": 1},
	}
	svc := NewService(fs, &fixedResolver{})

	result, err := svc.ESRSIndex(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, result.Entries, 6)

	byCode := map[string]IndexEntry{}
	for _, e := range result.Entries {
		byCode[e.Code] = e
	}

	// Scope 1/2 activity exists but no spend rows: partial.
	assert.Equal(t, IndexPartial, byCode["E1-6"].Status)
	assert.Equal(t, "Scope 3 data missing.", byCode["E1-6"].Comment)

	assert.Equal(t, IndexReported, byCode["S1-16"].Status)
	assert.Equal(t, IndexReported, byCode["S1-6"].Status)
	// S1-1 is satisfied by mapped policies, not headcount.
	assert.Equal(t, IndexReported, byCode["S1-1"].Status)
	assert.Equal(t, IndexReported, byCode["G1-1"].Status)
	assert.Equal(t, IndexMissing, byCode["E3-4"].Status)

	// (4 + 0.5) / 6 * 100 = 75.0
	assert.Equal(t, 75.0, result.ScorePct)
}

func TestESRSIndex_NoData(t *testing.T) {
	fs := &fakeStore{
		gapRows: []store.RequirementGap{
			{Code: "E1-6"},
			{Code: "S1-6"},
		},
		policyCounts: map[string]int64{},
	}
	svc := NewService(fs, &fixedResolver{})

	result, err := svc.ESRSIndex(context.Background(), 2024)
	require.NoError(t, err)
	for _, e := range result.Entries {
		assert.Equal(t, IndexMissing, e.Status)
		assert.Equal(t, "No data found.", e.Comment)
	}
	assert.Zero(t, result.ScorePct)
}
