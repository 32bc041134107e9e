package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"esg-index-backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormStore_PendingAssignments(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	dist := 42.0

	cols := []string{
		"assignment_id", "start_date", "end_date", "days_per_week",
		"distance_km", "mode", "home_postcode", "site_postcode",
	}
	mock.ExpectQuery(`SELECT .+ FROM assignments AS a JOIN personnel p .+ LEFT JOIN commute_calculations cc .+ WHERE cc\.id IS NULL`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, start, end, 5.0, dist, "Car", "58222", "60224").
			AddRow(2, nil, nil, 3.0, nil, "", "58433", "60224"))

	rows, err := s.PendingAssignments(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].AssignmentID)
	assert.Equal(t, 5.0, rows[0].DaysPerWeek)
	require.NotNil(t, rows[0].DistanceKm)
	assert.Equal(t, 42.0, *rows[0].DistanceKm)
	assert.Equal(t, "58222", rows[0].HomePostcode)
	assert.Equal(t, "60224", rows[0].SitePostcode)

	// Missing dates and distance must come through as nil, not zero values.
	assert.Nil(t, rows[1].StartDate)
	assert.Nil(t, rows[1].EndDate)
	assert.Nil(t, rows[1].DistanceKm)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpdateFuelEmissions(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "fuel_purchases" SET`)).
		WithArgs(125.0, Any{}, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.UpdateFuelEmissions(context.Background(), map[int64]float64{7: 125.0})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpdateFuelEmissions_RollsBackOnError(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "fuel_purchases" SET`)).
		WithArgs(125.0, Any{}, int64(7)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.UpdateFuelEmissions(context.Background(), map[int64]float64{7: 125.0})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpsertGapStatus(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "gap_statuses" .+ ON CONFLICT \("requirement_code"\) DO UPDATE SET`).
		WithArgs("E1-6", model.GapCompliant, "CFO", "https://drive/evidence", Any{}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.UpsertGapStatus(context.Background(), &model.GapStatus{
		RequirementCode: "E1-6",
		Status:          model.GapCompliant,
		Owner:           "CFO",
		EvidenceLink:    "https://drive/evidence",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GapJoin_DefaultsMissingStatus(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	cols := []string{"code", "title", "mandatory", "status", "owner"}
	mock.ExpectQuery(`SELECT .+ FROM disclosure_requirements AS dr LEFT JOIN gap_statuses gs`).
		WithArgs(model.GapNotStarted).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("E1-1", "Transition plan for climate change mitigation", true, model.GapCompliant, "CEO").
			AddRow("E1-4", "Targets related to climate change mitigation and adaptation", true, model.GapNotStarted, ""))

	rows, err := s.GapJoin(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, model.GapCompliant, rows[0].Status)
	assert.Equal(t, model.GapNotStarted, rows[1].Status)
	assert.True(t, rows[1].Mandatory)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Scope1TotalKg_EmptyTableIsZero(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	// SUM over an empty table comes back as NULL.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT SUM(co2_kg) FROM "fuel_purchases"`)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

	total, err := s.Scope1TotalKg(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CommuteQualityShares(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT data_quality, COUNT\(\*\) AS n FROM "commute_calculations" GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"data_quality", "n"}).
			AddRow("Verified", 3).
			AddRow("Template", 1))

	shares, err := s.CommuteQualityShares(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 75.0, shares["Verified"], 1e-9)
	assert.InDelta(t, 25.0, shares["Template"], 1e-9)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}
