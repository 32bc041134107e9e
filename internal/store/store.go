package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"esg-index-backend/internal/model"
)

// Store defines the database operations used by the calculators, the
// readiness scorer, the reports and the reminder service. Plain CRUD
// handlers go through DB() directly.
type Store interface {
	DB() *gorm.DB

	// Scope 1/2 recalculation
	ListFuelPurchases(ctx context.Context) ([]model.FuelPurchase, error)
	UpdateFuelEmissions(ctx context.Context, updates map[int64]float64) error
	ListEnergyReadings(ctx context.Context) ([]model.EnergyReading, error)
	UpdateScope2Figures(ctx context.Context, updates map[int64]Scope2Figures) error

	// Commuting batch calculation
	PendingAssignments(ctx context.Context) ([]PendingAssignment, error)
	CreateCommuteCalculation(ctx context.Context, calc *model.CommuteCalculation) error
	ClearCommuteCalculations(ctx context.Context) error

	// Spend-based scope 3
	CreateSpendItem(ctx context.Context, item *model.SpendItem) error

	// Readiness / GAP
	SeedRequirements(ctx context.Context, reqs []model.DisclosureRequirement) error
	UpsertGapStatus(ctx context.Context, status *model.GapStatus) error
	GapJoin(ctx context.Context) ([]RequirementGap, error)

	// ESRS index inputs
	CountActivity(ctx context.Context, year int) (ActivityCounts, error)
	HRYear(ctx context.Context, year int) (*model.HRYearData, error)
	UpsertHRYearData(ctx context.Context, data *model.HRYearData) error
	UpsertProcurementYearData(ctx context.Context, data *model.ProcurementYearData) error
	CountPoliciesByPrefix(ctx context.Context, prefix string) (int64, error)

	// Report aggregates
	Scope1TotalKg(ctx context.Context) (float64, error)
	Scope2MarketTotalKg(ctx context.Context) (float64, error)
	SpendTotalTons(ctx context.Context) (float64, error)
	CommuteTotalKg(ctx context.Context) (float64, error)
	CommuteQualityShares(ctx context.Context) (map[string]float64, error)
	RenewableSharePct(ctx context.Context, year int) (float64, error)
	OpenRiskCount(ctx context.Context) (int64, error)
	MaterialTopics(ctx context.Context) ([]model.MaterialityTopic, error)
	ListPolicies(ctx context.Context) ([]model.Policy, error)

	// Review reminders
	DuePolicies(ctx context.Context, now time.Time, lead time.Duration) ([]model.Policy, error)
	ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ListFuelPurchases(ctx context.Context) ([]model.FuelPurchase, error) {
	var rows []model.FuelPurchase
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list fuel purchases: %w", err)
	}
	return rows, nil
}

// UpdateFuelEmissions rewrites the derived co2_kg column for the given rows
// in one transaction. Input columns are never touched.
func (s *gormStore) UpdateFuelEmissions(ctx context.Context, updates map[int64]float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, co2 := range updates {
			if err := tx.Model(&model.FuelPurchase{}).
				Where("id = ?", id).
				Update("co2_kg", co2).Error; err != nil {
				return fmt.Errorf("failed to update fuel row %d: %w", id, err)
			}
		}
		return nil
	})
}

func (s *gormStore) ListEnergyReadings(ctx context.Context) ([]model.EnergyReading, error) {
	var rows []model.EnergyReading
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list energy readings: %w", err)
	}
	return rows, nil
}

func (s *gormStore) UpdateScope2Figures(ctx context.Context, updates map[int64]Scope2Figures) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, figures := range updates {
			if err := tx.Model(&model.EnergyReading{}).
				Where("id = ?", id).
				Updates(map[string]any{
					"scope2_location_kg": figures.LocationKg,
					"scope2_market_kg":   figures.MarketKg,
				}).Error; err != nil {
				return fmt.Errorf("failed to update energy row %d: %w", id, err)
			}
		}
		return nil
	})
}

// PendingAssignments selects every assignment that has no calculation row
// yet (left anti-join), together with the postcodes needed to resolve a
// missing distance.
func (s *gormStore) PendingAssignments(ctx context.Context) ([]PendingAssignment, error) {
	var rows []PendingAssignment
	err := s.db.WithContext(ctx).
		Table("assignments AS a").
		Select(`a.id AS assignment_id, a.start_date, a.end_date, a.days_per_week,
			a.distance_km, a.mode,
			p.home_postcode, cs.postcode AS site_postcode`).
		Joins("JOIN personnel p ON p.id = a.personnel_id").
		Joins("JOIN client_sites cs ON cs.id = a.client_site_id").
		Joins("LEFT JOIN commute_calculations cc ON cc.assignment_id = a.id").
		Where("cc.id IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select pending assignments: %w", err)
	}
	return rows, nil
}

func (s *gormStore) CreateCommuteCalculation(ctx context.Context, calc *model.CommuteCalculation) error {
	if err := s.db.WithContext(ctx).Create(calc).Error; err != nil {
		return fmt.Errorf("failed to create commute calculation for assignment %d: %w", calc.AssignmentID, err)
	}
	return nil
}

// ClearCommuteCalculations removes every calculation row. This is the
// explicit path to force a full recomputation after a factor change.
func (s *gormStore) ClearCommuteCalculations(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&model.CommuteCalculation{}).Error; err != nil {
		return fmt.Errorf("failed to clear commute calculations: %w", err)
	}
	return nil
}

func (s *gormStore) CreateSpendItem(ctx context.Context, item *model.SpendItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create spend item: %w", err)
	}
	return nil
}

// SeedRequirements inserts the checklist, leaving existing rows untouched.
func (s *gormStore) SeedRequirements(ctx context.Context, reqs []model.DisclosureRequirement) error {
	if len(reqs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&reqs).Error
	if err != nil {
		return fmt.Errorf("failed to seed disclosure requirements: %w", err)
	}
	return nil
}

// UpsertGapStatus writes the GAP status for a requirement code,
// replacing any previous status for the same code.
func (s *gormStore) UpsertGapStatus(ctx context.Context, status *model.GapStatus) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "requirement_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "owner", "evidence_link", "updated_at"}),
	}).Create(status).Error
	if err != nil {
		return fmt.Errorf("failed to upsert gap status for %s: %w", status.RequirementCode, err)
	}
	return nil
}

// GapJoin left-joins the requirement checklist against the GAP status
// table; requirements without a status row default to Not Started.
func (s *gormStore) GapJoin(ctx context.Context) ([]RequirementGap, error) {
	var rows []RequirementGap
	err := s.db.WithContext(ctx).
		Table("disclosure_requirements AS dr").
		Select(`dr.code, dr.title, dr.mandatory,
			COALESCE(gs.status, ?) AS status, COALESCE(gs.owner, '') AS owner`, model.GapNotStarted).
		Joins("LEFT JOIN gap_statuses gs ON gs.requirement_code = dr.code").
		Order("dr.code").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to join requirements against gap statuses: %w", err)
	}
	return rows, nil
}

func (s *gormStore) CountActivity(ctx context.Context, year int) (ActivityCounts, error) {
	var counts ActivityCounts
	db := s.db.WithContext(ctx)

	if err := db.Model(&model.FuelPurchase{}).
		Where("date >= ? AND date < ?", yearStart(year), yearStart(year+1)).
		Count(&counts.Fuel).Error; err != nil {
		return counts, fmt.Errorf("failed to count fuel purchases: %w", err)
	}
	if err := db.Model(&model.EnergyReading{}).
		Where("year = ?", year).
		Count(&counts.Energy).Error; err != nil {
		return counts, fmt.Errorf("failed to count energy readings: %w", err)
	}
	if err := db.Model(&model.SpendItem{}).
		Where("reporting_period = ?", fmt.Sprintf("%d", year)).
		Count(&counts.Spend).Error; err != nil {
		return counts, fmt.Errorf("failed to count spend items: %w", err)
	}
	return counts, nil
}

func (s *gormStore) HRYear(ctx context.Context, year int) (*model.HRYearData, error) {
	var data model.HRYearData
	err := s.db.WithContext(ctx).First(&data, "year = ?", year).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HR data for %d: %w", year, err)
	}
	return &data, nil
}

func (s *gormStore) UpsertHRYearData(ctx context.Context, data *model.HRYearData) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}},
		UpdateAll: true,
	}).Create(data).Error
	if err != nil {
		return fmt.Errorf("failed to upsert HR data for %d: %w", data.Year, err)
	}
	return nil
}

func (s *gormStore) UpsertProcurementYearData(ctx context.Context, data *model.ProcurementYearData) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}},
		UpdateAll: true,
	}).Create(data).Error
	if err != nil {
		return fmt.Errorf("failed to upsert procurement data for %d: %w", data.Year, err)
	}
	return nil
}

func (s *gormStore) CountPoliciesByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Policy{}).
		Where("esrs_requirement LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count policies for prefix %q: %w", prefix, err)
	}
	return count, nil
}

func (s *gormStore) Scope1TotalKg(ctx context.Context) (float64, error) {
	return s.sum(ctx, &model.FuelPurchase{}, "co2_kg")
}

func (s *gormStore) Scope2MarketTotalKg(ctx context.Context) (float64, error) {
	return s.sum(ctx, &model.EnergyReading{}, "scope2_market_kg")
}

func (s *gormStore) SpendTotalTons(ctx context.Context) (float64, error) {
	return s.sum(ctx, &model.SpendItem{}, "co2e_tonnes")
}

func (s *gormStore) CommuteTotalKg(ctx context.Context) (float64, error) {
	return s.sum(ctx, &model.CommuteCalculation{}, "total_co2_kg")
}

func (s *gormStore) sum(ctx context.Context, mdl any, column string) (float64, error) {
	var total *float64
	err := s.db.WithContext(ctx).Model(mdl).
		Select("SUM(" + column + ")").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum %s: %w", column, err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// CommuteQualityShares returns the share (percent) of calculation rows per
// data quality label.
func (s *gormStore) CommuteQualityShares(ctx context.Context) (map[string]float64, error) {
	type row struct {
		DataQuality string
		N           int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&model.CommuteCalculation{}).
		Select("data_quality, COUNT(*) AS n").
		Group("data_quality").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group commute calculations by quality: %w", err)
	}

	var total int64
	for _, r := range rows {
		total += r.N
	}
	shares := make(map[string]float64, len(rows))
	for _, r := range rows {
		if total > 0 {
			shares[r.DataQuality] = float64(r.N) * 100.0 / float64(total)
		}
	}
	return shares, nil
}

func (s *gormStore) RenewableSharePct(ctx context.Context, year int) (float64, error) {
	var share *float64
	err := s.db.WithContext(ctx).Model(&model.EnergyReading{}).
		Select("SUM(CASE WHEN electricity_source = ? THEN electricity_kwh ELSE 0 END) * 100.0 / SUM(electricity_kwh)", "Renewable").
		Where("year = ?", year).
		Scan(&share).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute renewable share: %w", err)
	}
	if share == nil {
		return 0, nil
	}
	return *share, nil
}

func (s *gormStore) OpenRiskCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.RiskItem{}).
		Where("status = ?", "Open").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count open risks: %w", err)
	}
	return count, nil
}

func (s *gormStore) MaterialTopics(ctx context.Context) ([]model.MaterialityTopic, error) {
	var topics []model.MaterialityTopic
	err := s.db.WithContext(ctx).
		Where("is_material = ?", true).
		Order("impact_score + financial_score DESC").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list material topics: %w", err)
	}
	return topics, nil
}

func (s *gormStore) ListPolicies(ctx context.Context) ([]model.Policy, error) {
	var policies []model.Policy
	err := s.db.WithContext(ctx).Order("next_review_date ASC").Find(&policies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return policies, nil
}

// DuePolicies returns policies whose review date is past or falls within
// the lead window.
func (s *gormStore) DuePolicies(ctx context.Context, now time.Time, lead time.Duration) ([]model.Policy, error) {
	var policies []model.Policy
	err := s.db.WithContext(ctx).
		Where("next_review_date < ?", now.Add(lead)).
		Order("next_review_date ASC").
		Find(&policies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select due policies: %w", err)
	}
	return policies, nil
}

func (s *gormStore) ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error) {
	var subs []model.PushSubscription
	if err := s.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	return subs, nil
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
