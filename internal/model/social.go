package model

import "time"

// HRYearData is the yearly social (ESRS S1) summary, one row per year,
// written with upsert-on-year semantics.
type HRYearData struct {
	Year                int       `gorm:"primaryKey" json:"year"`
	ENPSInternal        int       `gorm:"column:enps_internal" json:"enpsInternal"`
	CNPSConsultant      int       `gorm:"column:cnps_consultant" json:"cnpsConsultant"`
	InternalHeadcount   int       `json:"internalHeadcount"`
	ConsultantHeadcount int       `json:"consultantHeadcount"`
	NewHires            int       `json:"newHires"`
	SickLeavePct        float64   `json:"sickLeavePct"`
	WorkAccidents       int       `json:"workAccidents"`
	SeriousAccidents    int       `json:"seriousAccidents"`
	ManagementWomen     int       `json:"managementWomen"`
	ManagementMen       int       `json:"managementMen"`
	ChildrenInspired    int       `json:"childrenInspired"`
	TrainingHoursAvg    float64   `json:"trainingHoursAvg"`
	GenderPayGapPct     float64   `json:"genderPayGapPct"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (HRYearData) TableName() string { return "hr_year_data" }

// SocialMetric is a single ad-hoc social KPI observation.
type SocialMetric struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MetricType       string    `gorm:"size:64;not null" json:"metricType"`
	Value            float64   `gorm:"not null" json:"value"`
	Period           string    `gorm:"size:16" json:"period"`
	DataSource       string    `gorm:"size:128" json:"dataSource"`
	EmployeeCategory string    `gorm:"size:64" json:"employeeCategory"`
	CreatedAt        time.Time `json:"createdAt"`
}
