package store

import "time"

// PendingAssignment is one row of the batch-calculation work list: an
// assignment without a calculation row, joined with the postcodes needed
// for distance resolution.
type PendingAssignment struct {
	AssignmentID int64      `json:"assignmentId"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	DaysPerWeek  float64    `json:"daysPerWeek"`
	DistanceKm   *float64   `json:"distanceKm"`
	Mode         string     `json:"mode"`
	HomePostcode string     `json:"homePostcode"`
	SitePostcode string     `json:"sitePostcode"`
}

// Scope2Figures carries both scope 2 accounting figures for one energy row.
type Scope2Figures struct {
	LocationKg float64
	MarketKg   float64
}

// RequirementGap is one row of the readiness join: a checklist requirement
// with its recorded (or defaulted) GAP status.
type RequirementGap struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	Mandatory bool   `json:"mandatory"`
	Status    string `json:"status"`
	Owner     string `json:"owner"`
}

// ActivityCounts holds per-year activity row counts used by the ESRS index.
type ActivityCounts struct {
	Fuel   int64
	Energy int64
	Spend  int64
}
