package model

import "time"

// Personnel is a consultant or employee with a home postcode used for
// commute distance resolution.
type Personnel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"size:128;not null" json:"firstName"`
	LastName     string    `gorm:"size:128;not null" json:"lastName"`
	HomePostcode string    `gorm:"size:16" json:"homePostcode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName keeps the singular form; "personnels" is not a word.
func (Personnel) TableName() string { return "personnel" }

// ClientSite is a customer location personnel commute to.
type ClientSite struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientName string    `gorm:"size:256;not null" json:"clientName"`
	Postcode   string    `gorm:"size:16" json:"postcode"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Assignment pairs a person with a client site over a date range.
// DistanceKm is the one-way commute distance; when nil it is resolved
// from the two postcodes at calculation time.
type Assignment struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonnelID  int64      `gorm:"index;not null" json:"personnelId"`
	ClientSiteID int64      `gorm:"index;not null" json:"clientSiteId"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	DaysPerWeek  float64    `gorm:"not null" json:"daysPerWeek"`
	DistanceKm   *float64   `json:"distanceKm"`
	Mode         string     `gorm:"size:32" json:"mode"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Associations
	Personnel  Personnel  `gorm:"constraint:OnDelete:CASCADE" json:"personnel,omitempty"`
	ClientSite ClientSite `gorm:"constraint:OnDelete:CASCADE" json:"clientSite,omitempty"`
}

// CommuteCalculation is the derived emission row for one assignment.
// The unique index on AssignmentID is what makes batch recomputation
// additive-safe: an assignment with an existing row is skipped.
type CommuteCalculation struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AssignmentID  int64     `gorm:"uniqueIndex;not null" json:"assignmentId"`
	WorkingDays   int       `gorm:"not null" json:"workingDays"`
	TotalKm       float64   `gorm:"not null" json:"totalKm"`
	FactorKgPerKm float64   `gorm:"not null" json:"factorKgPerKm"`
	TotalCO2Kg    float64   `gorm:"column:total_co2_kg;not null" json:"totalCo2Kg"`
	DataQuality   string    `gorm:"size:32;not null" json:"dataQuality"`
	CreatedAt     time.Time `json:"createdAt"`
}
