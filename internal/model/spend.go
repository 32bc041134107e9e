package model

import "time"

// SpendItem is a spend-based Scope 3 line: a monetary amount in a
// procurement category converted to tonnes CO2e via the spend factor table.
type SpendItem struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Category        string    `gorm:"size:128;not null" json:"category"`
	Subcategory     string    `gorm:"size:128" json:"subcategory"`
	SpendSEK        float64   `gorm:"column:spend_sek;not null" json:"spendSek"`
	EmissionFactor  float64   `gorm:"not null" json:"emissionFactor"` // kg CO2e per SEK
	CO2eTonnes      float64   `gorm:"column:co2e_tonnes;not null" json:"co2eTonnes"`
	DataQuality     string    `gorm:"size:32;not null" json:"dataQuality"`
	ReportingPeriod string    `gorm:"size:16;index" json:"reportingPeriod"`
	CreatedAt       time.Time `json:"createdAt"`
}
