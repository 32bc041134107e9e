package model

import "time"

// WasteEntry is a waste-generation record with its treatment method.
type WasteEntry struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date            time.Time `gorm:"not null" json:"date"`
	WasteCategory   string    `gorm:"size:64;not null" json:"wasteCategory"`
	IsHazardous     bool      `gorm:"not null" json:"isHazardous"`
	WeightKg        float64   `gorm:"not null" json:"weightKg"`
	TreatmentMethod string    `gorm:"size:32;not null" json:"treatmentMethod"` // Landfill, Recycled, Incinerated
	Supplier        string    `gorm:"size:128" json:"supplier"`
	CO2Kg           float64   `gorm:"column:co2_kg" json:"co2Kg"`
	CreatedAt       time.Time `json:"createdAt"`
}
