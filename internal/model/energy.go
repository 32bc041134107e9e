package model

import "time"

// EnergyReading is a Scope 2 activity record: one facility-month of
// electricity and district heating use.
//
// Both scope 2 figures are stored per row: location-based (grid average)
// and market-based (declared electricity source). The GHG Protocol requires
// dual reporting, so the two figures are never collapsed into one.
type EnergyReading struct {
	ID                int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Year              int     `gorm:"not null;index" json:"year"`
	Month             int     `gorm:"not null" json:"month"`
	FacilityID        string  `gorm:"size:64" json:"facilityId"`
	ElectricityKWh    float64 `gorm:"column:electricity_kwh;not null" json:"electricityKwh"`
	DistrictHeatKWh   float64 `gorm:"column:district_heat_kwh" json:"districtHeatKwh"`
	ElectricitySource string  `gorm:"size:32" json:"electricitySource"` // Renewable, Nuclear, Mix
	Scope2LocationKg  float64 `gorm:"column:scope2_location_kg" json:"scope2LocationKg"`
	Scope2MarketKg    float64 `gorm:"column:scope2_market_kg" json:"scope2MarketKg"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
