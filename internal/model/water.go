package model

import "time"

// WaterRecord tracks withdrawal, discharge and recycling volumes.
// ConsumptionM3 is derived as withdrawal minus discharge at insert time.
type WaterRecord struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date             time.Time `gorm:"not null" json:"date"`
	WithdrawalM3     float64   `gorm:"column:withdrawal_m3;not null" json:"withdrawalM3"`
	WithdrawalSource string    `gorm:"size:64" json:"withdrawalSource"`
	DischargeM3      float64   `gorm:"column:discharge_m3" json:"dischargeM3"`
	DischargeDest    string    `gorm:"size:64" json:"dischargeDest"`
	ConsumptionM3    float64   `gorm:"column:consumption_m3" json:"consumptionM3"`
	RecycledM3       float64   `gorm:"column:recycled_m3" json:"recycledM3"`
	CreatedAt        time.Time `json:"createdAt"`
}
