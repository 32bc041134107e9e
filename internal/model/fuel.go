package model

import "time"

// FuelPurchase is a Scope 1 activity record: one refuelling receipt.
// CO2Kg is derived from VolumeLiters and the fuel factor table; it is
// overwritten by recalculation and never edited by hand.
type FuelPurchase struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	VolumeLiters float64   `gorm:"not null" json:"volumeLiters"`
	FuelType     string    `gorm:"size:64;not null" json:"fuelType"`
	CO2Kg        float64   `gorm:"column:co2_kg" json:"co2Kg"`
	ReceiptRef   string    `gorm:"size:128" json:"receiptRef"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
